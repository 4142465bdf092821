// This file is part of DMDGopher.
//
// DMDGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DMDGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DMDGopher.  If not, see <https://www.gnu.org/licenses/>.

// Package paths prepares paths to DMDGopher resources, such as the default
// configuration file.
//
// The ResourcePath() function prepends the resource with the base resource
// path:
//
//	p := paths.ResourcePath("dmdgopher.yaml")
//
// If a directory called ".dmdgopher" exists in the current directory then
// that is the base path. Otherwise, the base path is the "dmdgopher"
// directory in the user's configuration directory, as returned by
// os.UserConfigDir(). On a modern Linux system the path returned in the
// example above would be:
//
//	/home/user/.config/dmdgopher/dmdgopher.yaml
package paths
