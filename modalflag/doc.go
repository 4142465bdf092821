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

// Package modalflag wraps the flag package from the standard library and adds
// the concept of program modes. Each mode can have its own set of flags.
//
// Arguments are given to the Modes type with NewArgs(). Flags for the current
// mode are added with the Add*() functions and sub-modes with AddSubModes().
// Parse() then processes the flags and, if sub-modes have been added, checks
// whether the next argument names one of them.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional messages")
//	md.AddSubModes("INFO", "PLANES")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLANES":
//		md.NewMode()
//		// flags for the planes mode
//	}
//
// The first sub-mode is the default and is selected if the next argument
// does not name a sub-mode. Sub-mode names are not case sensitive.
package modalflag
