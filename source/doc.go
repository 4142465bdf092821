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

// Package source provides the frames of a dot matrix display. The Source
// interface is implemented by TXT, which reads text dumps of a display, and
// by PNG, which reads a sequence of PNG images.
//
// Sources are configured with the general and source sections of the
// configuration (see the prefs package). Frames are pulled from a source
// with NextFrame() until Finished() returns true. Each frame returned by
// NextFrame() is owned by the caller.
package source
