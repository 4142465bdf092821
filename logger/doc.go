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

// Package logger is the central log for the application. Log entries are
// tagged with the area of the program that made the entry, for example
// "dmd" or "txtsource".
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. Only a limited number of entries is kept
// in the central log.
//
// Every call to Log() or Logf() is given a Permission. Use Allow to log
// unconditionally.
package logger
