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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of
// the same comparable type. ExpectSuccess() and ExpectFailure() accept bool
// or error values (and nil) and interpret them in the obvious way: true or a
// nil error is success, false or a non-nil error is failure.
//
// The Demand*() variants stop the test immediately on failure. They are
// useful when the remainder of a test depends on the demanded value, for
// example when a constructor must succeed before the result can be used.
//
// CompareWriter is an io.Writer that keeps everything written to it. It is
// useful for testing functions that write to an io.Writer, such as the
// logger.
package test
