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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the same way as fmt.Errorf().
//
// The pattern is retained so that callers can identify an error without
// parsing the message. Packages in this project export their patterns as
// string constants. For example, the dmd package exports
// UnsupportedBitDepth and callers can test for it:
//
//	f, err := dmd.NewFrame(128, 32, 12)
//	if curated.Is(err, dmd.UnsupportedBitDepth) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped curated
// errors.
//
// The Error() implementation normalises the chain so that adjacent parts are
// not repeated. Wrapping an error with the same prefix as the error being
// wrapped does not result in messages like:
//
//	source: source: cannot open file
package curated
