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

// Package dmd represents the frames of a dot matrix display. A Frame holds
// width x height pixels at one of the supported bit depths: 1 to 8 bits per
// pixel for palette indexed frames, or 24 and 32 bits per pixel for true
// colour frames (32 bits meaning that each pixel has an alpha channel).
//
// Palette indexed frames are always stored with one byte per pixel. Packed
// data, where each pixel occupies fewer than eight bits, can be expanded with
// NewFrameFromPacked(). The reverse operation, for hardware that expects
// pixel data as a series of one-bit planes, is provided by the Plane()
// function.
//
// True colour frames can be reduced to a palette indexed frame with
// RemoveColors(). When the source frame has an alpha channel, pixels that
// are not fully opaque are given the TransparentIndex.
//
// The CRC32 checksum of the pixel data is calculated on demand and is used to
// quickly decide whether two frames are identical. See the
// HasSameSizeAndChecksum() function.
//
// Frame is not safe for concurrent use. Reading the checksum or the plane
// data of a frame may update the internal caches of the frame. A frame that
// is passed between goroutines should be handed off and not shared.
package dmd
