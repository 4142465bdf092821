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

package dmd

// the number of bytes required to hold numPixels of packed data
func packedLength(numPixels int, bpp int) int {
	return (numPixels*bpp + 7) / 8
}

// unpack numPixels from packed data and append them to data, one byte per
// pixel. pixels are read most significant bit first and may cross a byte
// boundary when bpp is not a factor of eight
func unpack(data []uint8, packed []uint8, numPixels int, bpp int) []uint8 {
	mask := uint16(1<<bpp) - 1

	bit := 0
	for i := 0; i < numPixels; i++ {
		idx := bit >> 3

		// two bytes are enough to hold any pixel of eight bits or less
		w := uint16(packed[idx]) << 8
		if idx+1 < len(packed) {
			w |= uint16(packed[idx+1])
		}

		px := (w >> (16 - (bit & 0x07) - bpp)) & mask
		data = append(data, uint8(px))

		bit += bpp
	}

	return data
}
