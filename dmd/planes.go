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

import "github.com/dmdgopher/dmdgopher/curated"

// Plane returns one bit plane of the pixel data. Plane zero is the least
// significant bit of each pixel.
//
// Each byte of a plane holds the bit for eight consecutive pixels. For each
// pixel the byte is shifted left by one and the pixel's bit is placed in the
// least significant position. The first of every eight pixels is therefore
// in the most significant bit. If the number of pixels is not a multiple of
// eight then the last byte of the plane holds fewer than eight pixels and
// those pixels occupy the low bits of that byte.
//
// Plane data is only available for palette indexed frames. The returned
// slice is a copy and can be modified by the caller.
func (f *Frame) Plane(bitno int) ([]uint8, error) {
	if f.bitsPerPixel > MaxPaletteDepth {
		return nil, curated.Errorf(PlaneDepth, f.bitsPerPixel)
	}
	if bitno < 0 || bitno >= f.bitsPerPixel {
		return nil, curated.Errorf(PlaneIndex, bitno, f.bitsPerPixel)
	}

	if len(f.planes) < f.bitsPerPixel {
		f.calculatePlanes()
	}

	p := make([]uint8, len(f.planes[bitno]))
	copy(p, f.planes[bitno])
	return p, nil
}

// Planes returns all bit planes of the frame, starting with the least
// significant bit.
func (f *Frame) Planes() ([][]uint8, error) {
	planes := make([][]uint8, 0, f.bitsPerPixel)
	for i := 0; i < f.bitsPerPixel; i++ {
		p, err := f.Plane(i)
		if err != nil {
			return nil, err
		}
		planes = append(planes, p)
	}
	return planes, nil
}

func (f *Frame) calculatePlanes() {
	f.planes = make([][]uint8, f.bitsPerPixel)
	for i := range f.planes {
		f.planes[i] = make([]uint8, 0, (len(f.data)+7)/8)
	}

	bit := 8
	for _, p := range f.data {
		// every 8 pixels, add a byte to the planes
		if bit >= 8 {
			bit = 0
			for i := range f.planes {
				f.planes[i] = append(f.planes[i], 0)
			}
		}

		for i := range f.planes {
			b := len(f.planes[i]) - 1
			f.planes[i][b] <<= 1
			if p&(1<<i) != 0 {
				f.planes[i][b] |= 1
			}
		}

		bit++
	}
}
