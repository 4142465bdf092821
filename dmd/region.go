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

// RegionMatches compares the region with the area of the frame with the top
// left corner at x and y.
//
// If useAlpha is true then any region pixel with the high bit set matches any
// frame pixel. Both frames must be palette indexed with fewer than eight bits
// per pixel.
func (f *Frame) RegionMatches(region *Frame, x, y int, useAlpha bool) (bool, error) {
	if f.bitsPerPixel >= MaxPaletteDepth || region.bitsPerPixel >= MaxPaletteDepth {
		return false, curated.Errorf(RegionDepth, f.bitsPerPixel, region.bitsPerPixel)
	}

	if x < 0 || y < 0 || x+region.width > f.width || y+region.height > f.height ||
		len(region.data) < region.width*region.height || !f.IsValid() {
		return false, curated.Errorf(RegionBounds, region.width, region.height, x, y, f.width, f.height)
	}

	cmp := 0
	for srcY := y; srcY < y+region.height; srcY++ {
		offset := x + srcY*f.width
		for srcX := x; srcX < x+region.width; srcX++ {
			px := f.data[offset]
			rpx := region.data[cmp]
			offset++
			cmp++

			// alpha bit is set, this matches all pixels
			if useAlpha && rpx > 0x7f {
				continue
			}

			if px != rpx {
				return false, nil
			}
		}
	}

	return true, nil
}
