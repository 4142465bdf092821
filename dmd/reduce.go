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

// Palette implementations find the palette index of the colour that is
// nearest to the r, g, b colour.
type Palette interface {
	IndexOf(r, g, b uint8) uint8
}

// RemoveColors creates a new palette indexed frame from a true colour frame.
// Each pixel of the new frame is the index of the nearest colour in the
// palette.
//
// If useAlpha is true and the frame has an alpha channel then any pixel that
// is not fully opaque is given the TransparentIndex, regardless of its
// colour. For this reason the new bit depth must be less than eight.
func (f *Frame) RemoveColors(bpp int, palette Palette, useAlpha bool) (*Frame, error) {
	if f.bitsPerPixel != TrueColour && f.bitsPerPixel != TrueColourAlpha {
		return nil, curated.Errorf(NotTrueColour, f.bitsPerPixel)
	}

	// we need at least one bit for transparency
	if bpp < 1 || bpp >= MaxPaletteDepth {
		return nil, curated.Errorf(ReductionDepth, bpp)
	}

	hasAlpha := f.bitsPerPixel == TrueColourAlpha
	stride := BytesPerPixel(f.bitsPerPixel)

	r := &Frame{
		id:           f.id,
		width:        f.width,
		height:       f.height,
		bitsPerPixel: bpp,
	}
	r.initMemory(f.width * f.height)

	for i := 0; i+stride <= len(f.data); i += stride {
		idx := palette.IndexOf(f.data[i], f.data[i+1], f.data[i+2])

		if hasAlpha && useAlpha {
			if f.data[i+3] < 0xff {
				idx = TransparentIndex
			}
		}

		r.data = append(r.data, idx)
	}

	return r, nil
}
