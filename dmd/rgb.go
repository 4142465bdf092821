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

import (
	"image"
	"image/color"

	"github.com/dmdgopher/dmdgopher/logger"
)

// RGBBuffer is an image with one byte per colour channel. Pixels are stored
// as R, G, B or as R, G, B, A when Alpha is true.
type RGBBuffer struct {
	Width  int
	Height int
	Alpha  bool
	data   []uint8
}

// NewRGBBuffer is the preferred method of initialisation for the RGBBuffer
// type. The buffer has no data until SetData() is called.
func NewRGBBuffer(width, height int, alpha bool) *RGBBuffer {
	return &RGBBuffer{
		Width:  width,
		Height: height,
		Alpha:  alpha,
	}
}

// BytesPerPixel returns 4 if the buffer has an alpha channel and 3 if it does
// not.
func (b *RGBBuffer) BytesPerPixel() int {
	if b.Alpha {
		return 4
	}
	return 3
}

// Data returns the buffer's pixel data. The slice should not be modified.
func (b *RGBBuffer) Data() []uint8 {
	return b.data
}

// SetData copies the pixel data into the buffer.
func (b *RGBBuffer) SetData(data []uint8) {
	b.data = make([]uint8, len(data))
	copy(b.data, data)
}

// IsNull returns true if the buffer has no pixel data.
func (b *RGBBuffer) IsNull() bool {
	return len(b.data) == 0
}

// IsValid returns true if the length of the pixel data is correct for the
// dimensions of the buffer.
func (b *RGBBuffer) IsValid() bool {
	return len(b.data) == b.Width*b.Height*b.BytesPerPixel()
}

// NewRGBBufferFromImage creates an RGBBuffer from any image. The buffer will
// have an alpha channel unless the image reports that it is opaque.
func NewRGBBufferFromImage(img image.Image) *RGBBuffer {
	bounds := img.Bounds()

	alpha := true
	if o, ok := img.(interface{ Opaque() bool }); ok {
		alpha = !o.Opaque()
	}

	b := NewRGBBuffer(bounds.Dx(), bounds.Dy(), alpha)
	b.data = make([]uint8, 0, b.Width*b.Height*b.BytesPerPixel())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			b.data = append(b.data, c.R, c.G, c.B)
			if alpha {
				b.data = append(b.data, c.A)
			}
		}
	}

	return b
}

// Image returns the buffer as an image.NRGBA. Pixels in a buffer without an
// alpha channel are fully opaque.
func (b *RGBBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	stride := b.BytesPerPixel()

	for i, j := 0, 0; i+stride <= len(b.data) && j+4 <= len(img.Pix); i, j = i+stride, j+4 {
		img.Pix[j] = b.data[i]
		img.Pix[j+1] = b.data[i+1]
		img.Pix[j+2] = b.data[i+2]
		if b.Alpha {
			img.Pix[j+3] = b.data[i+3]
		} else {
			img.Pix[j+3] = 0xff
		}
	}

	return img
}

// CreateRGBBuffer creates a new RGBBuffer from a true colour frame. For any
// other bit depth the returned buffer has no pixel data. Use IsNull() to
// check for this.
func (f *Frame) CreateRGBBuffer() *RGBBuffer {
	b := NewRGBBuffer(f.width, f.height, f.bitsPerPixel == TrueColourAlpha)

	if f.bitsPerPixel != TrueColour && f.bitsPerPixel != TrueColourAlpha {
		logger.Logf(logger.Allow, "dmd", "%dbpp unsupported, can't create RGBBuffer", f.bitsPerPixel)
		return b
	}

	b.SetData(f.data)
	return b
}
