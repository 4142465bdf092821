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

package dmd_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/dmdgopher/dmdgopher/dmd"
	"github.com/dmdgopher/dmdgopher/logger"
	"github.com/dmdgopher/dmdgopher/test"
)

func TestFrameFromRGB(t *testing.T) {
	rgb := dmd.NewRGBBuffer(2, 1, false)
	rgb.SetData([]uint8{1, 2, 3, 4, 5, 6})
	test.ExpectSuccess(t, rgb.IsValid())

	f := dmd.NewFrameFromRGB(rgb)
	test.ExpectEquality(t, f.BitsPerPixel(), 24)
	test.ExpectSuccess(t, f.IsValid())

	rgb = dmd.NewRGBBuffer(2, 1, true)
	rgb.SetData([]uint8{1, 2, 3, 4, 5, 6, 7, 8})
	f = dmd.NewFrameFromRGB(rgb)
	test.ExpectEquality(t, f.BitsPerPixel(), 32)
	test.ExpectSuccess(t, f.IsValid())

	// and back again
	b := f.CreateRGBBuffer()
	test.ExpectSuccess(t, b.Alpha)
	test.ExpectSuccess(t, b.IsValid())
	test.ExpectEquality(t, string(b.Data()), string([]uint8{1, 2, 3, 4, 5, 6, 7, 8}))
}

func TestCreateRGBBufferUnsupported(t *testing.T) {
	logger.Clear()

	f := mustFrame(t, 2, 1, 4, []uint8{1, 2})
	b := f.CreateRGBBuffer()
	test.ExpectSuccess(t, b.IsNull())
	test.ExpectFailure(t, b.IsValid())
	test.ExpectEquality(t, b.Width, 2)
	test.ExpectEquality(t, b.Height, 1)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "dmd: 4bpp unsupported, can't create RGBBuffer\n")
}

func TestRGBBufferImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 0x80})

	b := dmd.NewRGBBufferFromImage(img)
	test.ExpectSuccess(t, b.Alpha)
	test.ExpectSuccess(t, b.IsValid())
	test.ExpectEquality(t, string(b.Data()), string([]uint8{10, 20, 30, 0xff, 40, 50, 60, 0x80}))

	back := b.Image()
	test.ExpectEquality(t, back.NRGBAAt(1, 0), color.NRGBA{R: 40, G: 50, B: 60, A: 0x80})

	// opaque images do not have an alpha channel
	opaque := image.NewRGBA(image.Rect(0, 0, 1, 1))
	opaque.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	b = dmd.NewRGBBufferFromImage(opaque)
	test.ExpectFailure(t, b.Alpha)
	test.ExpectEquality(t, string(b.Data()), string([]uint8{1, 2, 3}))
	test.ExpectEquality(t, b.Image().NRGBAAt(0, 0), color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})
}
