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
	"math/rand/v2"
	"testing"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/dmd"
	"github.com/dmdgopher/dmdgopher/test"
)

func TestPlaneSingleBit(t *testing.T) {
	f := mustFrame(t, 8, 1, 1, []uint8{1, 0, 0, 0, 0, 0, 0, 1})
	p, err := f.Plane(0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0], uint8(0x81))

	// first pixel of every eight is the most significant bit
	f = mustFrame(t, 8, 2, 1, []uint8{
		1, 1, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 1,
	})
	p, err = f.Plane(0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0], uint8(0xc0))
	test.ExpectEquality(t, p[1], uint8(0x01))
}

func TestPlaneIdempotent(t *testing.T) {
	f := mustFrame(t, 8, 1, 1, []uint8{0, 1, 0, 1, 1, 0, 1, 1})
	a, err := f.Plane(0)
	test.DemandSuccess(t, err)
	b, err := f.Plane(0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(a), len(b))
	test.ExpectEquality(t, a[0], b[0])
	test.ExpectEquality(t, a[0], uint8(0x5b))

	// modifying the returned plane does not affect the frame
	a[0] = 0
	c, err := f.Plane(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c[0], uint8(0x5b))
}

func TestPlaneMultipleBits(t *testing.T) {
	f := mustFrame(t, 8, 1, 2, []uint8{3, 1, 2, 0, 0, 0, 0, 0})

	p0, err := f.Plane(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p0[0], uint8(0xc0))

	p1, err := f.Plane(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p1[0], uint8(0xa0))
}

func TestPlanePartialByte(t *testing.T) {
	// three pixels occupy the low three bits of the only byte
	f := mustFrame(t, 3, 1, 1, []uint8{1, 0, 0})
	p, err := f.Plane(0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0], uint8(0x04))

	f = mustFrame(t, 10, 1, 1, []uint8{1, 0, 0, 0, 0, 0, 0, 0, 1, 1})
	p, err = f.Plane(0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0], uint8(0x80))
	test.ExpectEquality(t, p[1], uint8(0x03))
}

func TestPlanesReassemble(t *testing.T) {
	const w = 128
	const h = 32
	const bpp = 4

	data := make([]uint8, w*h)
	for i := range data {
		data[i] = uint8(rand.IntN(1 << bpp))
	}
	f := mustFrame(t, w, h, bpp, data)

	planes, err := f.Planes()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(planes), bpp)

	for i := range data {
		var px uint8
		for b := 0; b < bpp; b++ {
			if planes[b][i/8]&(0x80>>(i%8)) != 0 {
				px |= 1 << b
			}
		}
		test.ExpectEquality(t, px, data[i], i)
	}
}

func TestPlaneInvalidation(t *testing.T) {
	f, err := dmd.NewFrame(9, 1, 1)
	test.DemandSuccess(t, err)
	for range 8 {
		f.AppendPixel(1)
	}

	p, err := f.Plane(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0], uint8(0xff))

	f.AppendPixel(1)
	p, err = f.Plane(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p), 2)
	test.ExpectEquality(t, p[1], uint8(0x01))
}

func TestPlaneErrors(t *testing.T) {
	f := mustFrame(t, 1, 1, 24, []uint8{1, 2, 3})
	_, err := f.Plane(0)
	test.ExpectSuccess(t, curated.Is(err, dmd.PlaneDepth))

	f = mustFrame(t, 1, 1, 4, []uint8{1})
	_, err = f.Plane(4)
	test.ExpectSuccess(t, curated.Is(err, dmd.PlaneIndex))
	_, err = f.Plane(-1)
	test.ExpectSuccess(t, curated.Is(err, dmd.PlaneIndex))
}
