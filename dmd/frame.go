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
	"fmt"
	"hash/crc32"

	"github.com/dmdgopher/dmdgopher/curated"
)

// Bit depths with special meaning. Bit depths of 8 and below are palette
// indexed.
const (
	MaxPaletteDepth = 8
	TrueColour      = 24
	TrueColourAlpha = 32
)

// TransparentIndex is the palette index given to pixels that are not fully
// opaque when colours are removed from a frame with an alpha channel.
const TransparentIndex = 0xff

// ValidBitsPerPixel returns true if the bit depth can be used for a Frame.
func ValidBitsPerPixel(bpp int) bool {
	return (bpp >= 1 && bpp <= MaxPaletteDepth) || bpp == TrueColour || bpp == TrueColourAlpha
}

// BytesPerPixel returns the number of bytes used to store one pixel of the
// bit depth.
func BytesPerPixel(bpp int) int {
	return (bpp + 7) / 8
}

// Frame is a single frame of a dot matrix display. The zero value is the null
// frame.
type Frame struct {
	// sequence number of the frame. assigned by the source of the frame and
	// not used by the Frame type itself
	id int

	width        int
	height       int
	bitsPerPixel int

	// number of bytes in a row of pixels
	rowLength int

	// bits in the mask are set for the bits that are used in a palette indexed
	// pixel value
	pixelMask uint8

	// one byte per pixel for palette indexed frames. three or four bytes per
	// pixel for true colour frames
	data []uint8

	checksum      uint32
	checksumValid bool

	// planes are calculated on demand and are invalidated whenever data
	// changes
	planes [][]uint8
}

func checkSize(width, height, bpp int) error {
	if width < 0 || height < 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}
	if !ValidBitsPerPixel(bpp) {
		return curated.Errorf(UnsupportedBitDepth, bpp)
	}
	return nil
}

// NewFrame is the preferred method of initialisation for the Frame type. The
// new frame has no pixel data and will not be valid until width*height
// pixels have been added with AppendPixel().
func NewFrame(width, height, bpp int) (*Frame, error) {
	if err := checkSize(width, height, bpp); err != nil {
		return nil, err
	}

	f := &Frame{
		width:        width,
		height:       height,
		bitsPerPixel: bpp,
	}
	f.initMemory(width * height * BytesPerPixel(bpp))

	return f, nil
}

// NewFrameFromData creates a new frame from unpacked pixel data. The length of
// data must be exactly width*height*BytesPerPixel(bpp). The data is copied.
func NewFrameFromData(width, height, bpp int, data []uint8) (*Frame, error) {
	f, err := NewFrame(width, height, bpp)
	if err != nil {
		return nil, err
	}

	l := f.expectedLength()
	if len(data) != l {
		return nil, curated.Errorf(DataLength, len(data), l)
	}
	f.data = append(f.data, data...)

	return f, nil
}

// NewFrameFromPacked creates a new frame from packed pixel data. Each pixel
// occupies exactly bpp bits, most significant bit first, with no padding
// between pixels or at the end of rows. The bit depth must be between 1 and
// 8.
func NewFrameFromPacked(width, height, bpp int, packed []uint8) (*Frame, error) {
	if bpp < 1 || bpp > MaxPaletteDepth {
		return nil, curated.Errorf(PackedBitDepth, bpp)
	}

	f, err := NewFrame(width, height, bpp)
	if err != nil {
		return nil, err
	}

	numPixels := width * height
	l := packedLength(numPixels, bpp)
	if len(packed) < l {
		return nil, curated.Errorf(PackedDataLength, len(packed), l)
	}
	f.data = unpack(f.data, packed, numPixels, bpp)

	return f, nil
}

// NewFrameFromRGB creates a new true colour frame from an RGBBuffer. The frame
// will be 32bpp if the buffer has an alpha channel and 24bpp otherwise.
func NewFrameFromRGB(rgb *RGBBuffer) *Frame {
	f := &Frame{
		width:        rgb.Width,
		height:       rgb.Height,
		bitsPerPixel: TrueColour,
	}
	if rgb.Alpha {
		f.bitsPerPixel = TrueColourAlpha
	}
	f.initMemory(len(rgb.data))
	f.data = append(f.data, rgb.data...)
	return f
}

// WrapPixelData creates a new frame using the data slice for the pixel data.
// The data is not copied and the length is not checked. Use IsValid() to
// check that the length of the data is correct for the frame size.
func WrapPixelData(width, height, bpp int, data []uint8) (*Frame, error) {
	if err := checkSize(width, height, bpp); err != nil {
		return nil, err
	}

	f := &Frame{
		width:        width,
		height:       height,
		bitsPerPixel: bpp,
	}
	f.initMemory(0)
	f.data = data

	return f, nil
}

// reset derived values and clear all pixel data
func (f *Frame) initMemory(capacity int) {
	f.rowLength = f.width * BytesPerPixel(f.bitsPerPixel)

	if f.bitsPerPixel <= MaxPaletteDepth {
		f.pixelMask = uint8(0xff >> (MaxPaletteDepth - f.bitsPerPixel))
	} else {
		f.pixelMask = 0xff
	}

	f.data = make([]uint8, 0, capacity)
	f.planes = nil
	f.checksum = 0
	f.checksumValid = false
}

func (f *Frame) expectedLength() int {
	return f.rowLength * f.height
}

// String implements the fmt.Stringer interface. The checksum is calculated
// if necessary.
func (f *Frame) String() string {
	return fmt.Sprintf("frame(%dx%d,%dbpp, checksum=%08x)", f.width, f.height, f.bitsPerPixel, f.Checksum(false))
}

// ID returns the sequence number assigned to the frame by its source.
func (f *Frame) ID() int {
	return f.id
}

// SetID sets the sequence number of the frame.
func (f *Frame) SetID(id int) {
	f.id = id
}

// Width of frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height of frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// BitsPerPixel returns the bit depth of the frame.
func (f *Frame) BitsPerPixel() int {
	return f.bitsPerPixel
}

// RowLength returns the number of bytes in one row of pixel data.
func (f *Frame) RowLength() int {
	return f.rowLength
}

// PixelMask returns the bits used by a palette indexed pixel.
func (f *Frame) PixelMask() uint8 {
	return f.pixelMask
}

// PixelData returns a copy of the pixel data.
func (f *Frame) PixelData() []uint8 {
	d := make([]uint8, len(f.data))
	copy(d, f.data)
	return d
}

// Pixel returns the stored value at the x and y coordinates. For true colour
// frames this is the red component of the pixel.
//
// The row offset is y*RowLength() and the column offset is x multiplied by
// the number of bytes per pixel. Palette indexed frames always use one byte
// per pixel so the column offset does not depend on the bit depth.
func (f *Frame) Pixel(x, y int) uint8 {
	return f.data[y*f.rowLength+x*BytesPerPixel(f.bitsPerPixel)]
}

// AppendPixel adds one byte of pixel data to the end of the frame. The
// checksum and plane data are invalidated.
func (f *Frame) AppendPixel(px uint8) {
	f.data = append(f.data, px)

	// don't recalculate the checksum now, there might be more pixels coming
	f.checksumValid = false
	f.planes = nil
}

// IsNull returns true if the frame has no width and no height.
func (f *Frame) IsNull() bool {
	return f.width == 0 && f.height == 0
}

// IsValid returns true if the length of the pixel data is correct for the
// dimensions and bit depth of the frame.
func (f *Frame) IsValid() bool {
	return len(f.data) == f.width*f.height*BytesPerPixel(f.bitsPerPixel)
}

// HasSameSize returns true if both frames have the same width, height and
// bit depth.
func (f *Frame) HasSameSize(o *Frame) bool {
	return f.width == o.width && f.height == o.height && f.bitsPerPixel == o.bitsPerPixel
}

// HasSameSizeAndChecksum returns true if both frames have the same size and
// the checksums of the pixel data are the same. The checksums of both frames
// will be calculated if necessary.
func (f *Frame) HasSameSizeAndChecksum(o *Frame) bool {
	if !f.HasSameSize(o) {
		return false
	}
	return f.Checksum(false) == o.Checksum(false)
}

// Checksum returns the CRC32 of the pixel data. The checksum is only
// calculated if the pixel data has changed since the last call or if recalc
// is true.
func (f *Frame) Checksum(recalc bool) uint32 {
	if !f.checksumValid || recalc {
		f.checksum = crc32.ChecksumIEEE(f.data)
		f.checksumValid = true
	}
	return f.checksum
}

// SetSize changes the dimensions and the bit depth of the frame. If the
// values are different to the current values then all pixel data is
// removed.
func (f *Frame) SetSize(width, height, bpp int) error {
	if f.width == width && f.height == height && f.bitsPerPixel == bpp {
		return nil
	}

	if err := checkSize(width, height, bpp); err != nil {
		return err
	}

	f.width = width
	f.height = height
	f.bitsPerPixel = bpp
	f.initMemory(width * height * BytesPerPixel(bpp))

	return nil
}
