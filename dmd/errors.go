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

// error patterns returned by functions in the dmd package. use with
// curated.Is() and curated.Has()
const (
	UnsupportedBitDepth = "dmd: unsupported bit depth (%d)"
	InvalidDimensions   = "dmd: invalid dimensions (%dx%d)"
	DataLength          = "dmd: pixel data is %d bytes but should be %d bytes"
	PackedDataLength    = "dmd: packed pixel data is %d bytes but should be at least %d bytes"
	PackedBitDepth      = "dmd: packed pixel data must be between 1 and 8 bits per pixel (%d)"
	NotTrueColour       = "dmd: frame must be 24 or 32 bits per pixel (%d)"
	ReductionDepth      = "dmd: colours can only be reduced to between 1 and 7 bits per pixel (%d)"
	PlaneDepth          = "dmd: plane data is not available for %dbpp frames"
	PlaneIndex          = "dmd: plane %d does not exist for %dbpp frame"
	RegionDepth         = "dmd: region matching requires frames of less than 8bpp (frame %dbpp, region %dbpp)"
	RegionBounds        = "dmd: region of %dx%d at %d,%d is outside of frame of %dx%d"
)
