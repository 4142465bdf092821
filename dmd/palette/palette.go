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

// Package palette implements the dmd.Palette interface. The nearest colour
// in a palette is found by comparing colours in the CIE L*a*b* colour space,
// which gives better results for the smooth gradients of a dot matrix
// display than comparing RGB values directly.
//
// Default palettes are gradients from black to the colour of a typical
// display (amber, red, green or white) with one entry for every value of the
// bit depth.
package palette

import (
	"image/color"
	"strings"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/lucasb-eyer/go-colorful"
)

// error patterns returned by functions in the palette package
const (
	NoColours      = "palette: no colours in palette"
	TooManyColours = "palette: too many colours in palette (%d)"
	UnknownPalette = "palette: unknown palette (%s)"
	InvalidColour  = "palette: invalid colour (%s): %v"
	InvalidDepth   = "palette: invalid bit depth for palette (%d)"
	DepthColours   = "palette: %d colours is too many for %dbpp"
)

// maximum number of entries in a palette
const maxColours = 256

// base colours of the default palettes
var defaults = map[string]string{
	"amber": "#ff5820",
	"red":   "#ff0000",
	"green": "#00ff00",
	"white": "#ffffff",
}

// Palette is a list of colours. It implements the dmd.Palette interface.
type Palette struct {
	rgb []color.RGBA
	lab []colorful.Color
}

// New creates a palette from a list of colours.
func New(colours ...color.Color) (*Palette, error) {
	if len(colours) == 0 {
		return nil, curated.Errorf(NoColours)
	}
	if len(colours) > maxColours {
		return nil, curated.Errorf(TooManyColours, len(colours))
	}

	p := &Palette{
		rgb: make([]color.RGBA, 0, len(colours)),
		lab: make([]colorful.Color, 0, len(colours)),
	}

	for _, c := range colours {
		rgb := color.RGBAModel.Convert(c).(color.RGBA)
		rgb.A = 0xff
		p.rgb = append(p.rgb, rgb)
		p.lab = append(p.lab, fromRGB(rgb.R, rgb.G, rgb.B))
	}

	return p, nil
}

// NewFromHex creates a palette from a list of colours in hex notation. For
// example, "#ff5820".
func NewFromHex(hex ...string) (*Palette, error) {
	colours := make([]color.Color, 0, len(hex))
	for _, h := range hex {
		h = strings.TrimSpace(h)
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, curated.Errorf(InvalidColour, h, err)
		}
		colours = append(colours, c)
	}
	return New(colours...)
}

// Default returns the named default palette with 2^bpp colours.
func Default(name string, bpp int) (*Palette, error) {
	if bpp < 1 || bpp > 8 {
		return nil, curated.Errorf(InvalidDepth, bpp)
	}

	base, ok := defaults[strings.ToLower(name)]
	if !ok {
		return nil, curated.Errorf(UnknownPalette, name)
	}

	// base colours are known to be valid
	top, _ := colorful.Hex(base)
	black := colorful.Color{}

	n := 1 << bpp
	colours := make([]color.Color, 0, n)
	for i := 0; i < n; i++ {
		colours = append(colours, black.BlendRgb(top, float64(i)/float64(n-1)).Clamped())
	}

	return New(colours...)
}

// Parse returns a palette described by the setting string. The setting is
// either the name of a default palette or a comma separated list of hex
// colours.
//
// Every index of the palette must fit in bpp bits so a list of colours
// can't be longer than 2^bpp.
func Parse(setting string, bpp int) (*Palette, error) {
	if !strings.Contains(setting, "#") {
		return Default(setting, bpp)
	}

	if bpp < 1 || bpp > 8 {
		return nil, curated.Errorf(InvalidDepth, bpp)
	}

	hex := strings.Split(setting, ",")
	if len(hex) > 1<<bpp {
		return nil, curated.Errorf(DepthColours, len(hex), bpp)
	}

	return NewFromHex(hex...)
}

func fromRGB(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.rgb)
}

// Colour returns the colour at the palette index. Indexes outside of the
// palette are returned as transparent black.
func (p *Palette) Colour(idx int) color.RGBA {
	if idx < 0 || idx >= len(p.rgb) {
		return color.RGBA{}
	}
	return p.rgb[idx]
}

// IndexOf implements the dmd.Palette interface. If more than one palette
// entry is the same distance from the colour then the lowest index is
// returned.
func (p *Palette) IndexOf(r, g, b uint8) uint8 {
	for i, c := range p.rgb {
		if c.R == r && c.G == g && c.B == b {
			return uint8(i)
		}
	}

	col := fromRGB(r, g, b)

	idx := 0
	dist := col.DistanceLab(p.lab[0])
	for i := 1; i < len(p.lab); i++ {
		d := col.DistanceLab(p.lab[i])
		if d < dist {
			dist = d
			idx = i
		}
	}

	return uint8(idx)
}
