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

package source

import (
	"strings"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/dmd"
	"github.com/dmdgopher/dmdgopher/prefs"
)

// error patterns returned by functions in the source package
const (
	UnknownSource = "source: unknown source type (%s)"
	NoMoreFrames  = "source: no more frames"
	NoFilename    = "source: no filename in configuration"
	OpenError     = "source: cannot open %s: %v"
	NoFiles       = "source: no png files found (%s)"
	DecodeError   = "source: cannot decode %s: %v"
)

// Properties of the frames produced by a source.
type Properties struct {
	Width        int
	Height       int
	BitsPerPixel int
}

// PropertiesOf returns the properties of a frame.
func PropertiesOf(f *dmd.Frame) Properties {
	if f == nil {
		return Properties{}
	}
	return Properties{
		Width:        f.Width(),
		Height:       f.Height(),
		BitsPerPixel: f.BitsPerPixel(),
	}
}

// Source implementations produce frames for a dot matrix display.
type Source interface {
	// Configure the source. The source will be ready to produce frames if
	// no error is returned.
	Configure(general prefs.Section, source prefs.Section) error

	// Start is called just before the first call to NextFrame().
	Start()

	// NextFrame returns the next frame. Returns a NoMoreFrames error if the
	// source is finished.
	NextFrame() (*dmd.Frame, error)

	// Finished returns true if there are no more frames.
	Finished() bool

	// FrameReady returns true if a call to NextFrame() will return a frame
	// without waiting.
	FrameReady() bool

	// Properties of the next frame.
	Properties() Properties

	// DroppedFrames returns the number of frames that could not be delivered.
	DroppedFrames() int

	Close() error
}

// New returns a new unconfigured source of the named type. Valid types are
// "txt" and "png".
func New(sourceType string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(sourceType)) {
	case "txt":
		return NewTXT(), nil
	case "png":
		return NewPNG(), nil
	}
	return nil, curated.Errorf(UnknownSource, sourceType)
}
