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
	"context"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/dmd"
	"github.com/dmdgopher/dmdgopher/dmd/palette"
	"github.com/dmdgopher/dmdgopher/logger"
	"github.com/dmdgopher/dmdgopher/prefs"
	"golang.org/x/sync/errgroup"
)

// PNG reads frames from a sequence of PNG files. All files are decoded when
// the source is configured.
//
// Frames are true colour unless the bitsperpixel value of the source
// configuration is between 1 and 7, in which case the colours are reduced
// using the palette named in the general section of the configuration.
type PNG struct {
	frames  []*dmd.Frame
	dropped int
}

// NewPNG is the preferred method of initialisation for the PNG type.
func NewPNG() *PNG {
	return &PNG{}
}

// list of PNG files for the name. the name can be a directory, a glob pattern
// or a single file
func pngFiles(name string) ([]string, error) {
	var files []string

	if info, err := os.Stat(name); err == nil && info.IsDir() {
		files, err = filepath.Glob(filepath.Join(name, "*.png"))
		if err != nil {
			return nil, err
		}
	} else if strings.ContainsAny(name, "*?[") {
		files, err = filepath.Glob(name)
		if err != nil {
			return nil, err
		}
	} else if err == nil {
		files = []string{name}
	}

	sort.Strings(files)
	return files, nil
}

func decodePNG(filename string) (*dmd.Frame, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	return dmd.NewFrameFromRGB(dmd.NewRGBBufferFromImage(img)), nil
}

// Configure implements the Source interface. The following keys in the source
// section are used:
//
//	name          directory, glob pattern or filename
//	bitsperpixel  bit depth to reduce colours to, 0 to 7 (default 0, no reduction)
//	use_alpha     pixels that are not opaque are transparent (default true)
//
// The palette key in the general section names the palette used for colour
// reduction (default "white").
func (src *PNG) Configure(general prefs.Section, source prefs.Section) error {
	name := source.String("name", "")
	if name == "" {
		return curated.Errorf(NoFilename)
	}

	files, err := pngFiles(name)
	if err != nil {
		return curated.Errorf(OpenError, name, err)
	}
	if len(files) == 0 {
		return curated.Errorf(NoFiles, name)
	}

	// zero means the frames are not reduced
	bpp, err := source.IntChecked("bitsperpixel", 0, func(bpp int) error {
		if bpp < 0 || bpp >= dmd.MaxPaletteDepth {
			return curated.Errorf(dmd.ReductionDepth, bpp)
		}
		return nil
	})
	if err != nil {
		return err
	}

	var pal *palette.Palette
	useAlpha := source.Bool("use_alpha", true)
	if bpp > 0 {
		pal, err = palette.Parse(general.String("palette", "white"), bpp)
		if err != nil {
			return err
		}
	}

	// each goroutine decodes a single file and owns the frame until
	// errgroup.Wait() returns
	frames := make([]*dmd.Frame, len(files))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for i, fn := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := decodePNG(fn)
			if err != nil {
				return curated.Errorf(DecodeError, fn, err)
			}

			if pal != nil {
				f, err = f.RemoveColors(bpp, pal, useAlpha)
				if err != nil {
					return curated.Errorf(DecodeError, fn, err)
				}
			}

			frames[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// frames must all be the same size as the first frame
	src.frames = make([]*dmd.Frame, 0, len(frames))
	for i, f := range frames {
		if len(src.frames) > 0 && !src.frames[0].HasSameSize(f) {
			logger.Logf(logger.Allow, "pngsource", "dropping %s: %s does not match %s", files[i], f, src.frames[0])
			src.dropped++
			continue
		}
		f.SetID(len(src.frames) + 1)
		src.frames = append(src.frames, f)
	}

	logger.Logf(logger.Allow, "pngsource", "loaded %d frames from %s", len(src.frames), name)

	return nil
}

// Start implements the Source interface.
func (src *PNG) Start() {
}

// NextFrame implements the Source interface.
func (src *PNG) NextFrame() (*dmd.Frame, error) {
	if len(src.frames) == 0 {
		return nil, curated.Errorf(NoMoreFrames)
	}
	f := src.frames[0]
	src.frames[0] = nil
	src.frames = src.frames[1:]
	return f, nil
}

// Finished implements the Source interface.
func (src *PNG) Finished() bool {
	return len(src.frames) == 0
}

// FrameReady implements the Source interface.
func (src *PNG) FrameReady() bool {
	return len(src.frames) > 0
}

// Properties implements the Source interface.
func (src *PNG) Properties() Properties {
	if len(src.frames) == 0 {
		return Properties{}
	}
	return PropertiesOf(src.frames[0])
}

// DroppedFrames implements the Source interface. Frames are dropped if they
// are not the same size as the first frame.
func (src *PNG) DroppedFrames() int {
	return src.dropped
}

// Close implements the Source interface.
func (src *PNG) Close() error {
	src.frames = nil
	return nil
}
