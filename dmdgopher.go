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

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/dmd"
	"github.com/dmdgopher/dmdgopher/dmd/palette"
	"github.com/dmdgopher/dmdgopher/logger"
	"github.com/dmdgopher/dmdgopher/modalflag"
	"github.com/dmdgopher/dmdgopher/paths"
	"github.com/dmdgopher/dmdgopher/prefs"
	"github.com/dmdgopher/dmdgopher/source"
	"github.com/dmdgopher/dmdgopher/statsview"
	"github.com/dmdgopher/dmdgopher/version"
	"github.com/dmdgopher/dmdgopher/vni"
)

const defaultSourceType = "txt"

const defaultPalette = "white"

const defaultConfigFile = "dmdgopher.yaml"

func main() {
	err := launch(os.Stdout, os.Args[1:])
	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}
}

// options that apply to every mode
type options struct {
	cfg    *prefs.Config
	memviz string
}

func launch(output io.Writer, args []string) error {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	configFile := md.AddString("config", "", fmt.Sprintf("YAML configuration file (default %s)", paths.ResourcePath(defaultConfigFile)))
	prefsString := md.AddString("prefs", "", "preferences that override the configuration (eg. \"source.bitsperpixel::2\")")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	memvizFile := md.AddString("memviz", "", "write graphviz description of the decoded data to file")
	echo := md.AddBool("log", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "print version and exit")
	md.AddSubModes("INFO", "PLANES", "DEDUP", "REDUCE", "PLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return nil
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		stop := statsview.Launch(output, "")
		defer stop()
	}

	opts := options{
		cfg:    prefs.NewConfig(),
		memviz: *memvizFile,
	}

	// the default configuration file is optional
	if *configFile == "" {
		def := paths.ResourcePath(defaultConfigFile)
		if _, err := os.Stat(def); err == nil {
			*configFile = def
		}
	}

	if *configFile != "" {
		opts.cfg, err = prefs.LoadFile(*configFile)
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "dmdgopher", "configuration loaded from %s", *configFile)
	}

	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "dmdgopher", "unused prefs: %s", unused)
			}
		}()
	}

	switch md.Mode() {
	case "INFO":
		return info(md, output, opts)
	case "PLANES":
		return planes(md, output, opts)
	case "DEDUP":
		return dedup(md, output, opts)
	case "REDUCE":
		return reduce(md, output, opts)
	case "PLAY":
		return play(md, output, opts)
	}

	return fmt.Errorf("%s mode not implemented", md.Mode())
}

// parse the flags for the mode. the returned bool is false if the mode should
// end without error
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, err
	}

	if len(md.RemainingArgs()) > 1 {
		return false, fmt.Errorf("too many arguments for %s mode", md.Mode())
	}

	return true, nil
}

// loadFrames reads every frame from the source described by the
// configuration. the name argument overrides the name in the configuration
// if it is not empty
func loadFrames(cfg *prefs.Config, name string) ([]*dmd.Frame, int, error) {
	src, err := source.New(cfg.Source.String("type", defaultSourceType))
	if err != nil {
		return nil, 0, err
	}

	sec := cfg.Source
	if name != "" {
		sec = sec.With("name", name)
	}

	err = src.Configure(cfg.General, sec)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	var frames []*dmd.Frame

	src.Start()
	for !src.Finished() {
		f, err := src.NextFrame()
		if err != nil {
			if curated.Is(err, source.NoMoreFrames) {
				break
			}
			return nil, 0, err
		}
		frames = append(frames, f)
	}

	logger.Logf(logger.Allow, "dmdgopher", "%d frames loaded", len(frames))

	return frames, src.DroppedFrames(), nil
}

// writeMemviz writes the graphviz description of v to the named file. does
// nothing if filename is empty
func writeMemviz(filename string, v interface{}) error {
	if filename == "" {
		return nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, v)

	return nil
}

func info(md *modalflag.Modes, output io.Writer, opts options) error {
	md.NewMode()
	md.AdditionalHelp("Lists every frame of the source with its checksum.")
	if ok, err := parseMode(md); !ok {
		return err
	}

	frames, dropped, err := loadFrames(opts.cfg, md.GetArg(0))
	if err != nil {
		return err
	}

	for _, f := range frames {
		fmt.Fprintf(output, "%4d %s\n", f.ID(), f)
	}
	fmt.Fprintf(output, "%d frames (%d dropped)\n", len(frames), dropped)

	if len(frames) > 0 {
		return writeMemviz(opts.memviz, frames[0])
	}
	return nil
}

func planes(md *modalflag.Modes, output io.Writer, opts options) error {
	md.NewMode()
	bit := md.AddInt("bit", -1, "bit plane to show (-1 for every plane)")
	if ok, err := parseMode(md); !ok {
		return err
	}

	frames, _, err := loadFrames(opts.cfg, md.GetArg(0))
	if err != nil {
		return err
	}

	for _, f := range frames {
		fmt.Fprintf(output, "%4d %s\n", f.ID(), f)

		if *bit >= 0 {
			p, err := f.Plane(*bit)
			if err != nil {
				return err
			}
			fmt.Fprintf(output, "     %d: % x\n", *bit, p)
			continue
		}

		planes, err := f.Planes()
		if err != nil {
			return err
		}
		for i, p := range planes {
			fmt.Fprintf(output, "     %d: % x\n", i, p)
		}
	}

	if len(frames) > 0 {
		return writeMemviz(opts.memviz, frames[0])
	}
	return nil
}

func dedup(md *modalflag.Modes, output io.Writer, opts options) error {
	md.NewMode()
	md.AdditionalHelp("Counts the frames that are identical to an earlier frame.")
	if ok, err := parseMode(md); !ok {
		return err
	}

	frames, _, err := loadFrames(opts.cfg, md.GetArg(0))
	if err != nil {
		return err
	}

	var unique []*dmd.Frame
	duplicates := 0

	for _, f := range frames {
		found := false
		for _, u := range unique {
			if f.HasSameSizeAndChecksum(u) {
				logger.Logf(logger.Allow, "dmdgopher", "frame %d is a duplicate of frame %d", f.ID(), u.ID())
				found = true
				break
			}
		}
		if found {
			duplicates++
		} else {
			unique = append(unique, f)
		}
	}

	fmt.Fprintf(output, "%d frames, %d unique, %d duplicates\n", len(frames), len(unique), duplicates)

	if len(unique) > 0 {
		return writeMemviz(opts.memviz, unique)
	}
	return nil
}

func reduce(md *modalflag.Modes, output io.Writer, opts options) error {
	md.NewMode()
	bpp := md.AddInt("bpp", 2, "bits per pixel of the reduced frames")
	pal := md.AddString("palette", "", "palette name or comma separated hex colours (default from configuration)")
	useAlpha := md.AddBool("alpha", true, "pixels that are not opaque are transparent")
	out := md.AddString("out", "", "directory to write reduced frames to as PNG files")
	if ok, err := parseMode(md); !ok {
		return err
	}

	setting := *pal
	if setting == "" {
		setting = opts.cfg.General.String("palette", defaultPalette)
	}

	p, err := palette.Parse(setting, *bpp)
	if err != nil {
		return err
	}

	frames, _, err := loadFrames(opts.cfg, md.GetArg(0))
	if err != nil {
		return err
	}

	var first *dmd.Frame

	for _, f := range frames {
		r, err := f.RemoveColors(*bpp, p, *useAlpha)
		if err != nil {
			return err
		}
		if first == nil {
			first = r
		}

		fmt.Fprintf(output, "%4d %s\n", r.ID(), r)

		if *out != "" {
			err = writeReduced(filepath.Join(*out, fmt.Sprintf("frame%04d.png", r.ID())), r, p)
			if err != nil {
				return err
			}
		}
	}

	if first != nil {
		return writeMemviz(opts.memviz, first)
	}
	return nil
}

// writeReduced writes a palette indexed frame as a PNG file. pixels with the
// transparent index are written as transparent
func writeReduced(filename string, f *dmd.Frame, p *palette.Palette) error {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			idx := f.Pixel(x, y)
			if idx == dmd.TransparentIndex {
				continue
			}
			c := p.Colour(int(idx))
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	return png.Encode(w, img)
}

func play(md *modalflag.Modes, output io.Writer, opts options) error {
	md.NewMode()
	offset := md.AddInt("offset", 0, "offset of the animation in the animation set")
	delay := md.AddInt("delay", 40, "delay between frames in milliseconds")
	realtime := md.AddBool("realtime", false, "wait for the delay between frames")
	if ok, err := parseMode(md); !ok {
		return err
	}

	if *offset < 0 || int64(*offset) > math.MaxUint32 {
		return fmt.Errorf("offset must be between 0 and %d (%d)", uint32(math.MaxUint32), *offset)
	}
	if *delay < 0 {
		return fmt.Errorf("delay can not be negative (%d)", *delay)
	}

	frames, _, err := loadFrames(opts.cfg, md.GetArg(0))
	if err != nil {
		return err
	}

	d := time.Duration(*delay) * time.Millisecond
	af := make([]vni.AnimationFrame, 0, len(frames))
	for _, f := range frames {
		af = append(af, vni.NewAnimationFrame(f, d))
	}

	anim := vni.NewAnimation(af)
	anim.Name = md.GetArg(0)
	anim.Offset = uint32(*offset)

	set, err := vni.NewAnimationSet(anim)
	if err != nil {
		return err
	}

	a, err := set.Find(uint32(*offset))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "animation at offset %d: %d frames, %dx%d, %s mode\n", a.Offset, a.NumFrames(), a.Width, a.Height, a.SwitchMode)

	a.Start(true)
	for a.IsActive() {
		fr, ok := a.NextFrame()
		if !ok {
			break
		}
		fmt.Fprintf(output, "%4d %s (%d left)\n", fr.Frame.ID(), fr.Frame, a.FramesLeft())
		if *realtime {
			time.Sleep(fr.Delay)
		}
	}

	return writeMemviz(opts.memviz, set)
}
