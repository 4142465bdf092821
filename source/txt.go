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
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/dmd"
	"github.com/dmdgopher/dmdgopher/logger"
	"github.com/dmdgopher/dmdgopher/prefs"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// the line that begins every frame in a text dump contains the timestamp of
// the frame, in milliseconds, as an eight digit hex number
var timestampRegex = regexp.MustCompile(`(0x|\$)([0-9a-fA-F]{8})`)

var gzipMagic = []byte{0x1f, 0x8b}
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// the longest time NextFrame() will wait for a frame that is not yet due
const maxFrameWait = 10 * time.Millisecond

// default values for the configuration
const (
	defaultTXTBitsPerPixel = 4
	defaultUseTimingData   = true
)

// TXT reads frames from a text dump of a display. The dump is a series of
// frames, each beginning with a timestamp line and followed by one line of
// hex digits for each row of pixels. A frame ends with an empty line:
//
//	0x0001a2b4
//	00000000
//	00f00f00
//	00000000
//
// The dump can be compressed with gzip or zstd.
type TXT struct {
	filename      string
	bitsPerPixel  int
	useTimingData bool

	file         *os.File
	decompressor io.Closer
	scanner      *bufio.Scanner
	eof          bool

	// the frame that will be returned by the next call to NextFrame()
	preloaded          *dmd.Frame
	preloadedTimestamp uint32

	// sequence number of the most recently preloaded frame
	id int

	// the timestamps in the dump are relative to start
	start time.Time
	now   func() time.Time
}

// NewTXT is the preferred method of initialisation for the TXT type.
func NewTXT() *TXT {
	return &TXT{
		bitsPerPixel:  defaultTXTBitsPerPixel,
		useTimingData: defaultUseTimingData,
		now:           time.Now,
	}
}

// Configure implements the Source interface. The following keys in the source
// section are used:
//
//	name             filename of the dump
//	bitsperpixel     bit depth of the frames, 1 to 8 (default 4)
//	use_timing_data  deliver frames according to the timestamps (default true)
func (src *TXT) Configure(_ prefs.Section, source prefs.Section) error {
	// every character of the dump is one pixel so the frames must be palette
	// indexed
	bpp, err := source.IntChecked("bitsperpixel", defaultTXTBitsPerPixel, func(bpp int) error {
		if bpp < 1 || bpp > dmd.MaxPaletteDepth {
			return curated.Errorf(dmd.UnsupportedBitDepth, bpp)
		}
		return nil
	})
	if err != nil {
		return err
	}
	src.bitsPerPixel = bpp
	src.useTimingData = source.Bool("use_timing_data", defaultUseTimingData)
	src.filename = source.String("name", "")

	if src.filename == "" {
		return curated.Errorf(NoFilename)
	}

	f, err := os.Open(src.filename)
	if err != nil {
		logger.Logf(logger.Allow, "txtsource", "can't open file %s: %v", src.filename, err)
		src.eof = true
		return curated.Errorf(OpenError, src.filename, err)
	}
	src.file = f

	err = src.open(f)
	if err != nil {
		src.Close()
		src.eof = true
		return curated.Errorf(OpenError, src.filename, err)
	}
	logger.Logf(logger.Allow, "txtsource", "successfully opened %s", src.filename)

	src.preloadNextFrame()

	// the dump might not start with timestamp 0 so adjust the start time
	// according to the first frame
	src.Start()

	return nil
}

// open prepares the reader, decompressing it if necessary
func (src *TXT) open(r io.Reader) error {
	br := bufio.NewReader(r)

	// an error from Peek() means that there are fewer than four bytes in the
	// file. the magic tests will fail and the reader is used as is
	magic, _ := br.Peek(len(zstdMagic))

	var rd io.Reader = br

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		logger.Logf(logger.Allow, "txtsource", "%s is gzip compressed, uncompressing it while reading", src.filename)
		gz, err := gzip.NewReader(br)
		if err != nil {
			return err
		}
		src.decompressor = gz
		rd = gz

	case bytes.HasPrefix(magic, zstdMagic):
		logger.Logf(logger.Allow, "txtsource", "%s is zstd compressed, uncompressing it while reading", src.filename)
		zd, err := zstd.NewReader(br)
		if err != nil {
			return err
		}
		rc := zd.IOReadCloser()
		src.decompressor = rc
		rd = rc
	}

	src.scanner = bufio.NewScanner(rd)
	return nil
}

func (src *TXT) timestamp() uint32 {
	return uint32(src.now().Sub(src.start).Milliseconds())
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// read the next frame from the dump. if there are no more frames then eof
// is set and preloaded is nil
func (src *TXT) preloadNextFrame() {
	src.preloaded = nil

	if src.eof {
		return
	}

	// look for timestamp
	found := false
	for !found && src.scanner.Scan() {
		line := strings.TrimRight(src.scanner.Text(), " \t\r\f\v")
		m := timestampRegex.FindStringSubmatch(line)
		if m != nil {
			// the regex guarantees eight hex digits
			ts, _ := strconv.ParseUint(m[2], 16, 32)
			src.preloadedTimestamp = uint32(ts)
			found = true
		}
	}

	if !found {
		src.finish()
		return
	}

	// read rows until an empty line or the end of the file
	var rows []string
	width := 0
	for src.scanner.Scan() {
		line := strings.TrimRight(src.scanner.Text(), " \t\r\f\v")
		if len(line) == 0 {
			break
		}
		if len(line) > width {
			width = len(line)
		}
		rows = append(rows, line)
	}

	if err := src.scanner.Err(); err != nil {
		src.finish()
		return
	}

	f, err := dmd.NewFrame(width, len(rows), src.bitsPerPixel)
	if err != nil {
		logger.Logf(logger.Allow, "txtsource", "error reading file: %v", err)
		src.eof = true
		return
	}

	src.id++
	f.SetID(src.id)

	for _, row := range rows {
		for x := 0; x < width; x++ {
			var pv uint8
			if x < len(row) {
				pv = hexValue(row[x]) & f.PixelMask()
			}
			f.AppendPixel(pv)
		}
	}

	src.preloaded = f
}

func (src *TXT) finish() {
	if err := src.scanner.Err(); err != nil {
		logger.Logf(logger.Allow, "txtsource", "error reading file: %v", err)
	}
	src.eof = true
}

// Start implements the Source interface. The timestamps of the dump are
// relative to the first frame.
func (src *TXT) Start() {
	src.start = src.now().Add(-time.Duration(src.preloadedTimestamp) * time.Millisecond)
}

// NextFrame implements the Source interface. If timing data is being used and
// the next frame is not yet due then NextFrame() will wait a short time
// before returning the frame.
func (src *TXT) NextFrame() (*dmd.Frame, error) {
	if src.preloaded == nil {
		return nil, curated.Errorf(NoMoreFrames)
	}

	if src.useTimingData {
		if ts := src.timestamp(); ts < src.preloadedTimestamp {
			d := time.Duration(src.preloadedTimestamp-ts) * time.Millisecond
			if d > maxFrameWait {
				d = maxFrameWait
			}
			time.Sleep(d)
		}
	}

	f := src.preloaded
	src.preloadNextFrame()

	return f, nil
}

// Finished implements the Source interface.
func (src *TXT) Finished() bool {
	return src.preloaded == nil && src.eof
}

// FrameReady implements the Source interface.
func (src *TXT) FrameReady() bool {
	if src.preloaded == nil {
		return false
	}
	if src.useTimingData {
		return src.timestamp() >= src.preloadedTimestamp
	}
	return true
}

// Properties implements the Source interface.
func (src *TXT) Properties() Properties {
	return PropertiesOf(src.preloaded)
}

// DroppedFrames implements the Source interface. Frames are never dropped by
// the TXT source.
func (src *TXT) DroppedFrames() int {
	return 0
}

// Close implements the Source interface.
func (src *TXT) Close() error {
	if src.decompressor != nil {
		src.decompressor.Close()
		src.decompressor = nil
	}
	if src.file != nil {
		err := src.file.Close()
		src.file = nil
		return err
	}
	return nil
}
