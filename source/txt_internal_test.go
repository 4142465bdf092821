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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmdgopher/dmdgopher/prefs"
	"github.com/dmdgopher/dmdgopher/test"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func TestTXTTiming(t *testing.T) {
	const dump = "0x00000100\n01\n\n0x00000200\n10\n"

	fn := filepath.Join(t.TempDir(), "dump.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(dump), 0o600))

	clk := &fakeClock{t: time.Unix(1000, 0)}

	src := NewTXT()
	src.now = clk.now

	sec := prefs.NewSection(prefs.SectionSource, map[string]interface{}{"name": fn})
	test.DemandSuccess(t, src.Configure(prefs.NewSection(prefs.SectionGeneral, nil), sec))
	defer src.Close()

	// the first frame is due immediately because the start time is adjusted
	// by the timestamp of the first frame
	test.ExpectSuccess(t, src.FrameReady())
	f, err := src.NextFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Pixel(1, 0), uint8(1))

	// second frame is due 0x100 milliseconds later
	test.ExpectFailure(t, src.FrameReady())
	clk.t = clk.t.Add(0xff * time.Millisecond)
	test.ExpectFailure(t, src.FrameReady())
	clk.t = clk.t.Add(time.Millisecond)
	test.ExpectSuccess(t, src.FrameReady())

	f, err = src.NextFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Pixel(0, 0), uint8(1))
	test.ExpectSuccess(t, src.Finished())
}

func TestTXTStartResetsClock(t *testing.T) {
	const dump = "0x00000000\n01\n\n0x00000010\n10\n\n0x00000020\n11\n"

	fn := filepath.Join(t.TempDir(), "dump.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(dump), 0o600))

	clk := &fakeClock{t: time.Unix(1000, 0)}

	src := NewTXT()
	src.now = clk.now

	sec := prefs.NewSection(prefs.SectionSource, map[string]interface{}{"name": fn})
	test.DemandSuccess(t, src.Configure(prefs.NewSection(prefs.SectionGeneral, nil), sec))
	defer src.Close()

	_, err := src.NextFrame()
	test.DemandSuccess(t, err)

	// a long pause. restarting the source means the preloaded frame is due
	// immediately and the frame after that is due relative to it
	clk.t = clk.t.Add(time.Second)
	src.Start()
	test.ExpectSuccess(t, src.FrameReady())

	f, err := src.NextFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.ID(), 2)

	test.ExpectFailure(t, src.FrameReady())
	clk.t = clk.t.Add(0x10 * time.Millisecond)
	test.ExpectSuccess(t, src.FrameReady())
}
