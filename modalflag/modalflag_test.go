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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/dmdgopher/dmdgopher/modalflag"
	"github.com/dmdgopher/dmdgopher/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "-config", "dmd.yaml", "a", "b"})
	log := md.AddBool("log", false, "echo log")
	config := md.AddString("config", "", "configuration file")
	n := md.AddInt("n", 10, "number")

	test.ExpectFailure(t, *log)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, *config, "dmd.yaml")
	test.ExpectEquality(t, *n, 10)
	test.ExpectEquality(t, strings.Join(md.RemainingArgs(), " "), "a b")
	test.ExpectEquality(t, md.GetArg(1), "b")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, strings.Join(visited, " "), "config log")
}

func TestBadFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-nosuchflag"})
	md.AddSubModes("A", "B")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "planes", "-bit", "2", "file.txt"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("info", "planes")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.Mode(), "PLANES")

	md.NewMode()
	bit := md.AddInt("bit", -1, "bit plane")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *bit, 2)
	test.ExpectEquality(t, md.Mode(), "PLANES")
	test.ExpectEquality(t, md.Path(), "PLANES")
	test.ExpectEquality(t, strings.Join(md.RemainingArgs(), " "), "file.txt")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"file.txt"})
	md.AddSubModes("info", "planes")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")
	test.ExpectEquality(t, md.GetArg(0), "file.txt")

	md.NewMode()
	md.AddSubModes("X", "Y")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "INFO/X")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "No help available\n")

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddBool("test", false, "test flag")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more help")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "Usage:\n  -test\n    \ttest flag\n\n  available sub-modes: A, B\n    default: A\n\nmore help\n")
}
