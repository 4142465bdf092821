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

package prefs_test

import (
	"testing"

	"github.com/dmdgopher/dmdgopher/prefs"
	"github.com/dmdgopher/dmdgopher/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// check invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// check (partially) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// get prefs value that doesn't exist after pushing a partially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.String(), "false")
	test.ExpectSuccess(t, b.Set("true"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("no"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectEquality(t, i.String(), "0")
	test.ExpectSuccess(t, i.Set(" 42"))
	test.ExpectEquality(t, i.Get().(int), 42)
	test.ExpectFailure(t, i.Set("forty-two"))
	test.ExpectFailure(t, i.Set(4.2))
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)

	var s prefs.String
	test.ExpectSuccess(t, s.Set(10))
	test.ExpectEquality(t, s.String(), "10")
}

func TestHooks(t *testing.T) {
	var i prefs.Int

	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errNegative
		}
		return nil
	})

	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, i.Get().(int), 10)

	// pre hook prevents the value from changing
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 10)
}

type negativeError struct{}

func (negativeError) Error() string {
	return "negative"
}

var errNegative error = negativeError{}
