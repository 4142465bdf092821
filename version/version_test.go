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

package version_test

import (
	"strings"
	"testing"

	"github.com/dmdgopher/dmdgopher/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()

	// tests are never built with a version number
	if release {
		t.Errorf("unexpected release version: %s", v)
	}
	if v != "unreleased" && v != "local" {
		t.Errorf("unexpected version string: %s", v)
	}
	if r == "" {
		t.Errorf("revision string should not be empty")
	}

	if !strings.HasPrefix(version.String(), version.ApplicationName+" ") {
		t.Errorf("unexpected version string: %s", version.String())
	}
}
