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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// sample interval in milliseconds
const interval = 500

// Launch a new goroutine running the statistics server. An empty address
// means the DefaultAddress is used.
//
// The returned function stops the server.
func Launch(output io.Writer, address string) func() {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address), viewer.WithInterval(interval))
	mgr := statsview.New()
	go mgr.Start()

	if output != nil {
		fmt.Fprintf(output, "stats server available at %s%s\n", address, url)
	}

	return mgr.Stop
}
