// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package netfabric

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// PortRange is a host plus an inclusive range of candidate ports, used to
// let several PE processes on the same host each claim the first free port
// in a shared range instead of needing pre-assigned, per-process addresses.
type PortRange struct {
	Host    string
	MinPort int
	MaxPort int
}

var portRangePattern = regexp.MustCompile(`(.*):([0-9]{1,5})-?([0-9]{1,5})?`)

// ParsePortRange parses "host:port" or "host:minport-maxport".
func ParsePortRange(addr string) (*PortRange, error) {
	m := portRangePattern.FindStringSubmatch(addr)
	if len(m) < 3 {
		return nil, errors.Errorf("netfabric: malformed listen address %q", addr)
	}
	minPort, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, errors.Wrapf(err, "netfabric: parsing port in %q", addr)
	}
	maxPort := minPort
	if m[3] != "" {
		if maxPort, err = strconv.Atoi(m[3]); err != nil {
			return nil, errors.Wrapf(err, "netfabric: parsing port in %q", addr)
		}
	}
	// port 0 is valid and means "let the OS assign an ephemeral port",
	// same as net.Listen; only meaningful as a single-port "spec", not
	// as either end of a multi-port range.
	if minPort > maxPort || maxPort > 65535 || (minPort == 0 && minPort != maxPort) {
		return nil, errors.Errorf("netfabric: invalid port range %d-%d in %q", minPort, maxPort, addr)
	}
	return &PortRange{Host: m[1], MinPort: minPort, MaxPort: maxPort}, nil
}
