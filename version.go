// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import (
	"fmt"
	"runtime/debug"
)

const root = "graphblas.dev/v1/grb"

// Version returns the version of this module and its checksum, read
// from the running binary's build info. The returned values are only
// valid in binaries built with module support.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			if m.Replace != nil {
				switch {
				case m.Replace.Version != "" && m.Replace.Path != "":
					return fmt.Sprintf("%s %s", m.Replace.Path, m.Replace.Version), m.Replace.Sum
				case m.Replace.Version != "":
					return m.Replace.Version, m.Replace.Sum
				case m.Replace.Path != "":
					return m.Replace.Path, m.Replace.Sum
				default:
					return m.Version + "*", ""
				}
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
