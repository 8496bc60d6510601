// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import (
	"log"
	"sync/atomic"
)

// burbling is the process-wide diagnostic toggle, mirroring the
// Register/Registered pattern the teacher uses for its BLAS engine
// singleton (mat64/dense.go): a single atomic flag read by MxM and
// Matrix.Conform to decide whether to emit trace output.
var burbling atomic.Bool

// SetBurble turns the diagnostic trace on or off process-wide. When on,
// operator dispatch and the conform engine log which algorithm family
// and format conversion they chose, via the standard library's log
// package (the teacher never takes on a structured-logging dependency
// anywhere in the sampled tree, so this module doesn't either).
func SetBurble(on bool) { burbling.Store(on) }

// Burble reports the current state of the diagnostic toggle.
func Burble() bool { return burbling.Load() }

// burblef logs format, args if the burble toggle is on; a no-op
// otherwise avoiding the cost of formatting when tracing is off.
func burblef(format string, args ...any) {
	if burbling.Load() {
		log.Printf("grb: "+format, args...)
	}
}
