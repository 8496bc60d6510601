// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grb

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultChunk is the chunk-size hint NewContext uses when chunk <= 0:
// the target amount of work (in the same units as SliceVector's
// targetWork) handed to one worker at a time.
const DefaultChunk = 4096

// Context is a thread-pool handle threaded explicitly through every
// public operation, never attached to a Matrix (§5): it owns nothing
// but configuration and a way to fan work out across goroutines.
// Per-worker scratch is allocated fresh by each dispatch call, sized to
// the operands at hand, because its element type varies with the
// Matrix's type parameter and so cannot live as a field of this
// (non-generic) struct; Context's job is only to say how many workers
// there are and how big a slice of work each one should take.
type Context struct {
	nthreads int
	chunk    int
}

// NewContext returns a Context configured to fan work out across
// nthreads goroutines, slicing work into pieces targeting roughly chunk
// units each (in SliceVector's work units). nthreads <= 0 uses
// runtime.GOMAXPROCS(0); chunk <= 0 uses DefaultChunk.
func NewContext(nthreads, chunk int) *Context {
	if nthreads <= 0 {
		nthreads = runtime.GOMAXPROCS(0)
	}
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	return &Context{nthreads: nthreads, chunk: chunk}
}

// Close releases resources held by ctx. Context currently holds nothing
// that outlives a call, but Close exists so callers have a stable
// lifecycle hook if that changes, matching mat64-style Context/engine
// handles the teacher exposes elsewhere (e.g. blas64.Use).
func (ctx *Context) Close() {}

// NWorkers reports how many goroutines ctx's Go fans work out across.
func (ctx *Context) NWorkers() int {
	if ctx == nil || ctx.nthreads <= 0 {
		return 1
	}
	return ctx.nthreads
}

// TargetWork reports the work-unit target SliceVector should use to
// divide total work nnz among ctx's workers: nnz/NWorkers(), floored at
// ctx's configured chunk size so small inputs don't oversubscribe.
func (ctx *Context) TargetWork(totalWork int) float64 {
	chunk := DefaultChunk
	workers := 1
	if ctx != nil {
		if ctx.chunk > 0 {
			chunk = ctx.chunk
		}
		workers = ctx.NWorkers()
	}
	target := float64(totalWork) / float64(workers)
	if target < float64(chunk) {
		target = float64(chunk)
	}
	return target
}

// Go runs n independent tasks, one per index in [0, n), across ctx's
// worker pool, fanning out with golang.org/x/sync/errgroup and
// returning the first non-nil error any task reports. This replaces the
// hand-rolled sync.WaitGroup-plus-error-channel pattern the teacher uses
// for parallel numerical work (fd/jacobian.go) with errgroup's
// first-error-wins idiom.
func (ctx *Context) Go(n int, task func(i int) error) error {
	if n == 0 {
		return nil
	}
	workers := ctx.NWorkers()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := task(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	per := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := task(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
