package dtw

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// CrossDistances computes the len(xs) x len(ys) matrix of distance-only DTW
// values, entry (a, b) being Distance(xs[a], ys[b]).
//
// Each single fill stays sequential; parallelism is across pairs only.
// Rows are dealt round-robin to workers goroutines (GOMAXPROCS when
// workers <= 0), each owning one Workspace sized for the longest series.
// Pairs whose band cannot reach the end cell hold +Inf. The first other
// error, or cancellation of ctx, stops all workers and is returned.
func CrossDistances(ctx context.Context, xs, ys []Series, opts Options, workers int) (*mat.Dense, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrEmptyInput
	}
	opts.Backtrack = false
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(xs) {
		workers = len(xs)
	}

	maxX, maxY := longest(xs), longest(ys)
	out := mat.NewDense(len(xs), len(ys), nil)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var ws *Workspace
			if opts.MemoryMode == TwoRows {
				ws = NewRollingWorkspace(maxY)
			} else {
				ws = NewWorkspace(maxX, maxY)
			}
			for a := w; a < len(xs); a += workers {
				for b := range ys {
					if err := ctx.Err(); err != nil {
						return err
					}
					d, err := Distance(xs[a], ys[b], opts, ws)
					if err != nil && !errors.Is(err, ErrUnreachable) {
						return fmt.Errorf("dtw: pair (%d, %d): %w", a, b, err)
					}
					out.Set(a, b, d)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// PairwiseDistances is CrossDistances(ctx, xs, xs, opts, workers).
func PairwiseDistances(ctx context.Context, xs []Series, opts Options, workers int) (*mat.Dense, error) {
	return CrossDistances(ctx, xs, xs, opts, workers)
}

// longest returns the largest series length in ss.
func longest(ss []Series) int {
	n := 0
	for _, s := range ss {
		n = max(n, s.Len())
	}

	return n
}
