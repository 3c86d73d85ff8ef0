// Package dtw defines options, modes and result types for Dynamic Time Warping.
package dtw

import (
	"fmt"
	"math"
)

// MemoryMode controls how DTW stores its DP grid.
//
//   - FullMatrix — keep the entire (nx+1)x(ny+1) grid in the Workspace.
//     Allows distance + backtracking of the optimal warping path.
//     Memory: O(nx·ny) regardless of the band.
//
//   - TwoRows — keep only the previous and current row.
//     Reduces memory to O(ny), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(nx·ny) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(ny) memory.
	TwoRows
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Defaults for Options. They follow the usual dtw_basic call: L1 local
// distance, symmetric2 step pattern (diagonal moves count twice), no band.
const (
	DefaultWindow = -1
	DefaultNorm   = 1.0
	DefaultStep   = 2.0
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window     — half-width w of the ratio band around the i·ny/nx diagonal;
//     -1 disables the constraint. See Band.
//   - Norm       — exponent p > 0 of the Lp local distance; the summed path cost
//     is de-accumulated with a pth root.
//   - Step       — weight ≥ 0 multiplying the local cost on diagonal moves only.
//     Step=1 is the classic unweighted recurrence.
//   - Backtrack  — if true, Compute also reconstructs the optimal path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode — FullMatrix or TwoRows storage.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10   // |j − i·ny/nx| ≤ 10
//	opts.Norm = 2      // Euclidean local cost
//	opts.Backtrack = true
//
//	res, err := dtw.Compute(x, y, opts, ws)
type Options struct {
	Window     int
	Norm       float64
	Step       float64
	Backtrack  bool
	MemoryMode MemoryMode
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Window:     DefaultWindow,
		Norm:       DefaultNorm,
		Step:       DefaultStep,
		Backtrack:  false,
		MemoryMode: FullMatrix,
	}
}

// Validate reports the first invalid field, wrapped around ErrBadInput or
// ErrPathNeedsMatrix.
func (o Options) Validate() error {
	if o.Window < -1 {
		return fmt.Errorf("%w: Window=%d, want >= -1", ErrBadInput, o.Window)
	}
	if math.IsNaN(o.Norm) || math.IsInf(o.Norm, 0) || o.Norm <= 0 {
		return fmt.Errorf("%w: Norm=%v, want finite > 0", ErrBadInput, o.Norm)
	}
	if math.IsNaN(o.Step) || math.IsInf(o.Step, 0) || o.Step < 0 {
		return fmt.Errorf("%w: Step=%v, want finite >= 0", ErrBadInput, o.Step)
	}
	switch o.MemoryMode {
	case FullMatrix:
	case TwoRows:
		if o.Backtrack {
			return ErrPathNeedsMatrix
		}
	default:
		return fmt.Errorf("%w: %v", ErrBadInput, o.MemoryMode)
	}

	return nil
}

// Direction is the predecessor chosen for a grid cell during a traced fill.
// The zero value is not a valid direction.
type Direction uint8

const (
	// Diag: predecessor (i-1, j-1), step-weighted.
	Diag Direction = 1
	// Left: predecessor (i, j-1).
	Left Direction = 2
	// Up: predecessor (i-1, j).
	Up Direction = 3
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Diag:
		return "Diag"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Cell is one entry of the cost grid: either Unvisited (zero value) or the
// minimal cumulative cost, still raised to the Norm power, of aligning the
// prefixes X[1..i] and Y[1..j].
type Cell struct {
	Cost    float64
	Visited bool
}

// Coord is a 1-based (i, j) alignment pair: sample i of X matched with sample j of Y.
type Coord struct {
	I, J int
}

// Result is the outcome of a DTW computation.
//
// Index1 and Index2 hold the path as emitted by backtracking: 1-based positions
// into X and Y, from (nx, ny) down to (1, 1). They alias the Workspace buffers,
// so they are only valid until the Workspace is reused. PathLen is the number
// of emitted pairs; it is 0 when no path was requested.
type Result struct {
	Distance float64
	Index1   []int
	Index2   []int
	PathLen  int
}

// Path returns a freshly allocated copy of the alignment in chronological
// order, from (1, 1) to (nx, ny). It returns nil when no path was computed.
func (r *Result) Path() []Coord {
	if r == nil || r.PathLen == 0 {
		return nil
	}
	path := make([]Coord, r.PathLen)
	for k := 0; k < r.PathLen; k++ {
		src := r.PathLen - 1 - k
		path[k] = Coord{I: r.Index1[src], J: r.Index2[src]}
	}

	return path
}
