package dtw

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two series that may vary in time or
//	speed by finding the cheapest monotone alignment ("warping path")
//	between their samples.
//
// Algorithm Outline (FullMatrix):
//  1. Let nx = X.Len(), ny = Y.Len(). Use the (nx+1)x(ny+1) grid D of the
//     Workspace; every cell starts Unvisited (row 0 and column 0 stay so).
//  2. D[1][1] = c(1,1), where c(i,j) = lnorm(X[i], Y[j])^p. The anchor is
//     never step-weighted.
//  3. For i = 1..nx, for j in Band(i) except the anchor:
//     up   = D[i-1][j]   + c(i,j)
//     left = D[i][j-1]   + c(i,j)
//     diag = D[i-1][j-1] + Step·c(i,j)
//     D[i][j] = best visited candidate, evaluated in that order;
//     Unvisited when none of the three is visited.
//  4. distance = D[nx][ny]^(1/p).
//  5. Backtrack (Align only): follow the recorded directions from
//     (nx, ny) down to (1, 1).
//
// Tie-breaking:
//   - Distance keeps the earliest candidate on exact ties (strict <):
//     Up, then Left, then Diag.
//   - Align keeps the latest candidate on exact ties (<=): Diag beats Left
//     beats Up.
//     Both rules yield the same cumulative costs; only the recovered path
//     depends on the rule.
//
// Complexity:
//
//	Time   = O(nx·ny·dim), reduced to the band area when Window >= 0.
//	Memory = O(nx·ny) (FullMatrix) or O(ny) (TwoRows), regardless of Window.
//
// Errors:
//   - ErrEmptyInput         — if either series is empty.
//   - ErrDimensionMismatch  — if the series have different dimensions.
//   - ErrBadInput           — if Options are invalid.
//   - ErrPathNeedsMatrix    — if a path is requested with TwoRows.
//   - ErrWorkspaceTooSmall  — if the Workspace cannot hold the grid.
//   - ErrUnreachable        — if the band never reaches (nx, ny); distance is +Inf.
//   - ErrInvalidDirection   — if backtracking meets a corrupt direction trace.

// tieBreak decides whether a later candidate replaces the current best.
type tieBreak int

const (
	firstWins tieBreak = iota // strict <
	lastWins                  // <=
)

func (t tieBreak) improves(candidate, best float64) bool {
	if t == lastWins {
		return candidate <= best
	}

	return candidate < best
}

// Distance computes the DTW distance between x and y without recovering the
// path. opts.Backtrack is ignored. A nil ws allocates a workspace matching
// opts.MemoryMode.
//
// On ErrUnreachable the returned distance is +Inf.
func Distance(x, y Series, opts Options, ws *Workspace) (float64, error) {
	opts.Backtrack = false
	ws, err := prepare(x, y, opts, ws, false)
	if err != nil {
		return 0, err
	}

	return finish(fill(x, y, opts, ws, firstWins, false), opts.Norm)
}

// Align computes the DTW distance between x and y and backtracks the optimal
// alignment path. opts.Backtrack is implied; opts.MemoryMode must be
// FullMatrix. A nil ws allocates one.
//
// The returned Result aliases the workspace path buffers. On ErrUnreachable
// the Result carries Distance=+Inf and no path.
func Align(x, y Series, opts Options, ws *Workspace) (*Result, error) {
	opts.Backtrack = true
	ws, err := prepare(x, y, opts, ws, true)
	if err != nil {
		return nil, err
	}

	d, err := finish(fill(x, y, opts, ws, lastWins, true), opts.Norm)
	if err != nil {
		return &Result{Distance: d}, err
	}
	n, err := backtrack(ws)
	if err != nil {
		return nil, err
	}

	return &Result{
		Distance: d,
		Index1:   ws.index1[:n],
		Index2:   ws.index2[:n],
		PathLen:  n,
	}, nil
}

// Compute dispatches on opts.Backtrack: Align when set, Distance otherwise.
// In distance-only mode the Result has no path.
func Compute(x, y Series, opts Options, ws *Workspace) (*Result, error) {
	if opts.Backtrack {
		return Align(x, y, opts, ws)
	}
	d, err := Distance(x, y, opts, ws)
	if err != nil && !errors.Is(err, ErrUnreachable) {
		return nil, err
	}

	return &Result{Distance: d}, err
}

// DTW is the allocating convenience form of Compute. nil opts means
// DefaultOptions().
//
// Example:
//
//	res, err := dtw.DTW(dtw.Univariate(a), dtw.Univariate(b), nil)
func DTW(x, y Series, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	return Compute(x, y, o, nil)
}

// prepare validates inputs in the documented priority order and shapes ws.
func prepare(x, y Series, opts Options, ws *Workspace, trace bool) (*Workspace, error) {
	if x.Len() == 0 || y.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if x.Dim() != y.Dim() {
		return nil, fmt.Errorf("%w: x has %d components, y has %d",
			ErrDimensionMismatch, x.Dim(), y.Dim())
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ws == nil {
		if opts.MemoryMode == TwoRows {
			ws = NewRollingWorkspace(y.Len())
		} else {
			ws = NewWorkspace(x.Len(), y.Len())
		}
	}
	if err := ws.fit(x.Len(), y.Len(), x.Dim(), opts.MemoryMode, trace); err != nil {
		return nil, err
	}

	return ws, nil
}

// localCost is the Lp distance between sample i of x and sample j of y.
func localCost(x, y Series, i, j int, p float64, bx, by []float64) float64 {
	return floats.Distance(x.Sample(i, bx), y.Sample(j, by), p)
}

// fill runs the recurrence over ws and returns cell (nx, ny). With trace set
// the winning direction of every visited cell (i,j) is written to the
// direction grid at (i-1, j-1).
func fill(x, y Series, opts Options, ws *Workspace, tie tieBreak, trace bool) Cell {
	nx, ny := x.Len(), y.Len()
	stride := ny + 1
	rolling := opts.MemoryMode == TwoRows
	p := opts.Norm

	clear(ws.cells)
	if trace {
		clear(ws.dirs)
	}
	row := func(i int) []Cell {
		if rolling {
			i &= 1
		}
		return ws.cells[i*stride : (i+1)*stride]
	}

	for i := 1; i <= nx; i++ {
		prev, cur := row(i-1), row(i)
		if rolling {
			clear(cur)
		}
		if i == 1 {
			cur[1] = Cell{Cost: math.Pow(localCost(x, y, 0, 0, p, ws.bx, ws.by), p), Visited: true}
		}

		j1, j2 := Band(i, nx, ny, opts.Window)
		for j := j1; j <= j2; j++ {
			if i == 1 && j == 1 {
				continue
			}
			local := math.Pow(localCost(x, y, i-1, j-1, p, ws.bx, ws.by), p)
			best, dir := relax(prev[j], cur[j-1], prev[j-1], local, opts.Step, tie)
			cur[j] = best
			if trace && best.Visited {
				ws.dirs[(i-1)*stride+j-1] = dir
			}
		}
	}

	return row(nx)[ny]
}

// relax picks the cheapest visited predecessor in the fixed order Up, Left, Diag.
func relax(up, left, diag Cell, local, step float64, tie tieBreak) (Cell, Direction) {
	var (
		best Cell
		dir  Direction
	)
	if up.Visited {
		best, dir = Cell{Cost: up.Cost + local, Visited: true}, Up
	}
	if left.Visited {
		if c := left.Cost + local; !best.Visited || tie.improves(c, best.Cost) {
			best, dir = Cell{Cost: c, Visited: true}, Left
		}
	}
	if diag.Visited {
		if c := diag.Cost + step*local; !best.Visited || tie.improves(c, best.Cost) {
			best, dir = Cell{Cost: c, Visited: true}, Diag
		}
	}

	return best, dir
}

// finish de-accumulates the end cell.
func finish(last Cell, p float64) (float64, error) {
	if !last.Visited {
		return math.Inf(1), ErrUnreachable
	}

	return math.Pow(last.Cost, 1/p), nil
}

// backtrack walks the direction grid from (nx, ny) to (1, 1), writing 1-based
// pairs into the workspace path buffers in emission order, and returns the
// number of pairs written.
//
// Coordinates i, j run in the shifted space of the direction grid, so the
// code read at (i, j) belongs to cell (i+1, j+1).
func backtrack(ws *Workspace) (int, error) {
	stride := ws.ny + 1
	i, j := ws.nx-1, ws.ny-1

	ws.index1[0], ws.index2[0] = ws.nx, ws.ny
	n := 1
	for !(i == 0 && j == 0) {
		code := ws.dirs[i*stride+j]
		switch code {
		case Diag:
			i--
			j--
		case Left:
			j--
		case Up:
			i--
		default:
			return 0, fmt.Errorf("%w: %v at cell (%d, %d)", ErrInvalidDirection, code, i+1, j+1)
		}
		if i < 0 || j < 0 || n == len(ws.index1) {
			return 0, fmt.Errorf("%w: %v at cell (%d, %d) leaves the grid",
				ErrInvalidDirection, code, ws.index1[n-1], ws.index2[n-1])
		}
		ws.index1[n], ws.index2[n] = i+1, j+1
		n++
	}

	return n, nil
}
