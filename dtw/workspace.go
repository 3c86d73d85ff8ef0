package dtw

import "fmt"

// Workspace is the caller-owned scratch memory of one DTW computation: the
// dense cost grid, the direction grid used for backtracking, the two path
// buffers and the per-sample scratch vectors of the local cost evaluator.
//
// A Workspace sized for (nx, ny) can be reused for any pair that fits in it.
// It is not safe for concurrent use; give each goroutine its own.
type Workspace struct {
	nx, ny int  // shape of the last fill
	full   bool // last fill kept every row
	traced bool // last fill recorded directions

	cells []Cell      // cost grid, row-major, stride ny+1
	dirs  []Direction // direction grid, same shape; code of (i,j) stored at (i-1,j-1)

	index1, index2 []int // path buffers, capacity nx+ny

	bx, by []float64 // sample scratch
}

// NewWorkspace allocates a workspace able to hold the (nx+1)x(ny+1) grid and a
// path of up to nx+ny pairs, in either memory mode.
func NewWorkspace(nx, ny int) *Workspace {
	size := (nx + 1) * (ny + 1)

	return &Workspace{
		cells:  make([]Cell, size),
		dirs:   make([]Direction, size),
		index1: make([]int, nx+ny),
		index2: make([]int, nx+ny),
	}
}

// NewRollingWorkspace allocates only the two rows TwoRows mode needs for
// series Y of length up to ny. It cannot be used for backtracking.
func NewRollingWorkspace(ny int) *Workspace {
	return &Workspace{cells: make([]Cell, 2*(ny+1))}
}

// Cost returns cell (i, j) of the last FullMatrix fill. Visited is false for
// unreached cells, for indices outside [0,nx]x[0,ny], and after a TwoRows fill.
func (ws *Workspace) Cost(i, j int) (float64, bool) {
	if !ws.full || i < 0 || j < 0 || i > ws.nx || j > ws.ny {
		return 0, false
	}
	c := ws.cells[ws.at(i, j)]

	return c.Cost, c.Visited
}

// Direction returns the predecessor recorded for cell (i, j), 1 ≤ i ≤ nx,
// 1 ≤ j ≤ ny, by the last backtracking fill. The anchor (1, 1) and unreached
// cells report the zero Direction.
func (ws *Workspace) Direction(i, j int) Direction {
	if !ws.traced || i < 1 || j < 1 || i > ws.nx || j > ws.ny {
		return 0
	}

	return ws.dirs[ws.at(i-1, j-1)]
}

// at maps grid coordinates to the flat index.
func (ws *Workspace) at(i, j int) int {
	return i*(ws.ny+1) + j
}

// fit reshapes the workspace for series of lengths nx, ny and dimension dim.
func (ws *Workspace) fit(nx, ny, dim int, mode MemoryMode, trace bool) error {
	stride := ny + 1
	need := (nx + 1) * stride
	if mode == TwoRows {
		need = 2 * stride
	}
	if need > cap(ws.cells) {
		return fmt.Errorf("%w: need %d cells, have %d", ErrWorkspaceTooSmall, need, cap(ws.cells))
	}
	if trace {
		if need > cap(ws.dirs) {
			return fmt.Errorf("%w: need %d direction cells, have %d",
				ErrWorkspaceTooSmall, need, cap(ws.dirs))
		}
		if nx+ny > cap(ws.index1) || nx+ny > cap(ws.index2) {
			return fmt.Errorf("%w: need path capacity %d, have %d",
				ErrWorkspaceTooSmall, nx+ny, min(cap(ws.index1), cap(ws.index2)))
		}
		ws.dirs = ws.dirs[:need]
		ws.index1 = ws.index1[:nx+ny]
		ws.index2 = ws.index2[:nx+ny]
	}
	ws.cells = ws.cells[:need]
	ws.nx, ws.ny = nx, ny
	ws.full = mode == FullMatrix
	ws.traced = trace

	if cap(ws.bx) < dim {
		ws.bx = make([]float64, dim)
		ws.by = make([]float64, dim)
	}
	ws.bx, ws.by = ws.bx[:dim], ws.by[:dim]

	return nil
}
