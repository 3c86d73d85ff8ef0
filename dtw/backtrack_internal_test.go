package dtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracedScenario fills X=[0,1,2], Y=[0,2] (norm 2, step 1) with the given
// tie rule and direction tracing on.
func tracedScenario(t *testing.T, tie tieBreak) *Workspace {
	t.Helper()
	x, y := Univariate([]float64{0, 1, 2}), Univariate([]float64{0, 2})
	opts := DefaultOptions()
	opts.Norm, opts.Step, opts.Backtrack = 2, 1, true

	ws, err := prepare(x, y, opts, nil, true)
	require.NoError(t, err)
	last := fill(x, y, opts, ws, tie, true)
	require.True(t, last.Visited)

	return ws
}

func pathOf(ws *Workspace, n int) []Coord {
	out := make([]Coord, n)
	for k := range out {
		out[k] = Coord{I: ws.index1[k], J: ws.index2[k]}
	}
	return out
}

// TestBacktrack_TieRuleChangesPath: cell (3,2) ties Up against Diag. The
// last-wins rule used by Align takes Diag, the first-wins rule of the
// distance-only fill would have taken Up.
func TestBacktrack_TieRuleChangesPath(t *testing.T) {
	ws := tracedScenario(t, lastWins)
	n, err := backtrack(ws)
	require.NoError(t, err)
	assert.Equal(t, []Coord{{3, 2}, {2, 1}, {1, 1}}, pathOf(ws, n))

	ws = tracedScenario(t, firstWins)
	n, err = backtrack(ws)
	require.NoError(t, err)
	assert.Equal(t, []Coord{{3, 2}, {2, 2}, {1, 1}}, pathOf(ws, n))
}

// TestBacktrack_InvalidCode: an unknown code aborts instead of guessing.
func TestBacktrack_InvalidCode(t *testing.T) {
	ws := tracedScenario(t, lastWins)
	ws.dirs[ws.at(2, 1)] = 7 // direction of cell (3,2)

	_, err := backtrack(ws)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

// TestBacktrack_IncompleteFill: a trace that was never written reads as the
// zero code and is rejected.
func TestBacktrack_IncompleteFill(t *testing.T) {
	ws := tracedScenario(t, lastWins)
	clear(ws.dirs)

	_, err := backtrack(ws)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

// TestBacktrack_LeavesGrid: a code pointing above row 1 is rejected.
func TestBacktrack_LeavesGrid(t *testing.T) {
	ws := tracedScenario(t, lastWins)
	ws.dirs[ws.at(2, 1)] = Up // (3,2) -> (2,2)
	ws.dirs[ws.at(1, 1)] = Up // (2,2) -> (1,2)
	ws.dirs[ws.at(0, 1)] = Up // (1,2) -> (0,2): outside

	_, err := backtrack(ws)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

// TestRelax_Order: with nothing visited the cell stays unvisited; otherwise
// the rule decides exact ties.
func TestRelax_Order(t *testing.T) {
	none := Cell{}
	zero := Cell{Visited: true}

	best, dir := relax(none, none, none, 1, 1, firstWins)
	assert.False(t, best.Visited)
	assert.Equal(t, Direction(0), dir)

	_, dir = relax(zero, zero, zero, 1, 1, firstWins)
	assert.Equal(t, Up, dir)
	_, dir = relax(zero, zero, zero, 1, 1, lastWins)
	assert.Equal(t, Diag, dir)
	_, dir = relax(zero, zero, none, 1, 1, lastWins)
	assert.Equal(t, Left, dir)

	best, dir = relax(zero, zero, zero, 1, 3, lastWins)
	assert.Equal(t, Left, dir, "weighted diagonal loses")
	assert.Equal(t, 1.0, best.Cost)
}
