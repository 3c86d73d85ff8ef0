package dtw

import "errors"

// Sentinel errors returned by the dtw package. Every message carries the
// "dtw:" prefix; entry points may wrap them with extra context via %w, so
// callers must match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// empty input -> dimension mismatch -> options -> workspace -> unreachable end cell.
var (
	// ErrEmptyInput indicates that one or both series have no samples.
	// It is checked before any band arithmetic (which divides by nx).
	ErrEmptyInput = errors.New("dtw: input series must be non-empty")

	// ErrBadInput indicates a nonsensical option or constructor argument:
	// Window < -1, non-finite or non-positive Norm, non-finite or negative Step,
	// dim < 1, or an unknown MemoryMode.
	ErrBadInput = errors.New("dtw: invalid parameter")

	// ErrDimensionMismatch indicates that the two series do not share the same
	// number of components, or that a row-wise constructor saw ragged rows.
	ErrDimensionMismatch = errors.New("dtw: dimension mismatch")

	// ErrPathNeedsMatrix indicates that path recovery was requested together
	// with the TwoRows memory mode, which discards the direction trace.
	ErrPathNeedsMatrix = errors.New("dtw: Backtrack requires MemoryMode=FullMatrix")

	// ErrWorkspaceTooSmall indicates that the supplied Workspace cannot hold the
	// grid (or path buffers) for the requested pair of lengths.
	ErrWorkspaceTooSmall = errors.New("dtw: workspace too small for series lengths")

	// ErrUnreachable indicates that the band never reaches cell (nx, ny), so no
	// alignment exists. The reported distance is +Inf.
	ErrUnreachable = errors.New("dtw: window too narrow, end cell unreachable")

	// ErrInvalidDirection indicates that backtracking read a direction code
	// outside {Diag, Left, Up}. This is an internal-consistency failure of the
	// direction trace (corruption or an incomplete fill) and is never recovered.
	ErrInvalidDirection = errors.New("dtw: invalid direction matrix computed")
)
