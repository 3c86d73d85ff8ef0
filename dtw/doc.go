// Package dtw computes Dynamic Time Warping (DTW) distances between
// (possibly multivariate) numeric series, with an optional ratio band,
// a weighted diagonal step and on-demand alignment path recovery.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Time-series clustering (as a pairwise distance)
//	  • Sensor stream comparison with uneven sampling
//
// ✨ Key features:
//   - Lp local distance between samples of any dimension (Options.Norm)
//   - ratio band |j − i·ny/nx| ≤ w that also works for unequal lengths (Options.Window)
//   - step weight on diagonal moves, e.g. 1 (symmetric1) or 2 (symmetric2) (Options.Step)
//   - full-matrix mode with backtracking, or two-row mode for distance only
//   - caller-owned Workspace: zero allocations per call once sized
//   - CrossDistances / PairwiseDistances for many pairs in parallel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dtwbasic/dtw"
//
//	x := dtw.Univariate([]float64{0, 1, 2})
//	y := dtw.Univariate([]float64{0, 2})
//
//	opts := dtw.DefaultOptions()
//	opts.Norm = 2
//	opts.Step = 1
//
//	ws := dtw.NewWorkspace(x.Len(), y.Len())
//	res, err := dtw.Align(x, y, opts, ws)
//	// res.Distance == 1
//	// res.Index1[:res.PathLen], res.Index2[:res.PathLen] == (3,2) (2,1) (1,1)
//
// Path order:
//
//	Result.Index1/Index2 are emitted from (nx, ny) back to (1, 1), 1-based.
//	Result.Path() returns a chronological copy.
//
// Performance:
//
//   - Time:   O(nx·ny·dim), O(band·dim) with a window
//   - Memory: O(nx·ny) (FullMatrix) or O(ny) (TwoRows)
//
// See example_test.go for runnable scenarios.
package dtw
