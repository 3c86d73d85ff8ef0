// Package dtwbasic is a small, allocation-conscious Dynamic Time Warping
// toolkit for numeric (possibly multivariate) time series.
//
// 🚀 What is in the box?
//
//	• dtw/            — the DTW kernel: Lp local cost, ratio band, weighted
//	                    diagonal step, backtracking, pairwise matrices
//	• cmd/dtwbasic/   — command-line front end reading CSV series
//	• internal/log/   — zap logger shared by the commands
//
// ✨ Why dtwbasic?
//
//   - Deterministic – documented tie-breaking, exact integer band edges
//   - Caller-owned memory – reuse one Workspace across many calls
//   - Parallel where it belongs – across pairs, never inside one fill
//
// Quick ASCII example (X=[0,1,2], Y=[0,2], warping path marked *):
//
//	      y1  y2
//	x1    *
//	x2    *
//	x3        *
//
//	go get github.com/katalvlaran/dtwbasic/dtw
package dtwbasic
