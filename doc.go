// Package axisep separates planar point sets with axis-parallel lines.
//
// Given n points with distinct positive integer coordinates, axisep picks
// vertical and horizontal lines so that every pair of points ends up on
// opposite sides of at least one line. The greedy solver never commits
// more than n-1 lines.
//
// 🚀 What is inside?
//
//	connectivity/ dense symmetric "not yet separated" relation + counters
//	separator/    axis sorting, candidate bisection, crossing test, greedy driver
//	instance/     instance & solution file formats, numbered file store
//	batch/        sequential or parallel batches, skip/halt policy, watch mode
//	render/       PNG drawing of an instance and its lines
//	config/       YAML configuration with validation
//	logging/      slog logger construction
//	metrics/      Prometheus counters for batch runs
//	cmd/axisep/   the command-line tool
//
// Quick start:
//
//	pts := []separator.Point{{1, 10}, {2, 6}, {3, 8}, {4, 1}, {5, 3}}
//	sol, _ := separator.Solve(pts)
//	// sol.Lines: v 2.5, h 4.5, v 1.5, h 2
//
//	go install github.com/katalvlaran/axisep/cmd/axisep@latest
package axisep
