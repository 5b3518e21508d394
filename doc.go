// Package curvewalk simulates an agent that explores a square grid in
// Hilbert-curve order, learning where obstacles are only when it tries to
// step onto them, and measures how far its tour overshoots the number of
// open cells.
//
// 🚀 What is curvewalk?
//
//	A small stack of packages, each usable on its own:
//		• curve:     Hilbert index ↔ (x, y) mapping for grids of side 2^order
//		• bfs:       breadth-first search with hooks, depth limits and PathTo
//		• gridgraph: immutable 4-neighbour grid addressed by curve index
//		• frontier:  induced subgraphs and shortest paths restricted to them
//		• obstacle:  obstacle fields, an R-tree of rectangles, a seeded generator
//		• explore:   the exploration state machine with step hooks and budgets
//		• report:    move statistics, log summaries and GeoJSON export
//		• config:    defaults, JSON config files and validation
//
// The curvewalk command wires them together:
//
//	curvewalk run --iteration 4 --coverage 0.2 --seed 7 --geojson tour.geojson
//	curvewalk curve --iteration 2
//
// Quick ASCII example (order 1, y up):
//
//	1───2
//	│   │
//	0   3
//
// The agent starts on 0 and always tries the smallest unseen neighbour of
// the cells it has visited, so on an open grid it walks the curve exactly.
package curvewalk
