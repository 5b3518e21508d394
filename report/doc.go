// Package report turns a finished exploration into numbers and pictures.
//
// Compute derives the move statistics:
//
//	minimal_moves     = N − |obstacles|
//	actual_moves      = len(visited)
//	overshoot_percent = (actual/minimal − 1) · 100
//
// Summarize adds what only the grid and the obstacle field know: the open
// regions and the rectangles hit by the detected cells. Stats.Log emits one
// structured logrus record, and WriteGeoJSON exports the tour, the detected cells and the obstacle
// rectangles as a GeoJSON FeatureCollection in grid units, one unit per cell.
package report
