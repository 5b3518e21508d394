package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/curvewalk/curve"
	"github.com/katalvlaran/curvewalk/explore"
	"github.com/katalvlaran/curvewalk/obstacle"
)

// Feature kinds stored in the "kind" property.
const (
	KindTour     = "tour"
	KindDetected = "detected"
	KindObstacle = "obstacle"
)

// FeatureCollection builds the GeoJSON view of a run:
//
//   - one tour feature, a LineString through the visited cell centres
//     (a Point when the agent never moved), carrying st as properties;
//   - one Polygon per detected cell, in discovery order;
//   - one Polygon per obstacle rectangle of field, when field is non-nil.
func FeatureCollection(c *curve.Curve, res *explore.Result, field *obstacle.Field, st Stats) (*geojson.FeatureCollection, error) {
	if c == nil {
		return nil, obstacle.ErrNilCurve
	}
	if res == nil {
		return nil, ErrNilResult
	}

	line := make(orb.LineString, 0, len(res.Visited))
	for _, v := range res.Visited {
		p, err := c.PointOf(v)
		if err != nil {
			return nil, fmt.Errorf("report: tour: %w", err)
		}
		line = append(line, centre(p))
	}
	var tourGeom orb.Geometry = line
	if len(line) == 1 {
		tourGeom = line[0]
	}

	fc := geojson.NewFeatureCollection()
	tour := geojson.NewFeature(tourGeom)
	tour.Properties["kind"] = KindTour
	tour.Properties["cells"] = st.Cells
	tour.Properties["obstacles"] = st.Obstacles
	tour.Properties["minimal_moves"] = st.MinimalMoves
	tour.Properties["actual_moves"] = st.ActualMoves
	tour.Properties["overshoot_percent"] = st.OvershootPercent
	tour.Properties["steps"] = st.Steps
	fc.Append(tour)

	for order, v := range res.Detected {
		p, err := c.PointOf(v)
		if err != nil {
			return nil, fmt.Errorf("report: detected: %w", err)
		}
		f := geojson.NewFeature(cellBound(p).ToPolygon())
		f.Properties["kind"] = KindDetected
		f.Properties["index"] = v
		f.Properties["order"] = order
		fc.Append(f)
	}

	if field != nil {
		for id, r := range field.Rects() {
			f := geojson.NewFeature(r.Bound().ToPolygon())
			f.Properties["kind"] = KindObstacle
			f.Properties["id"] = id
			f.Properties["size"] = r.Size
			fc.Append(f)
		}
	}

	return fc, nil
}

// WriteGeoJSON encodes FeatureCollection(c, res, field, st) to w, indented.
func WriteGeoJSON(w io.Writer, c *curve.Curve, res *explore.Result, field *obstacle.Field, st Stats) error {
	fc, err := FeatureCollection(c, res, field, st)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("report: encode geojson: %w", err)
	}
	return nil
}

func centre(p curve.Point) orb.Point {
	return orb.Point{float64(p.X) + 0.5, float64(p.Y) + 0.5}
}

func cellBound(p curve.Point) orb.Bound {
	return obstacle.Rect{X: p.X, Y: p.Y, Size: 1}.Bound()
}
