package geo

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON decodes a GeoJSON geometry object.
// orb keeps positions two dimensional, so any third ordinate is dropped.
func ParseGeoJSON(data []byte) (Decoded, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return Decoded{}, errors.Mark(errors.Wrap(err, "parse GeoJSON"), ErrDecode)
	}

	out, err := FromOrb(g.Geometry())
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{Geometry: out}, nil
}

// FromOrb converts an orb geometry into a Geometry.
func FromOrb(g orb.Geometry) (Geometry, error) {
	switch g := g.(type) {
	case orb.Point:
		return Point{Coord: orbCoord(g)}, nil
	case orb.LineString:
		return LineString{Coords: orbCoords(g)}, nil
	case orb.Polygon:
		return Polygon{Rings: orbRings(g)}, nil
	case orb.MultiPoint:
		return MultiPoint{Points: orbCoords(g)}, nil
	case orb.MultiLineString:
		lines := make([][]Coord, len(g))
		for i, ls := range g {
			lines[i] = orbCoords(ls)
		}
		return MultiLineString{Lines: lines}, nil
	case orb.MultiPolygon:
		polys := make([][][]Coord, len(g))
		for i, p := range g {
			polys[i] = orbRings(p)
		}
		return MultiPolygon{Polygons: polys}, nil
	case orb.Collection:
		gc := GeometryCollection{Geometries: make([]Geometry, 0, len(g))}
		for _, m := range g {
			member, err := FromOrb(m)
			if err != nil {
				return nil, err
			}
			gc.Geometries = append(gc.Geometries, member)
		}
		return gc, nil
	default:
		return nil, errors.Mark(errors.Newf("unsupported GeoJSON geometry %T", g), ErrDecode)
	}
}

func orbCoord(p orb.Point) Coord {
	return Coord{p[0], p[1]}
}

func orbCoords[S ~[]orb.Point](pts S) []Coord {
	out := make([]Coord, len(pts))
	for i, p := range pts {
		out[i] = orbCoord(p)
	}
	return out
}

func orbRings(p orb.Polygon) [][]Coord {
	out := make([][]Coord, len(p))
	for i, r := range p {
		out[i] = orbCoords(r)
	}
	return out
}
