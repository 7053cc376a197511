package geo

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ErrDecode marks every failure to turn input into a geometry value.
var ErrDecode = errors.New("cannot decode geometry")

const (
	sridPrefix    = "SRID="
	sridPrefixLen = len(sridPrefix)
)

// ParseWKT decodes a WKT string. An EWKT "SRID=<n>;" prefix is accepted and
// reported in the result.
func ParseWKT(s string) (Decoded, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decoded{}, errors.Mark(errors.New("empty WKT string"), ErrDecode)
	}

	srid, body, err := splitSRID(s)
	if err != nil {
		return Decoded{}, errors.Mark(err, ErrDecode)
	}

	t, err := wkt.Unmarshal(body)
	if err != nil {
		return Decoded{}, errors.Mark(errors.Wrap(err, "parse WKT"), ErrDecode)
	}

	g, err := FromGeom(t)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{Geometry: g, SRID: srid}, nil
}

// ParseWKBHex decodes hex encoded WKB or EWKB.
func ParseWKBHex(s string) (Decoded, error) {
	t, err := ewkbhex.Decode(strings.TrimSpace(s))
	if err != nil {
		return Decoded{}, errors.Mark(errors.Wrap(err, "parse WKB hex"), ErrDecode)
	}

	g, err := FromGeom(t)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{Geometry: g, SRID: t.SRID()}, nil
}

// splitSRID strips a leading "SRID=<n>;" declaration.
func splitSRID(s string) (int, string, error) {
	if !strings.HasPrefix(strings.ToUpper(s), sridPrefix) {
		return 0, s, nil
	}

	end := strings.IndexByte(s[sridPrefixLen:], ';')
	if end == -1 {
		return 0, "", errors.Newf("missing ';' after SRID declaration in %q", s)
	}

	srid, err := strconv.Atoi(strings.TrimSpace(s[sridPrefixLen : sridPrefixLen+end]))
	if err != nil {
		return 0, "", errors.Wrap(err, "parse SRID")
	}
	return srid, strings.TrimSpace(s[sridPrefixLen+end+1:]), nil
}

// FromGeom converts a go-geom value into a Geometry.
func FromGeom(t geom.T) (Geometry, error) {
	switch t := t.(type) {
	case *geom.Point:
		if t.Empty() {
			return Point{}, nil
		}
		return Point{Coord: Coord(t.Coords())}, nil
	case *geom.LineString:
		return LineString{Coords: coords1(t.Coords())}, nil
	case *geom.Polygon:
		return Polygon{Rings: coords2(t.Coords())}, nil
	case *geom.MultiPoint:
		return MultiPoint{Points: coords1(t.Coords())}, nil
	case *geom.MultiLineString:
		return MultiLineString{Lines: coords2(t.Coords())}, nil
	case *geom.MultiPolygon:
		polys := t.Coords()
		out := make([][][]Coord, len(polys))
		for i, p := range polys {
			out[i] = coords2(p)
		}
		return MultiPolygon{Polygons: out}, nil
	case *geom.GeometryCollection:
		members := t.Geoms()
		gc := GeometryCollection{Geometries: make([]Geometry, 0, len(members))}
		for _, m := range members {
			g, err := FromGeom(m)
			if err != nil {
				return nil, err
			}
			gc.Geometries = append(gc.Geometries, g)
		}
		return gc, nil
	default:
		return nil, errors.Mark(errors.Newf("unsupported geometry type %T", t), ErrDecode)
	}
}

func coords1(cs []geom.Coord) []Coord {
	out := make([]Coord, len(cs))
	for i, c := range cs {
		out[i] = Coord(c)
	}
	return out
}

func coords2(css [][]geom.Coord) [][]Coord {
	out := make([][]Coord, len(css))
	for i, cs := range css {
		out[i] = coords1(cs)
	}
	return out
}
