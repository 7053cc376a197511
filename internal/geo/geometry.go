// Package geo handles geographic data structures and their decoding from text and binary encodings.
package geo

// Kind names a simple-feature geometry type.
// The values match the GML element local names.
type Kind string

// Recognised geometry kinds.
const (
	KindPoint              Kind = "Point"
	KindLineString         Kind = "LineString"
	KindPolygon            Kind = "Polygon"
	KindMultiPoint         Kind = "MultiPoint"
	KindMultiLineString    Kind = "MultiLineString"
	KindMultiPolygon       Kind = "MultiPolygon"
	KindGeometryCollection Kind = "GeometryCollection"
)

// Coord is an ordered sequence of ordinates, X (longitude) first.
// Any ordinates past the second (Z, M) are kept as given.
type Coord []float64

// Geometry is a tagged geometry value.
// The concrete type is authoritative for its shape.
type Geometry interface {
	Kind() Kind
}

// Point holds a single coordinate.
type Point struct {
	Coord Coord
}

// LineString holds an ordered sequence of coordinates.
type LineString struct {
	Coords []Coord
}

// Polygon holds its rings, exterior first then holes.
// Ring closure is not checked.
type Polygon struct {
	Rings [][]Coord
}

// MultiPoint holds one coordinate per member point.
type MultiPoint struct {
	Points []Coord
}

// MultiLineString holds one coordinate sequence per member line.
type MultiLineString struct {
	Lines [][]Coord
}

// MultiPolygon holds one ring set per member polygon.
type MultiPolygon struct {
	Polygons [][][]Coord
}

// GeometryCollection holds nested geometries of any kind, including other collections.
type GeometryCollection struct {
	Geometries []Geometry
}

func (Point) Kind() Kind              { return KindPoint }
func (LineString) Kind() Kind         { return KindLineString }
func (Polygon) Kind() Kind            { return KindPolygon }
func (MultiPoint) Kind() Kind         { return KindMultiPoint }
func (MultiLineString) Kind() Kind    { return KindMultiLineString }
func (MultiPolygon) Kind() Kind       { return KindMultiPolygon }
func (GeometryCollection) Kind() Kind { return KindGeometryCollection }

// Decoded is a geometry together with the SRID found in its encoding (0 when none).
type Decoded struct {
	Geometry Geometry
	SRID     int
}

// Deref returns the value form of a pointer variant, or nil for a nil pointer.
// Other geometries are returned unchanged.
func Deref(g Geometry) Geometry {
	switch v := g.(type) {
	case *Point:
		if v == nil {
			return nil
		}
		return *v
	case *LineString:
		if v == nil {
			return nil
		}
		return *v
	case *Polygon:
		if v == nil {
			return nil
		}
		return *v
	case *MultiPoint:
		if v == nil {
			return nil
		}
		return *v
	case *MultiLineString:
		if v == nil {
			return nil
		}
		return *v
	case *MultiPolygon:
		if v == nil {
			return nil
		}
		return *v
	case *GeometryCollection:
		if v == nil {
			return nil
		}
		return *v
	}
	return g
}
