package wkt2gml

import "github.com/woozymasta/wkt2gml/internal/geo"

// Geometry types accepted by ConvertGeometry.
type (
	Geometry           = geo.Geometry
	Kind               = geo.Kind
	Coord              = geo.Coord
	Point              = geo.Point
	LineString         = geo.LineString
	Polygon            = geo.Polygon
	MultiPoint         = geo.MultiPoint
	MultiLineString    = geo.MultiLineString
	MultiPolygon       = geo.MultiPolygon
	GeometryCollection = geo.GeometryCollection
	Decoded            = geo.Decoded
)
