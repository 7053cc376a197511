package geo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWKT(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Geometry
	}{
		{"point", "POINT(30 10)", Point{Coord: Coord{30, 10}}},
		{"point z", "POINT Z (1 2 3)", Point{Coord: Coord{1, 2, 3}}},
		{"linestring", "LINESTRING(30 10, 10 30, 40 40)",
			LineString{Coords: []Coord{{30, 10}, {10, 30}, {40, 40}}}},
		{"polygon with hole", "POLYGON((0 0, 10 0, 10 10, 0 0), (1 1, 2 1, 2 2, 1 1))",
			Polygon{Rings: [][]Coord{
				{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
				{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
			}}},
		{"multipoint", "MULTIPOINT((10 40), (40 30))",
			MultiPoint{Points: []Coord{{10, 40}, {40, 30}}}},
		{"multilinestring", "MULTILINESTRING((10 10, 20 20), (40 40, 30 30))",
			MultiLineString{Lines: [][]Coord{{{10, 10}, {20, 20}}, {{40, 40}, {30, 30}}}}},
		{"multipolygon", "MULTIPOLYGON(((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 15 5)))",
			MultiPolygon{Polygons: [][][]Coord{
				{{{30, 20}, {45, 40}, {10, 40}, {30, 20}}},
				{{{15, 5}, {40, 10}, {10, 20}, {15, 5}}},
			}}},
		{"collection", "GEOMETRYCOLLECTION(POINT(4 6), LINESTRING(4 6, 7 10))",
			GeometryCollection{Geometries: []Geometry{
				Point{Coord: Coord{4, 6}},
				LineString{Coords: []Coord{{4, 6}, {7, 10}}},
			}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec, err := ParseWKT(tc.in)
			require.NoError(t, err)
			assert.Equal(t, 0, dec.SRID)
			assert.Equal(t, tc.want.Kind(), dec.Geometry.Kind())
			assert.Equal(t, tc.want, dec.Geometry)
		})
	}
}

func TestParseWKT_SRID(t *testing.T) {
	dec, err := ParseWKT("SRID=4326;POINT(30 10)")
	require.NoError(t, err)
	assert.Equal(t, 4326, dec.SRID)
	assert.Equal(t, Point{Coord: Coord{30, 10}}, dec.Geometry)

	for _, in := range []string{"SRID=4326 POINT(30 10)", "SRID=abc;POINT(30 10)"} {
		_, err := ParseWKT(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrDecode), in)
	}
}

func TestParseWKT_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "CURVE(1 1, 2 2)", "POINT(1", "hello"} {
		dec, err := ParseWKT(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrDecode), in)
		assert.Nil(t, dec.Geometry)
	}
}

func TestParseWKBHex(t *testing.T) {
	dec, err := ParseWKBHex("0101000000000000000000F03F0000000000000040")
	require.NoError(t, err)
	assert.Equal(t, Point{Coord: Coord{1, 2}}, dec.Geometry)
	assert.Equal(t, 0, dec.SRID)

	dec, err = ParseWKBHex("0101000020E6100000000000000000F03F0000000000000040")
	require.NoError(t, err)
	assert.Equal(t, Point{Coord: Coord{1, 2}}, dec.Geometry)
	assert.Equal(t, 4326, dec.SRID)

	_, err = ParseWKBHex("zz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDeref(t *testing.T) {
	p := &Point{Coord: Coord{1, 2}}
	assert.Equal(t, Point{Coord: Coord{1, 2}}, Deref(p))
	assert.Equal(t, LineString{}, Deref(LineString{}))

	var nilColl *GeometryCollection
	assert.Nil(t, Deref(nilColl))
	assert.Nil(t, Deref(nil))
}
