package gml

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/wkt2gml/internal/geo"
	"github.com/woozymasta/wkt2gml/internal/markup"
)

type curve struct{}

func (curve) Kind() geo.Kind { return "Curve" }

var square = []geo.Coord{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
var hole = []geo.Coord{{2, 2}, {3, 2}, {3, 3}, {2, 2}}

func TestTransform_RootForEveryKind(t *testing.T) {
	cases := []geo.Geometry{
		geo.Point{Coord: geo.Coord{1, 2}},
		geo.LineString{Coords: []geo.Coord{{1, 2}, {3, 4}}},
		geo.Polygon{Rings: [][]geo.Coord{square}},
		geo.MultiPoint{Points: []geo.Coord{{1, 2}}},
		geo.MultiLineString{Lines: [][]geo.Coord{{{1, 2}, {3, 4}}}},
		geo.MultiPolygon{Polygons: [][][]geo.Coord{{square}}},
		geo.GeometryCollection{Geometries: []geo.Geometry{geo.Point{Coord: geo.Coord{1, 2}}}},
	}

	for _, g := range cases {
		t.Run(string(g.Kind()), func(t *testing.T) {
			root, err := Transform(g, Options{})
			require.NoError(t, err)
			assert.Equal(t, "gml:"+string(g.Kind()), root.Name)

			ns, ok := root.Attr("xmlns:gml")
			require.True(t, ok)
			assert.Equal(t, DefaultNamespace, ns)

			root, err = Transform(g, Options{Namespace: "urn:custom"})
			require.NoError(t, err)
			ns, _ = root.Attr("xmlns:gml")
			assert.Equal(t, "urn:custom", ns)
		})
	}
}

func TestTransform_Point(t *testing.T) {
	root, err := Transform(geo.Point{Coord: geo.Coord{30, 10}}, Options{})
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "gml:pos", root.Children[0].Name)
	assert.Equal(t, "30 10", root.Children[0].Text)
}

func TestTransform_LineString(t *testing.T) {
	root, err := Transform(geo.LineString{Coords: []geo.Coord{{30, 10}, {10, 30}, {40, 40}}}, Options{})
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "gml:posList", root.Children[0].Name)
	assert.Equal(t, "30 10 10 30 40 40", root.Children[0].Text)
}

func TestTransform_PolygonRings(t *testing.T) {
	t.Run("exterior only", func(t *testing.T) {
		root, err := Transform(geo.Polygon{Rings: [][]geo.Coord{square}}, Options{})
		require.NoError(t, err)
		require.Len(t, root.Find("gml:exterior"), 1)
		assert.Empty(t, root.Find("gml:interior"))

		posList := root.Children[0].Children[0].Children[0]
		assert.Equal(t, "gml:posList", posList.Name)
		assert.Equal(t, "0 0 10 0 10 10 0 10 0 0", posList.Text)
	})

	t.Run("holes keep order", func(t *testing.T) {
		other := []geo.Coord{{5, 5}, {6, 5}, {6, 6}, {5, 5}}
		root, err := Transform(geo.Polygon{Rings: [][]geo.Coord{square, hole, other}}, Options{})
		require.NoError(t, err)
		require.Len(t, root.Children, 3)
		assert.Equal(t, "gml:exterior", root.Children[0].Name)

		interiors := root.Find("gml:interior")
		require.Len(t, interiors, 2)
		assert.Equal(t, FormatCoords(hole), interiors[0].Children[0].Children[0].Text)
		assert.Equal(t, FormatCoords(other), interiors[1].Children[0].Children[0].Text)
		assert.Equal(t, "gml:LinearRing", interiors[0].Children[0].Name)
	})

	t.Run("no rings", func(t *testing.T) {
		root, err := Transform(geo.Polygon{}, Options{})
		require.NoError(t, err)
		assert.Empty(t, root.Children)
	})
}

func TestTransform_MultiPoint(t *testing.T) {
	root, err := Transform(geo.MultiPoint{Points: []geo.Coord{{10, 40}, {40, 30}}}, Options{})
	require.NoError(t, err)

	members := root.Find("gml:pointMember")
	require.Len(t, members, 2)
	for i, want := range []string{"10 40", "40 30"} {
		require.Len(t, members[i].Children, 1)
		pt := members[i].Children[0]
		assert.Equal(t, "gml:Point", pt.Name)
		assert.Empty(t, pt.Attrs)
		assert.Equal(t, want, pt.Children[0].Text)
	}
}

func TestTransform_MultiLineString(t *testing.T) {
	root, err := Transform(geo.MultiLineString{Lines: [][]geo.Coord{
		{{10, 10}, {20, 20}, {10, 40}},
		{{40, 40}, {30, 30}, {40, 20}, {30, 10}},
	}}, Options{})
	require.NoError(t, err)

	members := root.Find("gml:lineStringMember")
	require.Len(t, members, 2)
	assert.Equal(t, "gml:LineString", members[0].Children[0].Name)
	assert.Equal(t, "10 10 20 20 10 40", members[0].Children[0].Children[0].Text)
	assert.Equal(t, "40 40 30 30 40 20 30 10", members[1].Children[0].Children[0].Text)
}

func TestTransform_MultiPolygon(t *testing.T) {
	root, err := Transform(geo.MultiPolygon{Polygons: [][][]geo.Coord{{square, hole}, {square}}}, Options{})
	require.NoError(t, err)

	members := root.Find("gml:polygonMember")
	require.Len(t, members, 2)

	first := members[0].Children[0]
	assert.Equal(t, "gml:Polygon", first.Name)
	assert.Len(t, first.Find("gml:exterior"), 1)
	assert.Len(t, first.Find("gml:interior"), 1)

	second := members[1].Children[0]
	assert.Len(t, second.Find("gml:exterior"), 1)
	assert.Empty(t, second.Find("gml:interior"))
}

func TestTransform_CollectionOrder(t *testing.T) {
	gc := geo.GeometryCollection{Geometries: []geo.Geometry{
		geo.Point{Coord: geo.Coord{4, 6}},
		geo.LineString{Coords: []geo.Coord{{4, 6}, {7, 10}}},
		&geo.Polygon{Rings: [][]geo.Coord{square}},
		geo.GeometryCollection{Geometries: []geo.Geometry{
			geo.MultiPoint{Points: []geo.Coord{{1, 1}}},
		}},
	}}

	root, err := Transform(gc, Options{})
	require.NoError(t, err)

	members := root.Find("gml:geometryMember")
	require.Len(t, members, 4)

	var names []string
	for _, m := range members {
		require.Len(t, m.Children, 1)
		names = append(names, m.Children[0].Name)
	}
	assert.Equal(t, []string{"gml:Point", "gml:LineString", "gml:Polygon", "gml:GeometryCollection"}, names)
	assert.Equal(t, "4 6", members[0].Children[0].Children[0].Text)
	assert.Equal(t, "4 6 7 10", members[1].Children[0].Children[0].Text)

	nested := members[3].Children[0].Find("gml:geometryMember")
	require.Len(t, nested, 1)
	assert.Equal(t, "gml:MultiPoint", nested[0].Children[0].Name)
}

func TestTransform_UnsupportedKind(t *testing.T) {
	cases := map[string]geo.Geometry{
		"top level": curve{},
		"nested": geo.GeometryCollection{Geometries: []geo.Geometry{
			geo.Point{Coord: geo.Coord{1, 1}},
			curve{},
		}},
		"deeply nested": geo.GeometryCollection{Geometries: []geo.Geometry{
			geo.GeometryCollection{Geometries: []geo.Geometry{curve{}}},
		}},
	}

	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			root, err := Transform(g, Options{})
			require.Error(t, err)
			assert.Nil(t, root)

			var uk *UnsupportedKindError
			require.True(t, errors.As(err, &uk))
			assert.Equal(t, geo.Kind("Curve"), uk.Kind)
			assert.Contains(t, err.Error(), `"Curve"`)
		})
	}
}

func TestTransform_NilGeometry(t *testing.T) {
	var p *geo.Point
	for _, g := range []geo.Geometry{nil, p} {
		root, err := Transform(g, Options{})
		assert.Nil(t, root)

		var uk *UnsupportedKindError
		require.True(t, errors.As(err, &uk))
	}
}

func TestTransform_PrefixAndSRSName(t *testing.T) {
	root, err := Transform(geo.MultiPoint{Points: []geo.Coord{{1, 2}}}, Options{
		Prefix:  "g",
		SRSName: "EPSG:4326",
	})
	require.NoError(t, err)

	assert.Equal(t, "g:MultiPoint", root.Name)
	assert.Equal(t, []markup.Attr{
		{Name: "xmlns:g", Value: DefaultNamespace},
		{Name: "srsName", Value: "EPSG:4326"},
	}, root.Attrs)
	assert.Equal(t, "g:pointMember", root.Children[0].Name)
	assert.Equal(t, "g:Point", root.Children[0].Children[0].Name)
	assert.Equal(t, "g:pos", root.Children[0].Children[0].Children[0].Name)
}

func TestTransform_OnlyRootHasAttributes(t *testing.T) {
	root, err := Transform(geo.GeometryCollection{Geometries: []geo.Geometry{
		geo.MultiPolygon{Polygons: [][][]geo.Coord{{square, hole}}},
	}}, Options{SRSName: "EPSG:4326"})
	require.NoError(t, err)

	var walk func(e *markup.Element)
	walk = func(e *markup.Element) {
		for _, c := range e.Children {
			assert.Empty(t, c.Attrs, c.Name)
			assert.False(t, c.Text != "" && len(c.Children) > 0, c.Name)
			walk(c)
		}
	}
	walk(root)
}
