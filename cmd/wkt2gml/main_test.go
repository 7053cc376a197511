package main

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/wkt2gml"
	"github.com/woozymasta/wkt2gml/internal/config"
)

func TestConvertOptions(t *testing.T) {
	cfg := config.Default()
	cfg.GML.Namespace = "urn:from:file"
	cfg.GML.SRSName = "EPSG:4326"

	o := (&Options{}).convertOptions(cfg)
	assert.Equal(t, "urn:from:file", o.Namespace)
	assert.Equal(t, "EPSG:4326", o.SRSName)
	assert.True(t, o.PrettyPrint)
	assert.True(t, o.HeadlessXML)

	o = (&Options{
		Format:         "geojson",
		Namespace:      "urn:from:flag",
		Compact:        true,
		XMLDeclaration: true,
	}).convertOptions(cfg)
	assert.Equal(t, wkt2gml.FormatGeoJSON, o.InputFormat)
	assert.Equal(t, "urn:from:flag", o.Namespace)
	assert.False(t, o.PrettyPrint)
	assert.False(t, o.HeadlessXML)
}

func TestRun(t *testing.T) {
	o := wkt2gml.DefaultOptions()
	o.PrettyPrint = false

	out, err := run([]byte("POINT(1 2)\n"), o, false)
	require.NoError(t, err)
	assert.Equal(t, `<gml:Point xmlns:gml="http://www.opengis.net/gml/3.2"><gml:pos>1 2</gml:pos></gml:Point>`+"\n", string(out))

	out, err = run([]byte("POINT(1 2)\n\n  LINESTRING(0 0, 1 1)\n"), o, true)
	require.NoError(t, err)
	assert.Equal(t,
		`<gml:Point xmlns:gml="http://www.opengis.net/gml/3.2"><gml:pos>1 2</gml:pos></gml:Point>`+"\n"+
			`<gml:LineString xmlns:gml="http://www.opengis.net/gml/3.2"><gml:posList>0 0 1 1</gml:posList></gml:LineString>`+"\n",
		string(out))
}

func TestRun_LineError(t *testing.T) {
	_, err := run([]byte("POINT(1 2)\nPOINT(1\n"), wkt2gml.DefaultOptions(), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wkt2gml.ErrInvalidWKT))
	assert.Contains(t, err.Error(), "line 2")
}
