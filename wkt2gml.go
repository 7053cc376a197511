// Package wkt2gml converts geometries written as Well-Known Text into GML 3.2 fragments.
//
//	out, err := wkt2gml.Convert("POINT(30 10)")
//	// <gml:Point xmlns:gml="http://www.opengis.net/gml/3.2">
//	//   <gml:pos>30 10</gml:pos>
//	// </gml:Point>
//
// WKB hex and GeoJSON input are accepted through WithInputFormat.
package wkt2gml

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wkt2gml/internal/geo"
	"github.com/woozymasta/wkt2gml/internal/gml"
	"github.com/woozymasta/wkt2gml/internal/markup"
)

// Convert parses input and returns its GML representation.
// On failure no output is produced.
func Convert(input string, opts ...Option) (string, error) {
	o := resolve(opts)

	dec, err := Decode(input, o.InputFormat)
	if err != nil {
		return "", err
	}
	return render(dec, o)
}

// ConvertGeometry returns the GML representation of an already decoded geometry.
func ConvertGeometry(g Geometry, opts ...Option) (string, error) {
	return render(Decoded{Geometry: g}, resolve(opts))
}

// ConvertDecoded is ConvertGeometry for a Decode result; its SRID fills srsName
// unless one is configured.
func ConvertDecoded(d Decoded, opts ...Option) (string, error) {
	return render(d, resolve(opts))
}

// Decode parses input in the given format without converting it.
func Decode(input string, f InputFormat) (Decoded, error) {
	var (
		dec Decoded
		err error
	)
	switch f {
	case FormatWKT, "":
		dec, err = geo.ParseWKT(input)
		if err != nil {
			err = errors.Mark(errors.Wrap(err, ErrInvalidWKT.Error()), ErrInvalidWKT)
		}
	case FormatWKB:
		dec, err = geo.ParseWKBHex(input)
		if err != nil {
			err = errors.Wrap(err, "invalid WKB hex")
		}
	case FormatGeoJSON:
		dec, err = geo.ParseGeoJSON([]byte(input))
		if err != nil {
			err = errors.Wrap(err, "invalid GeoJSON")
		}
	default:
		return Decoded{}, errors.Newf("unknown input format %q", string(f))
	}
	if err != nil {
		return Decoded{}, errors.Mark(err, ErrInvalidInput)
	}
	return dec, nil
}

func render(d Decoded, o Options) (string, error) {
	srs := o.SRSName
	if srs == "" && d.SRID != 0 {
		srs = fmt.Sprintf("EPSG:%d", d.SRID)
	}

	root, err := gml.Transform(d.Geometry, gml.Options{
		Namespace: o.Namespace,
		Prefix:    o.Prefix,
		SRSName:   srs,
	})
	if err != nil {
		return "", err
	}

	return markup.Marshal(root, markup.Format{
		Pretty:      o.PrettyPrint,
		Declaration: !o.HeadlessXML,
	})
}
