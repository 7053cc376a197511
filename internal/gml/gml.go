// Package gml maps geometry values onto GML 3.2 element trees.
package gml

import (
	"fmt"

	"github.com/woozymasta/wkt2gml/internal/geo"
	"github.com/woozymasta/wkt2gml/internal/markup"
)

const (
	// DefaultNamespace is the GML 3.2 namespace URI.
	DefaultNamespace = "http://www.opengis.net/gml/3.2"
	// DefaultPrefix is the namespace prefix used on every element.
	DefaultPrefix = "gml"
)

// Options configures Transform. Zero values fall back to the defaults.
type Options struct {
	Namespace string
	Prefix    string
	// SRSName is written as the srsName attribute of the root when set.
	SRSName string
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	return o
}

// UnsupportedKindError reports a geometry whose kind has no GML mapping.
type UnsupportedKindError struct {
	Kind geo.Kind
}

func (e *UnsupportedKindError) Error() string {
	if e.Kind == "" {
		return "unsupported geometry kind: <nil>"
	}
	return fmt.Sprintf("unsupported geometry kind %q", string(e.Kind))
}

// Transform builds the GML element tree for g. The root is named after the
// geometry kind and carries the namespace declaration; no other element has
// attributes. Any unsupported kind, at any depth, fails the whole transform.
func Transform(g geo.Geometry, opts Options) (*markup.Element, error) {
	opts = opts.withDefaults()

	g = geo.Deref(g)
	if g == nil {
		return nil, &UnsupportedKindError{}
	}

	b := builder{prefix: opts.Prefix}
	root := markup.New(b.name(string(g.Kind())),
		markup.Attr{Name: "xmlns:" + opts.Prefix, Value: opts.Namespace})
	if opts.SRSName != "" {
		root.Attrs = append(root.Attrs, markup.Attr{Name: "srsName", Value: opts.SRSName})
	}

	if err := b.build(root, g); err != nil {
		return nil, err
	}
	return root, nil
}

type builder struct {
	prefix string
}

func (b builder) name(local string) string {
	return b.prefix + ":" + local
}

// build fills el with the content of g.
func (b builder) build(el *markup.Element, g geo.Geometry) error {
	switch g := g.(type) {
	case geo.Point:
		b.point(el, g.Coord)
	case geo.LineString:
		b.lineString(el, g.Coords)
	case geo.Polygon:
		b.polygon(el, g.Rings)
	case geo.MultiPoint:
		for _, c := range g.Points {
			b.point(el.Add(b.name("pointMember")).Add(b.name(string(geo.KindPoint))), c)
		}
	case geo.MultiLineString:
		for _, line := range g.Lines {
			b.lineString(el.Add(b.name("lineStringMember")).Add(b.name(string(geo.KindLineString))), line)
		}
	case geo.MultiPolygon:
		for _, rings := range g.Polygons {
			b.polygon(el.Add(b.name("polygonMember")).Add(b.name(string(geo.KindPolygon))), rings)
		}
	case geo.GeometryCollection:
		for _, m := range g.Geometries {
			m = geo.Deref(m)
			if m == nil {
				return &UnsupportedKindError{}
			}
			member := el.Add(b.name("geometryMember")).Add(b.name(string(m.Kind())))
			if err := b.build(member, m); err != nil {
				return err
			}
		}
	default:
		return &UnsupportedKindError{Kind: g.Kind()}
	}
	return nil
}

func (b builder) point(el *markup.Element, c geo.Coord) {
	el.AddText(b.name("pos"), FormatCoord(c))
}

func (b builder) lineString(el *markup.Element, cs []geo.Coord) {
	el.AddText(b.name("posList"), FormatCoords(cs))
}

// polygon writes ring 0 as the exterior and every later ring as an interior.
func (b builder) polygon(el *markup.Element, rings [][]geo.Coord) {
	for i, ring := range rings {
		boundary := "interior"
		if i == 0 {
			boundary = "exterior"
		}
		el.Add(b.name(boundary)).
			Add(b.name("LinearRing")).
			AddText(b.name("posList"), FormatCoords(ring))
	}
}
