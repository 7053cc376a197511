package wkt2gml

import "github.com/woozymasta/wkt2gml/internal/gml"

// InputFormat selects the decoder applied to Convert input.
type InputFormat string

// Supported input formats.
const (
	FormatWKT     InputFormat = "wkt"
	FormatWKB     InputFormat = "wkb"
	FormatGeoJSON InputFormat = "geojson"
)

// DefaultNamespace is the GML 3.2 namespace URI.
const DefaultNamespace = gml.DefaultNamespace

// Options is the full conversion configuration.
type Options struct {
	// Namespace is the value of the root xmlns declaration.
	Namespace string
	// Prefix is the namespace prefix of every element.
	Prefix string
	// SRSName is written as the root srsName attribute. When empty an EWKT
	// or EWKB SRID is written as "EPSG:<srid>".
	SRSName string
	// PrettyPrint indents the output, one element per line.
	PrettyPrint bool
	// HeadlessXML omits the XML declaration.
	HeadlessXML bool
	InputFormat InputFormat
}

// DefaultOptions returns indented, declaration-free GML 3.2 output from WKT input.
func DefaultOptions() Options {
	return Options{
		Namespace:   gml.DefaultNamespace,
		Prefix:      gml.DefaultPrefix,
		PrettyPrint: true,
		HeadlessXML: true,
		InputFormat: FormatWKT,
	}
}

// Option adjusts Options.
type Option func(*Options)

// WithOptions replaces the whole configuration.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithNamespace overrides the GML namespace URI.
func WithNamespace(uri string) Option {
	return func(o *Options) { o.Namespace = uri }
}

// WithPrefix overrides the namespace prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithSRSName sets the srsName attribute of the root element.
func WithSRSName(name string) Option {
	return func(o *Options) { o.SRSName = name }
}

// WithPrettyPrint toggles indentation.
func WithPrettyPrint(on bool) Option {
	return func(o *Options) { o.PrettyPrint = on }
}

// WithHeadless toggles omission of the XML declaration.
func WithHeadless(on bool) Option {
	return func(o *Options) { o.HeadlessXML = on }
}

// WithInputFormat selects the input decoder.
func WithInputFormat(f InputFormat) Option {
	return func(o *Options) { o.InputFormat = f }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
