// Package config handles configuration loading and validation.
package config

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/wkt2gml"
)

// Config represents the root configuration file structure.
type Config struct {
	Listen      string `yaml:"listen,omitempty" validate:"omitempty,hostname_port"`
	InputFormat string `yaml:"input_format,omitempty" validate:"omitempty,oneof=wkt wkb geojson"`
	GML         GML    `yaml:"gml"`

	// CacheSize is the number of converted documents the server keeps; 0 disables the cache.
	CacheSize    int   `yaml:"cache_size" validate:"gte=0"`
	MaxBodyBytes int64 `yaml:"max_body_bytes" validate:"gt=0"`
}

// GML holds the output settings.
type GML struct {
	Namespace   string `yaml:"namespace,omitempty" validate:"omitempty,uri"`
	Prefix      string `yaml:"prefix,omitempty" validate:"omitempty,alphanum"`
	SRSName     string `yaml:"srs_name,omitempty"`
	PrettyPrint *bool  `yaml:"pretty_print,omitempty"`
	HeadlessXML *bool  `yaml:"headless_xml,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:       "0.0.0.0:8080",
		InputFormat:  string(wkt2gml.FormatWKT),
		CacheSize:    1024,
		MaxBodyBytes: 1 << 20,
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that an empty path or a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ConvertOptions maps the file settings onto conversion options.
func (c *Config) ConvertOptions() wkt2gml.Options {
	o := wkt2gml.DefaultOptions()
	if c.InputFormat != "" {
		o.InputFormat = wkt2gml.InputFormat(c.InputFormat)
	}
	if c.GML.Namespace != "" {
		o.Namespace = c.GML.Namespace
	}
	if c.GML.Prefix != "" {
		o.Prefix = c.GML.Prefix
	}
	o.SRSName = c.GML.SRSName
	if c.GML.PrettyPrint != nil {
		o.PrettyPrint = *c.GML.PrettyPrint
	}
	if c.GML.HeadlessXML != nil {
		o.HeadlessXML = *c.GML.HeadlessXML
	}
	return o
}
