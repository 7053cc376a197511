package server

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/wkt2gml"
	"github.com/woozymasta/wkt2gml/assets"
	"github.com/woozymasta/wkt2gml/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Options   wkt2gml.Options
	IndexHTML []byte
	Favicon   []byte

	cache *lru.Cache[uint64, cacheEntry]
}

// NewServerContext derives conversion defaults from the configuration and
// sets up the result cache.
func NewServerContext(cfg *config.Config) *ServerContext {
	s := &ServerContext{
		Config:    cfg,
		Options:   cfg.ConvertOptions(),
		IndexHTML: assets.Index,
		Favicon:   assets.Favicon,
	}

	if cfg.CacheSize > 0 {
		c, err := lru.New[uint64, cacheEntry](cfg.CacheSize)
		if err != nil {
			log.Warn().Err(err).Int("size", cfg.CacheSize).Msg("Conversion cache disabled")
		} else {
			s.cache = c
		}
	}

	log.Info().
		Str("namespace", s.Options.Namespace).
		Str("input_format", string(s.Options.InputFormat)).
		Bool("pretty_print", s.Options.PrettyPrint).
		Bool("headless_xml", s.Options.HeadlessXML).
		Int("cache_size", cfg.CacheSize).
		Msg("Server context initialized")

	return s
}
