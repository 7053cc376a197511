package server

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/woozymasta/wkt2gml"
)

// cacheEntry keeps the key material so a hash collision is a miss, not a wrong answer.
type cacheEntry struct {
	input  string
	opts   wkt2gml.Options
	output string
}

func cacheKey(input string, o wkt2gml.Options) uint64 {
	d := xxhash.New()
	for _, s := range []string{
		string(o.InputFormat),
		o.Namespace,
		o.Prefix,
		o.SRSName,
		strconv.FormatBool(o.PrettyPrint),
		strconv.FormatBool(o.HeadlessXML),
		input,
	} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func (s *ServerContext) cacheGet(key uint64, input string, o wkt2gml.Options) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	e, ok := s.cache.Get(key)
	if !ok || e.input != input || e.opts != o {
		return "", false
	}
	return e.output, true
}

func (s *ServerContext) cacheAdd(key uint64, input string, o wkt2gml.Options, output string) {
	if s.cache == nil {
		return
	}
	s.cache.Add(key, cacheEntry{input: input, opts: o, output: output})
}
