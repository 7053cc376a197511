package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/wkt2gml"
	"github.com/woozymasta/wkt2gml/internal/metrics"
)

var (
	errMissingInput  = errors.New("missing geometry input")
	errUnknownFormat = errors.New("unknown input format")
)

// convertRequest is the JSON form of a conversion request.
type convertRequest struct {
	WKT          string `json:"wkt"`
	Format       string `json:"format,omitempty"`
	GMLNamespace string `json:"gmlNamespace,omitempty"`
	SRSName      string `json:"srsName,omitempty"`
	PrettyPrint  *bool  `json:"prettyPrint,omitempty"`
	HeadlessXML  *bool  `json:"headlessXml,omitempty"`
}

func (c convertRequest) apply(o wkt2gml.Options) wkt2gml.Options {
	if c.Format != "" {
		o.InputFormat = wkt2gml.InputFormat(strings.ToLower(c.Format))
	}
	if c.GMLNamespace != "" {
		o.Namespace = c.GMLNamespace
	}
	if c.SRSName != "" {
		o.SRSName = c.SRSName
	}
	if c.PrettyPrint != nil {
		o.PrettyPrint = *c.PrettyPrint
	}
	if c.HeadlessXML != nil {
		o.HeadlessXML = *c.HeadlessXML
	}
	return o
}

// parseConvertRequest reads the input and options from the query string and,
// for POST, from the body: raw geometry text, or a JSON convertRequest when the
// content type is application/json.
func (s *ServerContext) parseConvertRequest(w http.ResponseWriter, r *http.Request) (convertRequest, error) {
	q := r.URL.Query()
	req := convertRequest{
		WKT:          q.Get("wkt"),
		Format:       q.Get("format"),
		GMLNamespace: q.Get("namespace"),
		SRSName:      q.Get("srs"),
	}

	for name, dst := range map[string]**bool{"pretty": &req.PrettyPrint, "headless": &req.HeadlessXML} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return req, errors.Wrapf(err, "query parameter %s", name)
		}
		*dst = &v
	}

	if r.Method == http.MethodPost {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.Config.MaxBodyBytes))
		if err != nil {
			return req, err
		}

		ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if ct == "application/json" {
			var jr convertRequest
			if err := json.Unmarshal(body, &jr); err != nil {
				return req, errors.Wrap(err, "decode request body")
			}
			req = mergeRequest(req, jr)
		} else if len(body) > 0 {
			req.WKT = string(body)
		}
	}

	if strings.TrimSpace(req.WKT) == "" {
		return req, errMissingInput
	}
	switch wkt2gml.InputFormat(strings.ToLower(req.Format)) {
	case "", wkt2gml.FormatWKT, wkt2gml.FormatWKB, wkt2gml.FormatGeoJSON:
	default:
		return req, errors.Wrapf(errUnknownFormat, "%q", req.Format)
	}
	return req, nil
}

// mergeRequest lets fields set in the body override the query string.
func mergeRequest(q, body convertRequest) convertRequest {
	if body.WKT != "" {
		q.WKT = body.WKT
	}
	if body.Format != "" {
		q.Format = body.Format
	}
	if body.GMLNamespace != "" {
		q.GMLNamespace = body.GMLNamespace
	}
	if body.SRSName != "" {
		q.SRSName = body.SRSName
	}
	if body.PrettyPrint != nil {
		q.PrettyPrint = body.PrettyPrint
	}
	if body.HeadlessXML != nil {
		q.HeadlessXML = body.HeadlessXML
	}
	return q
}

// convert decodes and converts input, consulting the cache first.
func (s *ServerContext) convert(input string, o wkt2gml.Options) (string, error) {
	key := cacheKey(input, o)
	if s.cache != nil {
		if out, ok := s.cacheGet(key, input, o); ok {
			metrics.IncCacheHit()
			return out, nil
		}
		metrics.IncCacheMiss()
	}

	start := time.Now()
	dec, err := wkt2gml.Decode(input, o.InputFormat)
	if err != nil {
		metrics.ObserveConversion("", outcome(err), time.Since(start).Seconds())
		return "", err
	}

	out, err := wkt2gml.ConvertDecoded(dec, wkt2gml.WithOptions(o))
	kind := string(dec.Geometry.Kind())
	metrics.ObserveConversion(kind, outcome(err), time.Since(start).Seconds())
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("kind", kind).
		Int("input_bytes", len(input)).
		Int("output_bytes", len(out)).
		Msg("Geometry converted")

	s.cacheAdd(key, input, o, out)
	return out, nil
}

func outcome(err error) string {
	var uk *wkt2gml.UnsupportedKindError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, wkt2gml.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.As(err, &uk):
		return metrics.OutcomeUnsupportedKind
	default:
		return metrics.OutcomeError
	}
}

// statusFor maps a request or conversion error onto an HTTP status.
func statusFor(err error) int {
	var (
		uk  *wkt2gml.UnsupportedKindError
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &uk):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wkt2gml.ErrInvalidInput),
		errors.Is(err, errMissingInput),
		errors.Is(err, errUnknownFormat):
		return http.StatusBadRequest
	case errors.HasType(err, (*json.SyntaxError)(nil)),
		errors.HasType(err, (*json.UnmarshalTypeError)(nil)),
		errors.HasType(err, (*strconv.NumError)(nil)):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
