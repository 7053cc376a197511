package wkt2gml

import (
	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wkt2gml/internal/gml"
)

var (
	// ErrInvalidInput marks input that could not be decoded in any format.
	ErrInvalidInput = errors.New("invalid geometry input")
	// ErrInvalidWKT marks text that is not parseable WKT. It is also ErrInvalidInput.
	ErrInvalidWKT = errors.New("invalid WKT string")
)

// UnsupportedKindError is returned when a geometry, top-level or nested in a
// collection, has a kind with no GML mapping.
type UnsupportedKindError = gml.UnsupportedKindError
