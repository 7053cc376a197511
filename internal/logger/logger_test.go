package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	l := Logger{Level: "warn", Format: "json"}
	zl := l.Build(&buf)

	zl.Info().Msg("hidden")
	zl.Warn().Str("kind", "Point").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Point", entry["kind"])
	assert.Equal(t, "shown", entry["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud"))
}

func TestWriter(t *testing.T) {
	w, err := (&Logger{Output: "stdout"}).writer()
	require.NoError(t, err)
	assert.NotNil(t, w)

	path := filepath.Join(t.TempDir(), "out.log")
	w, err = (&Logger{Output: path}).writer()
	require.NoError(t, err)
	assert.FileExists(t, path)
	require.NoError(t, w.(io.Closer).Close())

	_, err = (&Logger{Output: filepath.Join(t.TempDir(), "missing", "out.log")}).writer()
	require.Error(t, err)
}
