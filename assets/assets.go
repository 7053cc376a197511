// Package assets embeds the static files served by the conversion server.
package assets

import _ "embed"

//go:generate go run ../cmd/minify --dir .

// Index is the minified playground page built from index.html.tpl.
//
//go:embed index.html
var Index []byte

//go:embed favicon.svg
var Favicon []byte
