package gml

import (
	"strconv"

	"github.com/woozymasta/wkt2gml/internal/geo"
)

// FormatCoord renders the ordinates of c separated by single spaces.
// Each ordinate is the shortest decimal text that parses back to the same float64.
func FormatCoord(c geo.Coord) string {
	return string(appendCoord(nil, c))
}

// FormatCoords renders every coordinate of cs, in order, separated by single spaces.
func FormatCoords(cs []geo.Coord) string {
	var b []byte
	for i, c := range cs {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendCoord(b, c)
	}
	return string(b)
}

func appendCoord(b []byte, c geo.Coord) []byte {
	for i, v := range c {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, v, 'f', -1, 64)
	}
	return b
}
