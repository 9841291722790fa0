package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q must have 6 hex digits", splasherrors.ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return color.RGBA{}, fmt.Errorf("%w: %q contains non-hex character %q", splasherrors.ErrInvalidColor, s, r)
		}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %w", splasherrors.ErrInvalidColor, s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// FormatHexColor renders c as "#RRGGBB".
func FormatHexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NormalizeHexColor parses s and renders it back in canonical form.
func NormalizeHexColor(s string) (string, error) {
	c, err := ParseHexColor(s)
	if err != nil {
		return "", err
	}
	return FormatHexColor(c), nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
