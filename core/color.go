package core

import (
	"fmt"
	"strconv"
	"strings"
)

// parseColor converts a CSS hex color ("#RGB", "#RGBA", "#RRGGBB" or
// "#RRGGBBAA") to the ARGB value the native SDKs expect. Colors without an
// alpha component are opaque.
func parseColor(hex string) (uint32, error) {
	digits, ok := strings.CutPrefix(strings.TrimSpace(hex), "#")
	if !ok {
		return 0, fmt.Errorf("%w: color %q must start with #", ErrInvalidParam, hex)
	}

	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return 0, fmt.Errorf("%w: color %q must have 3, 4, 6 or 8 hex digits", ErrInvalidParam, hex)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %v", ErrInvalidParam, hex, err)
	}
	if len(digits) == 6 {
		return uint32(v) | 0xff000000, nil
	}
	// RRGGBBAA -> AARRGGBB
	return uint32(v>>8 | (v&0xff)<<24), nil
}
