package format

import "strings"

// Named colors a format section may carry, resolved to CSS hex. The
// palette matches the classic spreadsheet set.
var namedColors = map[string]string{
	"black":   "#000000",
	"blue":    "#0000FF",
	"cyan":    "#00FFFF",
	"green":   "#008000",
	"magenta": "#FF00FF",
	"red":     "#FF0000",
	"white":   "#FFFFFF",
	"yellow":  "#FFFF00",
}

// resolveColor maps bracket content to a CSS color string. Named colors
// are matched case-insensitively; #-prefixed 3- or 6-digit hex codes
// pass through as written.
func resolveColor(s string) (string, bool) {
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		return hex, true
	}
	if strings.HasPrefix(s, "#") {
		digits := s[1:]
		if len(digits) != 3 && len(digits) != 6 {
			return "", false
		}
		for _, r := range digits {
			switch {
			case r >= '0' && r <= '9':
			case r >= 'a' && r <= 'f':
			case r >= 'A' && r <= 'F':
			default:
				return "", false
			}
		}
		return s, true
	}
	return "", false
}
