package format

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func isPlaceholder(c byte) bool {
	return c == '0' || c == '#' || c == '.' || c == ','
}

const (
	partLiteral = iota
	partDigits
	partRaw
)

type patternPart struct {
	kind int
	text string
}

// scanPattern breaks a section pattern into literal runs, digit
// placeholder runs, and raw-value markers. Unterminated quotes and any
// character with no placeholder meaning degrade to literal text.
func scanPattern(pattern string) (parts []patternPart, percents int) {
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == '"':
			end := strings.IndexByte(pattern[i+1:], '"')
			if end < 0 {
				parts = append(parts, patternPart{partLiteral, pattern[i+1:]})
				i = len(pattern)
			} else {
				parts = append(parts, patternPart{partLiteral, pattern[i+1 : i+1+end]})
				i += end + 2
			}
		case c == '%':
			percents++
			parts = append(parts, patternPart{partLiteral, "%"})
			i++
		case c == '@':
			parts = append(parts, patternPart{partRaw, ""})
			i++
		case isPlaceholder(c):
			j := i
			for j < len(pattern) && isPlaceholder(pattern[j]) {
				j++
			}
			parts = append(parts, patternPart{partDigits, pattern[i:j]})
			i = j
		default:
			_, size := utf8.DecodeRuneInString(pattern[i:])
			parts = append(parts, patternPart{partLiteral, pattern[i : i+size]})
			i += size
		}
	}
	return parts, percents
}

// renderNumber renders v through a section pattern. negative tells the
// renderer to emit a leading minus; the negative positional section
// encodes the sign itself, so its caller passes false.
func renderNumber(v float64, pattern string, negative bool) string {
	if pattern == "" {
		return plainNumber(signed(v, negative))
	}
	parts, percents := scanPattern(pattern)
	abs := math.Abs(v)
	for p := 0; p < percents; p++ {
		abs *= 100
	}

	var sb strings.Builder
	digitsDone := false
	for _, part := range parts {
		switch part.kind {
		case partLiteral:
			sb.WriteString(part.text)
		case partRaw:
			sb.WriteString(plainNumber(signed(v, negative)))
		case partDigits:
			// Only the first placeholder run formats the value;
			// later runs render as-is.
			if digitsDone {
				sb.WriteString(part.text)
				continue
			}
			digitsDone = true
			if negative {
				sb.WriteByte('-')
			}
			sb.WriteString(renderDigits(abs, part.text))
		}
	}
	out := sb.String()
	if out == "" {
		return plainNumber(signed(v, negative))
	}
	return out
}

// renderDigits applies one 0/#/./, placeholder run to a non-negative value.
func renderDigits(abs float64, run string) string {
	intSpec, fracSpec := run, ""
	if dot := strings.IndexByte(run, '.'); dot >= 0 {
		intSpec, fracSpec = run[:dot], run[dot+1:]
	}
	if strings.Count(run, "0")+strings.Count(run, "#") == 0 {
		return run
	}

	grouped := strings.Contains(intSpec, ",")
	minInt := strings.Count(intSpec, "0")
	minFrac := strings.Count(fracSpec, "0")
	maxFrac := minFrac + strings.Count(fracSpec, "#")

	formatted := strconv.FormatFloat(abs, 'f', maxFrac, 64)
	intPart, fracPart := formatted, ""
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		intPart, fracPart = formatted[:dot], formatted[dot+1:]
	}

	for len(fracPart) > minFrac && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	for len(intPart) < minInt {
		intPart = "0" + intPart
	}
	if intPart == "0" && minInt == 0 && fracPart != "" {
		intPart = ""
	}
	if grouped {
		intPart = groupThousands(intPart)
	}
	if fracPart != "" {
		return intPart + "." + fracPart
	}
	return intPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// renderText applies a text section to a string value: @ inserts the
// value, quoted substrings and everything else pass through.
func renderText(s, pattern string) string {
	parts, _ := scanPattern(pattern)
	var sb strings.Builder
	for _, part := range parts {
		switch part.kind {
		case partRaw:
			sb.WriteString(s)
		default:
			sb.WriteString(part.text)
		}
	}
	out := sb.String()
	if out == "" {
		return s
	}
	return out
}

func signed(v float64, negative bool) float64 {
	if negative {
		return -math.Abs(v)
	}
	return math.Abs(v)
}

func plainNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
