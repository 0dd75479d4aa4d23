package format

import (
	"strconv"
	"strings"
)

// condition is a bracketed comparison gating a section, e.g. [>=90].
type condition struct {
	op        string
	threshold float64
}

func (c condition) matches(v float64) bool {
	switch c.op {
	case ">":
		return v > c.threshold
	case ">=":
		return v >= c.threshold
	case "<":
		return v < c.threshold
	case "<=":
		return v <= c.threshold
	case "=":
		return v == c.threshold
	case "<>":
		return v != c.threshold
	}
	return false
}

// section is one semicolon-delimited clause of a format string after its
// leading brackets have been consumed.
type section struct {
	cond    *condition
	color   string
	pattern string
}

// splitSections splits a format string on top-level semicolons.
// Semicolons inside brackets or inside quoted literals are not split
// points.
func splitSections(spec string) []string {
	var out []string
	var sb strings.Builder
	inBracket := false
	inQuote := false
	for _, r := range spec {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			}
			sb.WriteRune(r)
		case inBracket:
			if r == ']' {
				inBracket = false
			}
			sb.WriteRune(r)
		case r == '"':
			inQuote = true
			sb.WriteRune(r)
		case r == '[':
			inBracket = true
			sb.WriteRune(r)
		case r == ';':
			out = append(out, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	out = append(out, sb.String())
	return out
}

// parseSection consumes leading [condition] and/or [color] brackets.
// A bracket that is neither stays in the pattern and renders literally.
func parseSection(s string) section {
	sec := section{}
	for strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			break
		}
		content := s[1:end]
		if cond, ok := parseCondition(content); ok {
			sec.cond = &cond
			s = s[end+1:]
			continue
		}
		if color, ok := resolveColor(content); ok {
			sec.color = color
			s = s[end+1:]
			continue
		}
		break
	}
	sec.pattern = s
	return sec
}

var conditionOps = []string{">=", "<=", "<>", ">", "<", "="}

func parseCondition(s string) (condition, bool) {
	for _, op := range conditionOps {
		if !strings.HasPrefix(s, op) {
			continue
		}
		raw := strings.TrimSpace(s[len(op):])
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return condition{}, false
		}
		return condition{op: op, threshold: threshold}, true
	}
	return condition{}, false
}

func parseSections(spec string) []section {
	parts := splitSections(spec)
	out := make([]section, len(parts))
	for i, p := range parts {
		out[i] = parseSection(p)
	}
	return out
}
