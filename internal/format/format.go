// Package format evaluates Excel-like conditional format strings.
//
// A format string is a list of semicolon-delimited sections. Sections
// apply positionally (positive, negative, zero, text) unless a leading
// bracketed condition claims the value first, and may carry a bracketed
// display color. Evaluation never fails: unrecognized syntax degrades to
// literal text, and the worst case echoes the value unstyled.
package format

import "fmt"

// Result is the terminal output of evaluating one value against one
// format string. Color is empty when no section color applies.
type Result struct {
	Text  string
	Color string
}

// Format evaluates value against spec. Numeric Go values format through
// the numeric sections; strings format through the text section. It is
// pure and deterministic: identical inputs always produce identical
// results.
func Format(value any, spec string) Result {
	if s, ok := value.(string); ok {
		return formatText(s, spec)
	}
	v, ok := toFloat(value)
	if !ok {
		// Unformattable value: echo it unstyled.
		return Result{Text: stringify(value)}
	}
	return formatNumber(v, spec)
}

func formatNumber(v float64, spec string) Result {
	if spec == "" {
		return Result{Text: plainNumber(v)}
	}
	sections := parseSections(spec)

	idx := -1
	for i, sec := range sections {
		if sec.cond != nil {
			if sec.cond.matches(v) {
				idx = i
				break
			}
			continue
		}
		switch i {
		case 0:
			// First section is positive-or-default: it also takes
			// zero when no zero section exists.
			if v > 0 || (v == 0 && len(sections) < 3) {
				idx = i
			}
		case 1:
			if v < 0 {
				idx = i
			}
		case 2:
			if v == 0 {
				idx = i
			}
		}
		if idx >= 0 {
			break
		}
	}
	if idx < 0 {
		idx = len(sections) - 1
	}

	sec := sections[idx]
	// The negative positional section encodes the sign in its pattern.
	negative := v < 0 && idx != 1
	return Result{
		Text:  renderNumber(v, sec.pattern, negative),
		Color: sec.color,
	}
}

func formatText(s, spec string) Result {
	if spec == "" {
		return Result{Text: s}
	}
	sections := parseSections(spec)
	if len(sections) < 4 {
		return Result{Text: s}
	}
	sec := sections[3]
	return Result{
		Text:  renderText(s, sec.pattern),
		Color: sec.color,
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
