package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerces an untyped JSON value into a float64. Finite numbers pass
// through unchanged, numeric strings are parsed (a leading numeric prefix is
// accepted, so "250 kcal" yields 250), everything else yields the fallback.
func ToNumber(value any, fallback float64) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return v
	case float32:
		return ToNumber(float64(v), fallback)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, ok := parseLeadingFloat(strings.TrimSpace(v))
		if !ok {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// parseLeadingFloat parses the longest numeric prefix of s, matching the
// tolerant parsing the model responses were written against.
func parseLeadingFloat(s string) (float64, bool) {
	i := 0
	end := 0
	seenDigit := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		seenDigit = true
		end = i
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			seenDigit = true
			end = i
		}
	}
	if seenDigit && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			end = k
		}
	}
	if !seenDigit {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

// ToTrimmedString coerces a value to a trimmed string. Nil yields the
// fallback; non-string scalars are stringified.
func ToTrimmedString(value any, fallback string) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return fallback
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStringArray coerces a value to a slice of non-empty trimmed strings. A
// bare string becomes a one-element slice; anything else yields an empty
// slice.
func ToStringArray(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s := ToTrimmedString(item, "")
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s := strings.TrimSpace(item)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []string{}
		}
		return []string{trimmed}
	default:
		return []string{}
	}
}
