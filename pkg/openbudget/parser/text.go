// Package parser reconstructs budget tables from extracted text grids.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// cnDigits are the Chinese numerals used in enumerated item labels.
const cnDigits = "一二三四五六七八九十"

var (
	reDigitMarker = regexp.MustCompile(`^[0-9０-９]+[.．]`)
	reCNMarker    = regexp.MustCompile(`^[` + cnDigits + `]+、`)
	reMerge       = regexp.MustCompile(`[` + cnDigits + `]+、`)
)

// NormalizeLabel strips a leading ordinal marker ("1." or "二、", digits and
// period may be full-width) and removes all whitespace and control
// characters. The rest of the text is kept as extracted.
//
//	"1.一般公共预算"        -> "一般公共预算"
//	"2. 政 府 性基金预算"    -> "政府性基金预算"
//	"十七、国土海洋气象等支出" -> "国土海洋气象等支出"
func NormalizeLabel(s string) string {
	if s == "" {
		return s
	}
	if loc := reDigitMarker.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	}
	if loc := reCNMarker.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// ParseFloat parses an amount cell. Thousands separators are ignored.
// It reports false for empty or non-numeric text; this is the common case
// for header and section rows, not an error.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(norm.NFKC.String(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
