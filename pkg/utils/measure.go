package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseMeasure extracts the numeric part of a set label. Labels arrive as
// free text from the workout screen: "10kg", "12.5kg", "x10", "10 reps".
// Unparseable labels count as zero rather than failing the aggregate.
func ParseMeasure(label string) float64 {
	s := strings.TrimSpace(label)
	start := -1
	end := -1
	for i, r := range s {
		if unicode.IsDigit(r) || (start >= 0 && (r == '.' || r == ',')) {
			if start < 0 {
				start = i
			}
			end = i + 1
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}
	num := strings.ReplaceAll(s[start:end], ",", ".")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return v
}
