package util

import "strings"

// ContainsAny reports whether text contains any of the needles as a
// literal, case-sensitive substring. An empty needle set matches
// nothing.
func ContainsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// CountOccurrences counts non-overlapping occurrences of needle in
// text. An empty needle counts as zero.
func CountOccurrences(text, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(text, needle)
}

// SplitTags parses a comma separated tag cell into a list, dropping
// empty entries.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
