package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == '#' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// parseNumber accepts a plain positive integer token such as a quest id.
func parseNumber(token string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isFiller(token string) bool {
	switch token {
	case "the", "a", "an", "some", "to", "quest", "activity", "number", "no":
		return true
	default:
		return false
	}
}
