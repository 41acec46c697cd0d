package csvstore

import (
	"strconv"
	"strings"
)

// headerIndex maps column names to positions so files stay loadable when
// columns are reordered.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseFloat recovers malformed numerics to a neutral fallback instead of
// aborting the row. The bool reports whether the value was usable.
func parseFloat(raw string, fallback float64) (float64, bool) {
	if raw == "" {
		return fallback, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, false
	}
	return v, true
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseTokenList turns a serialized list like ["['Books', 'Fashion']"] into
// a proper token slice at load time, so scoring never parses text ad hoc.
// Plain comma- or pipe-separated values are accepted too.
func parseTokenList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	sep := ","
	if !strings.Contains(raw, ",") && strings.Contains(raw, "|") {
		sep = "|"
	}

	parts := strings.Split(raw, sep)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `'"`)
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
