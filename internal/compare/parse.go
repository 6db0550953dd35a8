package compare

import (
	"errors"
	"strings"
)

var (
	// ErrNoConnector means the sentence had no recognized "or"/"vs" split.
	ErrNoConnector = errors.New("could not detect two products to compare")
	// ErrBadParts means the split did not yield exactly two non-empty names.
	ErrBadParts = errors.New("expected exactly two product names")
)

// fillerWords are removed by literal substring deletion before splitting.
// Deliberately not word-boundary aware: "the" inside a product name gets
// stripped too, e.g. "feather" becomes "fear". An accepted heuristic
// imprecision.
var fillerWords = []string{"should i buy", "compare", "?", "the"}

// ParseQuery extracts two product name candidates from a free-text question
// like "should i buy the hoodie or the blender?". The names feed directly
// into Compare's substring resolution.
func ParseQuery(sentence string) (string, string, error) {
	q := strings.ToLower(sentence)
	for _, w := range fillerWords {
		q = strings.ReplaceAll(q, w, "")
	}
	q = strings.TrimSpace(q)

	var parts []string
	switch {
	case strings.Contains(q, " or "):
		parts = strings.Split(q, " or ")
	case strings.Contains(q, " vs "):
		parts = strings.Split(q, " vs ")
	default:
		return "", "", ErrNoConnector
	}

	if len(parts) != 2 {
		return "", "", ErrBadParts
	}

	first := strings.TrimSpace(parts[0])
	second := strings.TrimSpace(parts[1])
	if first == "" || second == "" {
		return "", "", ErrBadParts
	}
	return first, second, nil
}
