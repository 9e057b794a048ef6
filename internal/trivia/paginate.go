package trivia

import "strconv"

// Paginate returns the 1-based page of items for the given page size,
// preserving input order. Pages below 1 are clamped to 1; pages past the
// end yield an empty slice, never an error.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage interprets a raw ?page= query value. An absent or unparseable
// value falls back to page 1; ok reports whether the raw value was
// well-formed so callers can tell bad input apart from no input.
func ParsePage(raw string) (page int, ok bool) {
	if raw == "" {
		return 1, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1, false
	}
	if n < 1 {
		return 1, true
	}
	return n, true
}
