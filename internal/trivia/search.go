package trivia

import "strings"

// Search filters questions down to those whose text contains term,
// case-insensitively. The result keeps the input's ascending-id order and
// total is the match count before any pagination. An empty term matches
// every question.
func Search(questions []Question, term string) (matches []Question, total int) {
	needle := strings.ToLower(term)
	matches = make([]Question, 0, len(questions))
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, len(matches)
}
