package trivia

import "math/rand/v2"

// Picker chooses an index in [0, n). It exists so the quiz draw can be
// replaced with a deterministic source under test.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

// UniformPicker draws uniformly from the process-wide random source.
func UniformPicker() Picker { return PickerFunc(rand.IntN) }

// NextQuestion picks one question uniformly at random among those matching
// the category scope (nil scope means any category) and not listed in
// previous. It returns nil when no question is eligible, which callers
// treat as "quiz exhausted" rather than an error. previous ids that no
// longer exist simply never match; the selector never mutates its inputs.
func NextQuestion(questions []Question, scope *int, previous []int, pick Picker) *Question {
	served := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		served[id] = struct{}{}
	}

	eligible := make([]Question, 0, len(questions))
	for _, q := range questions {
		if scope != nil && q.Category != *scope {
			continue
		}
		if _, seen := served[q.ID]; seen {
			continue
		}
		eligible = append(eligible, q)
	}

	if len(eligible) == 0 {
		return nil
	}
	q := eligible[pick.Pick(len(eligible))]
	return &q
}
