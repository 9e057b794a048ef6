package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorFixture() []Question {
	return []Question{
		{ID: 5, Question: "q5", Category: 4},
		{ID: 9, Question: "q9", Category: 4},
		{ID: 12, Question: "q12", Category: 4},
		{ID: 23, Question: "q23", Category: 4},
		{ID: 30, Question: "q30", Category: 1},
	}
}

func firstPicker() Picker { return PickerFunc(func(n int) int { return 0 }) }

func TestNextQuestionRespectsScopeAndHistory(t *testing.T) {
	scope := 4
	next := NextQuestion(selectorFixture(), &scope, []int{5, 9}, firstPicker())

	require.NotNil(t, next)
	assert.Equal(t, 4, next.Category)
	assert.NotContains(t, []int{5, 9}, next.ID)
}

func TestNextQuestionUnscopedDrawsFromAllCategories(t *testing.T) {
	last := PickerFunc(func(n int) int { return n - 1 })
	next := NextQuestion(selectorFixture(), nil, nil, last)

	require.NotNil(t, next)
	assert.Equal(t, 30, next.ID)
}

func TestNextQuestionDeterministicWithInjectedSource(t *testing.T) {
	picks := []int{2, 0, 1}
	i := 0
	scripted := PickerFunc(func(n int) int {
		p := picks[i] % n
		i++
		return p
	})

	scope := 4
	next := NextQuestion(selectorFixture(), &scope, nil, scripted)
	require.NotNil(t, next)
	assert.Equal(t, 12, next.ID, "third eligible question for pick index 2")
}

func TestNextQuestionNeverRepeatsUntilExhausted(t *testing.T) {
	questions := selectorFixture()
	scope := 4

	var previous []int
	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		next := NextQuestion(questions, &scope, previous, firstPicker())
		require.NotNil(t, next, "draw %d should still have eligible questions", i)
		assert.False(t, seen[next.ID], "id %d served twice", next.ID)
		seen[next.ID] = true
		previous = append(previous, next.ID)
	}

	assert.Nil(t, NextQuestion(questions, &scope, previous, firstPicker()), "scope exhausted")
}

func TestNextQuestionExhaustedIsNil(t *testing.T) {
	assert.Nil(t, NextQuestion(nil, nil, nil, firstPicker()))

	scope := 7
	assert.Nil(t, NextQuestion(selectorFixture(), &scope, nil, firstPicker()), "unknown category has no eligible questions")
}

func TestNextQuestionIgnoresVanishedPreviousIDs(t *testing.T) {
	// ids in the history that no longer exist must not affect eligibility
	next := NextQuestion(selectorFixture(), nil, []int{999, 1000}, firstPicker())

	require.NotNil(t, next)
	assert.Equal(t, 5, next.ID)
}

func TestUniformPickerStaysInRange(t *testing.T) {
	p := UniformPicker()
	for i := 0; i < 100; i++ {
		got := p.Pick(3)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 3)
	}
}
