package trivia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func searchFixture() []Question {
	return []Question{
		{ID: 1, Question: "What is the heaviest organ in the human body?", Category: 1},
		{ID: 2, Question: "Who discovered penicillin?", Category: 1},
		{ID: 3, Question: "What is the largest lake in Africa?", Category: 3},
		{ID: 4, Question: "The Taj Mahal is located in which Indian city?", Category: 3},
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	matches, total := Search(searchFixture(), "TAJ MAHAL")

	assert.Equal(t, 1, total)
	assert.Equal(t, 4, matches[0].ID)
}

func TestSearchSoundAndComplete(t *testing.T) {
	questions := searchFixture()
	matches, _ := Search(questions, "what")

	matched := map[int]bool{}
	for _, q := range matches {
		assert.Contains(t, strings.ToLower(q.Question), "what")
		matched[q.ID] = true
	}
	for _, q := range questions {
		if !matched[q.ID] {
			assert.NotContains(t, strings.ToLower(q.Question), "what")
		}
	}
}

func TestSearchPreservesOrder(t *testing.T) {
	matches, total := Search(searchFixture(), "what")

	assert.Equal(t, 2, total)
	assert.Equal(t, []int{matches[0].ID, matches[1].ID}, []int{1, 3})
}

func TestSearchEmptyTermMatchesEverything(t *testing.T) {
	questions := searchFixture()
	matches, total := Search(questions, "")

	assert.Equal(t, len(questions), total)
	assert.Equal(t, questions, matches)
}

func TestSearchNoMatches(t *testing.T) {
	matches, total := Search(searchFixture(), "zzzz")

	assert.Zero(t, total)
	assert.Empty(t, matches)
}
