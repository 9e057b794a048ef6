package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCategoryIndexRoundTrip(t *testing.T) {
	categories := []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 4, Type: "History"},
	}

	byID, labels := BuildCategoryIndex(categories)

	assert.Len(t, byID, len(categories))
	assert.Len(t, labels, len(categories))
	for i, c := range categories {
		assert.Equal(t, byID[c.ID], labels[i])
	}
}

func TestBuildCategoryIndexEmpty(t *testing.T) {
	byID, labels := BuildCategoryIndex(nil)

	assert.Empty(t, byID)
	assert.Empty(t, labels)
}
