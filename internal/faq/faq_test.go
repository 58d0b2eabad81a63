package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItems_StableAndNonEmpty(t *testing.T) {
	first := Items()
	second := Items()

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second, "FAQ content must be identical across calls")

	for i, item := range first {
		assert.NotEmpty(t, item.Question, "item %d", i)
		assert.NotEmpty(t, item.Answer, "item %d", i)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	first := Items()
	first[0].Question = "mutated"

	second := Items()
	assert.NotEqual(t, "mutated", second[0].Question)
}
