package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile_KeepsOriginal(t *testing.T) {
	content := []byte("a.min_word_length")
	file := NewFile("a.ts", content)

	assert.False(t, file.Changed())

	content[0] = 'b'
	assert.Equal(t, "a.min_word_length", string(file.Original))
	assert.True(t, file.Changed())

	file.Content = []byte("a.min_word_length")
	assert.False(t, file.Changed())
}
