package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_balance/internal/shared/apperr"
)

func TestNewNote(t *testing.T) {
	n, err := NewNote(2, Fields{Title: "Ideas"})
	require.NoError(t, err)
	assert.Equal(t, &Note{UserID: 2, Title: "Ideas", Category: "general", Color: "#ff99c8"}, n)

	n, err = NewNote(2, Fields{Title: "Ideas", Content: "a\nb", Category: "ideas", Color: "#a8e6cf"})
	require.NoError(t, err)
	assert.Equal(t, "a\nb", n.Content)
	assert.Equal(t, "#a8e6cf", n.Color)

	_, err = NewNote(2, Fields{Title: "   ", Content: "orphan content"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
