package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIdentifier(t *testing.T) {
	for _, ok := range []string{"a", "min_word_length", "$raw", "_private", "camelCase2"} {
		assert.True(t, IsIdentifier(ok), ok)
	}

	for _, bad := range []string{"", "2abc", "a-b", "a.b", "a b"} {
		assert.False(t, IsIdentifier(bad), bad)
	}
}

func TestMapping_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mapping Mapping
		wantErr error
	}{
		{"empty", Mapping{}, nil},
		{"valid", Mapping{{"user_id", "userId"}, {"created_at", "createdAt"}}, nil},
		{"not an identifier", Mapping{{"user-id", "userId"}}, ErrInvalidMapping},
		{"empty new", Mapping{{"user_id", ""}}, ErrInvalidMapping},
		{"identity", Mapping{{"userId", "userId"}}, ErrInvalidMapping},
		{"duplicate old", Mapping{{"user_id", "userId"}, {"user_id", "userID"}}, ErrDuplicateKey},
		{"chained", Mapping{{"user_id", "userId"}, {"userId", "uid"}}, ErrChainedMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapping.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapping_Inverse(t *testing.T) {
	mapping := Mapping{{"user_id", "userId"}, {"created_at", "createdAt"}}

	inverse, err := mapping.Inverse()
	require.NoError(t, err)
	assert.Equal(t, Mapping{{"userId", "user_id"}, {"createdAt", "created_at"}}, inverse)

	_, err = Mapping{{"user_id", "id"}, {"item_id", "id"}}.Inverse()
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestRename_String(t *testing.T) {
	assert.Equal(t, "user_id → userId", Rename{Old: "user_id", New: "userId"}.String())
}
