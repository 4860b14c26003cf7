package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAccountEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"alice@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"under_score%@x-y.io", true},
		{"not-an-email", false},
		{"a@b.c", false},
		{"a@b", false},
		{"@example.com", false},
		{"a b@example.com", false},
		{"a@example.c0m", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsAccountEmail(tt.email))
		})
	}
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type form struct {
		Username string `validate:"required"`
		Email    string `validate:"omitempty,account_email"`
		Nick     string `validate:"omitempty,max=3"`
	}

	assert.NoError(t, Struct(form{Username: "alice"}))
	assert.NoError(t, Struct(form{Username: "alice", Email: "a@b.co", Nick: "al"}))

	err := Struct(form{Email: "nope"})
	assert.EqualError(t, err, "username is required; email must be a valid email address")

	err = Struct(form{Username: "alice", Nick: "alice"})
	assert.EqualError(t, err, "nick failed on max")
}

func TestRegisterGin(t *testing.T) {
	assert.NoError(t, RegisterGin())
}
