package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	assert.False(t, ok, "anonymous context has no identity")

	_, ok = FromContext(WithIdentity(context.Background(), Identity{}))
	assert.False(t, ok, "zero user id is not an identity")

	want := Identity{UserID: 4, Username: "alice", Email: "alice@example.com"}
	got, ok := FromContext(WithIdentity(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
