package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestID(ctx))
	assert.Equal(t, ctx, WithRequestID(ctx, ""))

	assert.Equal(t, "abc", RequestID(WithRequestID(ctx, "abc")))
}

func TestContextArgs(t *testing.T) {
	args := []any{"a", 1}

	assert.Equal(t, args, contextArgs(context.Background(), args))

	got := contextArgs(WithRequestID(context.Background(), "r"), args)
	assert.Equal(t, []any{"a", 1, RequestIDAttr, "r"}, got)
	assert.Len(t, args, 2)
}
