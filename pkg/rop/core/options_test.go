package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLoopMaxCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 10, GetLoopMaxCount(ctx, 10))

	ctx = WithLoopOptions(ctx, 3)
	assert.Equal(t, 3, GetLoopMaxCount(ctx, 10))

	ctx = WithLoopOptions(ctx, 0)
	assert.Equal(t, 0, GetLoopMaxCount(ctx, 10))
}
