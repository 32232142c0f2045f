package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "abc123")
	assert.Equal(t, "abc123", GetRunID(ctx))
	assert.Empty(t, GetRunID(context.Background()))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("run_id"))
	assert.True(t, keepInDevelopment("records_accepted"))
	assert.True(t, keepInDevelopment("user_id"))
	assert.False(t, keepInDevelopment("component"))
}
