package opid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	_, ok = FromContext(context.Background())
	assert.False(t, ok, "unexpected id in empty context")
}

func TestNestedOperations(t *testing.T) {
	outer, outerID := NewContext(context.Background())
	_, ok := ParentFromContext(outer)
	assert.False(t, ok)

	inner, innerID := NewContext(outer)
	assert.NotEqual(t, outerID, innerID)
	parent, ok := ParentFromContext(inner)
	require.True(t, ok)
	assert.Equal(t, outerID, parent)
}
