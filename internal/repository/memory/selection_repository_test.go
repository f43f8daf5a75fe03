package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSelectionRepository()

	// Absent keys read as empty string, never as an error.
	val, err := repo.Get(ctx, "selectedLocation")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repo.Set(ctx, "selectedLocation", "Pune, India"))
	val, err = repo.Get(ctx, "selectedLocation")
	require.NoError(t, err)
	assert.Equal(t, "Pune, India", val)

	require.NoError(t, repo.Set(ctx, "selectedLocation", "Nashik, India"))
	val, _ = repo.Get(ctx, "selectedLocation")
	assert.Equal(t, "Nashik, India", val)

	require.NoError(t, repo.Remove(ctx, "selectedLocation"))
	val, err = repo.Get(ctx, "selectedLocation")
	require.NoError(t, err)
	assert.Empty(t, val)

	// Removing a missing key is a no-op.
	require.NoError(t, repo.Remove(ctx, "never-set"))
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(nil)

	p, err := repo.FindByName(ctx, "anything")
	require.NoError(t, err)
	assert.Nil(t, p)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
