package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemory_Miss(t *testing.T) {
	m := NewMemory(0)

	_, err := m.Get(context.Background(), "absent")
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	assert.True(t, eris.Is(err, ErrNotFound))
	assert.Zero(t, m.Len())
}

func TestMemory_StoredValueIsIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	original := []byte("payload")
	require.NoError(t, m.Set(ctx, "k", original, 0))
	original[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}
