// File: services/sms/state_test.go
package sms

import (
	"context"
	"testing"
	"time"

	"glospa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStoreRoundTrip(t *testing.T) {
	store := NewMemoryStateStore(30 * time.Minute)
	ctx := context.Background()

	got, err := store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	assert.Nil(t, got)

	st := models.NewConversationState("+19185551234")
	st.Step = models.StepDateSelection
	st.SelectedService = "Signature Head Spa"
	require.NoError(t, store.Set(ctx, "+19185551234", st))

	got, err = store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StepDateSelection, got.Step)
	assert.Equal(t, "Signature Head Spa", got.SelectedService)

	require.NoError(t, store.Clear(ctx, "+19185551234"))
	got, err = store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStateStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStateStore(30 * time.Minute)
	ctx := context.Background()

	st := models.NewConversationState("+19185551234")
	require.NoError(t, store.Set(ctx, "+19185551234", st))

	first, err := store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	first.Step = models.StepTimeSelection

	second, err := store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	assert.Equal(t, models.StepIdle, second.Step)
}

func TestMemoryStateStoreExpiry(t *testing.T) {
	store := NewMemoryStateStore(30 * time.Minute)
	ctx := context.Background()

	base := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	st := models.NewConversationState("+19185551234")
	st.Step = models.StepTimeSelection
	require.NoError(t, store.Set(ctx, "+19185551234", st))

	// Just inside the idle window the state survives.
	store.now = func() time.Time { return base.Add(29 * time.Minute) }
	got, err := store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Reading refreshed nothing; past the window it is gone.
	store.now = func() time.Time { return base.Add(60 * time.Minute) }
	got, err = store.Get(ctx, "+19185551234")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.ActiveCount(ctx))
}

func TestMemoryStateStoreActiveCount(t *testing.T) {
	store := NewMemoryStateStore(30 * time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", models.NewConversationState("a")))
	require.NoError(t, store.Set(ctx, "b", models.NewConversationState("b")))
	assert.Equal(t, 2, store.ActiveCount(ctx))
}
