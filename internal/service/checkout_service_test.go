package service

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newTicketCode(t *testing.T) {
	code, err := newTicketCode()
	require.NoError(t, err)

	assert.Len(t, code, 32, "16 random bytes hex encoded")
	_, err = hex.DecodeString(code)
	assert.NoError(t, err)
}

func Test_newTicketCode_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := newTicketCode()
		require.NoError(t, err)
		require.False(t, seen[code], "ticket codes must not repeat")
		seen[code] = true
	}
}

func TestBeginCheckout_FreeEvent(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			e := sampleEvent()
			e.ID = id
			e.Price = 0
			return e, nil
		},
	}

	svc := NewCheckoutService(nil, nil, events, nil, nil, nil, "http://localhost:3000")

	_, err := svc.BeginCheckout(context.Background(), "evt-1", "user-1")

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "free")
}
