package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/pkg/exception"
)

func TestParseOrderStatusRoundTrip(t *testing.T) {
	for status, name := range orderStatusNames {
		parsed, err := ParseOrderStatus(name)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestParseOrderStatusUnknownIsFatal(t *testing.T) {
	_, err := ParseOrderStatus("Shipped")
	require.ErrorIs(t, err, exception.ErrOrderUnknownStatus)
}

func TestOrderStatusOpenSet(t *testing.T) {
	open := []OrderStatus{
		OrderStatusPendingSubmit,
		OrderStatusPendingCancel,
		OrderStatusPreSubmitted,
		OrderStatusSubmitted,
	}
	terminal := []OrderStatus{
		OrderStatusApiCancelled,
		OrderStatusCancelled,
		OrderStatusFilled,
		OrderStatusInactive,
	}

	for _, s := range open {
		assert.True(t, s.IsOpen(), s.String())
	}
	for _, s := range terminal {
		assert.False(t, s.IsOpen(), s.String())
	}
}

func TestParseOrderSide(t *testing.T) {
	side, err := ParseOrderSide("BUY")
	require.NoError(t, err)
	assert.Equal(t, OrderSideBuy, side)

	side, err = ParseOrderSide("SELL")
	require.NoError(t, err)
	assert.Equal(t, OrderSideSell, side)

	_, err = ParseOrderSide("HOLD")
	require.ErrorIs(t, err, exception.ErrInvalidArgument)
}

func TestParseOrderUrgency(t *testing.T) {
	for _, name := range []string{"Patient", "Normal", "Urgent"} {
		urgency, err := ParseOrderUrgency(name)
		require.NoError(t, err)
		assert.Equal(t, name, urgency.String())
	}

	_, err := ParseOrderUrgency("patient")
	require.Error(t, err)
}
