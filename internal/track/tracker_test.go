package track

import (
	"testing"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/pkg/exception"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(id int64) *Order {
	return &Order{
		ID:        id,
		AccountID: "DU12345",
		Symbol:    adapter.NewSymbol("AVUV", "ARCA", "USD"),
		Side:      enum.OrderSideBuy,
		Quantity:  40,
	}
}

func TestTrackDuplicate(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track(newOrder(7)))
	assert.ErrorIs(t, tr.Track(newOrder(7)), exception.ErrOrderDuplicate)
}

func TestUnreportedOrderBlocksReadiness(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track(newOrder(7)))

	assert.False(t, tr.Ready())
	assert.True(t, tr.HasOpen("du12345"))

	_, err := tr.ApplyStatus(7, "Submitted", 0, 40)
	require.NoError(t, err)
	assert.True(t, tr.Ready())
	assert.True(t, tr.HasOpen("DU12345"))
}

func TestFilledRemovesFromOpenSet(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track(newOrder(7)))

	res, err := tr.ApplyStatus(7, "Filled", 40, 0)
	require.NoError(t, err)
	assert.True(t, res.Filled)
	assert.False(t, tr.HasOpen("DU12345"))

	// the order itself stays visible
	o, ok := tr.Order(7)
	require.True(t, ok)
	status, err := o.Status()
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusFilled, status)
}

func TestRepeatedFillReportSignalsOnce(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track(newOrder(7)))

	res, err := tr.ApplyStatus(7, "Filled", 40, 0)
	require.NoError(t, err)
	assert.True(t, res.Filled)

	res, err = tr.ApplyStatus(7, "Filled", 40, 0)
	require.NoError(t, err)
	assert.False(t, res.Filled)
	assert.False(t, tr.HasOpen("DU12345"))

	filled, err := res.Order.Filled()
	require.NoError(t, err)
	assert.Equal(t, int64(40), filled)
}

func TestCancelledStaysVisibleButNotOpen(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track(newOrder(7)))

	res, err := tr.ApplyStatus(7, "Cancelled", 0, 40)
	require.NoError(t, err)
	assert.False(t, res.Filled)
	assert.False(t, tr.HasOpen("DU12345"))
	assert.Empty(t, tr.OpenOrders("DU12345"))

	o, ok := tr.Order(7)
	require.True(t, ok)
	assert.False(t, o.IsOpen())
}

func TestUnknownStatusIsFatal(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track(newOrder(7)))

	_, err := tr.ApplyStatus(7, "Levitating", 0, 40)
	assert.ErrorIs(t, err, exception.ErrOrderUnknownStatus)
}

func TestUnknownOrderIsDroppable(t *testing.T) {
	tr := NewTracker()
	_, err := tr.ApplyStatus(99, "Submitted", 0, 40)
	assert.ErrorIs(t, err, exception.ErrUnknownOrder)
}

func TestUninitializedOrderAccess(t *testing.T) {
	o := newOrder(7)
	_, err := o.Status()
	assert.ErrorIs(t, err, exception.ErrUninitialized)
	_, err = o.Filled()
	assert.ErrorIs(t, err, exception.ErrUninitialized)
	_, err = o.Remaining()
	assert.ErrorIs(t, err, exception.ErrUninitialized)
}
