package gateway_test

import (
	"testing"
	"time"

	"main/internal/adapter"
	"main/internal/bus"
	"main/internal/gateway"
	"main/internal/gateway/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshIssuesExactlyOneCancelResubscribePair(t *testing.T) {
	queue := bus.NewQueue(64)
	session := sim.New(queue, "DU12345")
	session.SetNetLiquidation(100000)

	r := gateway.NewAccountRefresher(session, nil)
	require.NoError(t, r.Start())
	assert.Equal(t, 1, session.SummarySubs)
	assert.Equal(t, 1, session.PositionSubs)

	require.NoError(t, r.RefreshAccountData())
	assert.Equal(t, 1, session.SummaryCancels)
	assert.Equal(t, 2, session.SummarySubs)
	assert.Equal(t, 1, session.PositionCancels)
	assert.Equal(t, 2, session.PositionSubs)
}

func TestRefreshBeforeStart(t *testing.T) {
	queue := bus.NewQueue(8)
	r := gateway.NewAccountRefresher(sim.New(queue, "DU12345"), nil)
	assert.Error(t, r.RefreshAccountData())
}

func TestSimFeedsSnapshotOnSubscribe(t *testing.T) {
	queue := bus.NewQueue(64)
	session := sim.New(queue, "DU12345")
	session.SetNetLiquidation(100000)
	avuv := adapter.NewSymbol("AVUV", "ARCA", "USD")
	session.SetPosition(avuv, 10, 100)

	require.NoError(t, gateway.NewAccountRefresher(session, nil).Start())

	reqID, err := session.SubscribeMarketData(avuv)
	require.NoError(t, err)
	got, ok := session.TickerFor(reqID)
	require.True(t, ok)
	assert.Equal(t, avuv.Key(), got.Key())

	var kinds []string
	for {
		m, ok := queue.Consume(10 * time.Millisecond)
		if !ok {
			break
		}
		switch m.(type) {
		case bus.AccountSummary:
			kinds = append(kinds, "summary")
		case bus.AccountSummaryEnd:
			kinds = append(kinds, "summaryEnd")
		case bus.Position:
			kinds = append(kinds, "position")
		case bus.PositionEnd:
			kinds = append(kinds, "positionEnd")
		case bus.TickPrice:
			kinds = append(kinds, "tick")
		}
	}
	assert.Equal(t, []string{"summary", "summary", "summary", "summaryEnd", "position", "positionEnd", "tick"}, kinds)
}

func TestOrderIDsMonotonic(t *testing.T) {
	var ids gateway.OrderIDs
	_, err := ids.Next()
	assert.Error(t, err)

	ids.Seed(41)
	ids.Seed(7) // never moves backwards

	a, err := ids.Next()
	require.NoError(t, err)
	b, err := ids.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(41), a)
	assert.Equal(t, int64(42), b)
}

func TestRequestBookBindings(t *testing.T) {
	book := gateway.NewRequestBook()
	avuv := adapter.NewSymbol("AVUV", "ARCA", "USD")

	plain := book.Allocate()
	bound := book.AllocateMarketData(avuv)
	assert.Greater(t, bound, plain)

	_, ok := book.TickerFor(plain)
	assert.False(t, ok)

	got, ok := book.TickerFor(bound)
	require.True(t, ok)
	assert.Equal(t, avuv, got)

	book.Release(bound)
	_, ok = book.TickerFor(bound)
	assert.False(t, ok)
}
