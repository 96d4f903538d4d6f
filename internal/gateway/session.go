package gateway

import (
	"main/internal/adapter"
	"main/internal/adapter/enum"
)

// Session is the broker gateway surface the decision loop consumes. The
// transport behind it (socket handling, wire encoding, reconnects) is the
// gateway's own concern; implementations publish parsed events into the
// message bus and are the bus's only producer.
type Session interface {
	// SubscribeAccountSummary opens a summary subscription for all
	// accounts and returns its request id.
	SubscribeAccountSummary(tags ...enum.SummaryTag) (int64, error)
	CancelAccountSummary(reqID int64) error

	SubscribePositions() error
	CancelPositions() error

	// SubscribeMarketData opens a delayed market data stream for one
	// instrument and returns its request id.
	SubscribeMarketData(symbol adapter.Symbol) (int64, error)
	CancelMarketData(reqID int64) error

	// PlaceOrder submits a market order and returns the broker order id.
	// Order ids are strictly increasing for a client identity, surviving
	// reconnects.
	PlaceOrder(spec adapter.OrderSpec) (int64, error)

	// TickerFor resolves a market-data request id back to its symbol.
	TickerFor(reqID int64) (adapter.Symbol, bool)

	Disconnect() error
}
