package bus

import (
	"main/internal/adapter"
	"main/internal/adapter/enum"
)

// Message is the closed set of update events flowing from the gateway
// session into the decision loop. Variants carry ids only; correlation to
// domain entities happens when the reconciler applies them.
type Message interface {
	isMessage()
}

// AccountSummary carries one summary metric value for one account.
type AccountSummary struct {
	AccountID string
	Tag       enum.SummaryTag
	Value     float64
}

// AccountSummaryEnd marks the end of an account summary refresh batch.
type AccountSummaryEnd struct{}

// Position carries a signed position size for one account and instrument.
type Position struct {
	AccountID string
	Symbol    adapter.Symbol
	Quantity  float64
}

// PositionEnd marks the end of a positions refresh batch.
type PositionEnd struct{}

// TickPrice carries one price observation, correlated to an instrument by
// the market-data request id it was subscribed under.
type TickPrice struct {
	ReqID int64
	Field enum.PriceField
	Price float64
}

// OrderStatus carries a broker status report for one order. Status stays a
// raw string here; the tracker owns the mapping and its failure mode.
type OrderStatus struct {
	OrderID   int64
	Status    string
	Filled    int64
	Remaining int64
}

// OrderOpened announces an order the broker considers working, including
// orders resumed after a reconnect.
type OrderOpened struct {
	OrderID   int64
	AccountID string
	Symbol    adapter.Symbol
	Side      enum.OrderSide
	Quantity  int64
}

// SessionError is a session-level error report. It is surfaced to the
// readiness wait's caller and never applied to domain state.
type SessionError struct {
	Code   int
	Reason string
}

func (AccountSummary) isMessage()    {}
func (AccountSummaryEnd) isMessage() {}
func (Position) isMessage()          {}
func (PositionEnd) isMessage()       {}
func (TickPrice) isMessage()         {}
func (OrderStatus) isMessage()       {}
func (OrderOpened) isMessage()       {}
func (SessionError) isMessage()      {}
