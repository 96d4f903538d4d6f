package market

import (
	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
)

// Ticker holds the last observed quotes for one instrument. Price fields
// stay absent until the first observation arrives; they are updated in
// place and never removed.
type Ticker struct {
	symbol adapter.Symbol

	last adapter.Quote
	open adapter.Quote
	bid  adapter.Quote
	ask  adapter.Quote
}

func newTicker(symbol adapter.Symbol) *Ticker {
	return &Ticker{symbol: symbol}
}

func (t *Ticker) Symbol() adapter.Symbol {
	return t.symbol
}

// SetPrice records a price observation for one field. Zero prices are
// stored as-is; a zero last trade price is how the broker reports a stale
// quote, and EffectivePrice falls back accordingly.
func (t *Ticker) SetPrice(field enum.PriceField, price float64) {
	switch field {
	case enum.PriceFieldLast:
		t.last = adapter.QuoteOf(price)
	case enum.PriceFieldOpen:
		t.open = adapter.QuoteOf(price)
	case enum.PriceFieldBid:
		t.bid = adapter.QuoteOf(price)
	case enum.PriceFieldAsk:
		t.ask = adapter.QuoteOf(price)
	}
}

// Last returns the last trade price, or the uninitialized fault if none
// has been observed.
func (t *Ticker) Last() (float64, error) {
	return t.quote(t.last, "last")
}

// Open returns the day's opening price.
func (t *Ticker) Open() (float64, error) {
	return t.quote(t.open, "open")
}

// Bid returns the most recent bid.
func (t *Ticker) Bid() (float64, error) {
	return t.quote(t.bid, "bid")
}

// Ask returns the most recent best ask.
func (t *Ticker) Ask() (float64, error) {
	return t.quote(t.ask, "ask")
}

func (t *Ticker) quote(q adapter.Quote, field string) (float64, error) {
	if !q.Valid {
		return 0, errors.Wrap(exception.ErrUninitialized, t.symbol.Ticker+" "+field)
	}
	return q.Value, nil
}

// EffectivePrice is the last trade price when observed and nonzero, else
// the open price. ok is false while neither has been observed.
func (t *Ticker) EffectivePrice() (float64, bool) {
	if t.last.Valid && t.last.Value != 0 {
		return t.last.Value, true
	}
	if t.open.Valid {
		return t.open.Value, true
	}
	return 0, false
}

// Priced reports whether the ticker has a positive effective price.
func (t *Ticker) Priced() bool {
	price, ok := t.EffectivePrice()
	return ok && price > 0
}
