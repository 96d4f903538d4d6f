package market

import "main/internal/adapter"

// Registry is the instrument lookup, keyed case-insensitively by ticker.
// It is owned by the decision thread; no locking.
type Registry struct {
	byKey map[string]*Ticker
	order []*Ticker
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Ticker)}
}

// Register returns the ticker for a symbol, creating it on first
// reference.
func (r *Registry) Register(symbol adapter.Symbol) *Ticker {
	if t, ok := r.byKey[symbol.Key()]; ok {
		return t
	}
	t := newTicker(symbol)
	r.byKey[symbol.Key()] = t
	r.order = append(r.order, t)
	return t
}

// Lookup resolves a ticker by its symbol string, case-insensitively.
func (r *Registry) Lookup(ticker string) (*Ticker, bool) {
	t, ok := r.byKey[adapter.Symbol{Ticker: ticker}.Key()]
	return t, ok
}

// Tickers returns all registered tickers in registration order.
func (r *Registry) Tickers() []*Ticker {
	return r.order
}

// PricesReady reports whether every registered ticker has a positive
// effective price.
func (r *Registry) PricesReady() bool {
	for _, t := range r.order {
		if !t.Priced() {
			return false
		}
	}
	return true
}
