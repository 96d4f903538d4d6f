package adapter

import "strings"

// Symbol identifies a tradable instrument by ticker, primary venue and the
// currency it is denominated in.
type Symbol struct {
	Ticker   string
	Venue    string
	Currency string
}

func NewSymbol(ticker, venue, currency string) Symbol {
	return Symbol{Ticker: ticker, Venue: venue, Currency: currency}
}

// Key returns the case-insensitive registry key for the symbol.
func (s Symbol) Key() string {
	return strings.ToLower(s.Ticker)
}

func (s Symbol) String() string {
	return s.Ticker
}
