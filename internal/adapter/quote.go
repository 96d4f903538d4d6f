package adapter

// Quote is a price observation that may not have arrived yet. The zero
// value means "never observed".
type Quote struct {
	Value float64
	Valid bool
}

func QuoteOf(v float64) Quote {
	return Quote{Value: v, Valid: true}
}
