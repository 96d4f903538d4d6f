package enum

// PriceField last, open, bid, ask
type PriceField uint8

const (
	_price_field_beg PriceField = iota
	PriceFieldLast
	PriceFieldOpen
	PriceFieldBid
	PriceFieldAsk
	_price_field_end
)

func (f PriceField) IsAvailable() bool {
	return f > _price_field_beg && f < _price_field_end
}

func (f PriceField) String() string {
	switch f {
	case PriceFieldLast:
		return "last"
	case PriceFieldOpen:
		return "open"
	case PriceFieldBid:
		return "bid"
	case PriceFieldAsk:
		return "ask"
	default:
		return "UNKNOWN"
	}
}
