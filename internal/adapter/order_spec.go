package adapter

import "main/internal/adapter/enum"

// OrderSpec is a flat order request: which account trades what, which way,
// how many shares and how aggressively. All orders are market orders; the
// urgency selects the broker-side execution algo priority.
type OrderSpec struct {
	AccountID string
	Symbol    Symbol
	Side      enum.OrderSide
	Urgency   enum.OrderUrgency
	Quantity  int64
}
