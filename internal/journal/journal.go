package journal

import (
	"time"

	"main/internal/track"
)

// Journal records order activity for later audit. Implementations must
// never fail the decision loop; persistence problems are logged and
// swallowed.
type Journal interface {
	OrderSubmitted(o *track.Order)
	OrderFilled(o *track.Order)
}

// OrderRecord is one submitted order.
type OrderRecord struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     int64  `gorm:"index"`
	AccountID   string `gorm:"index;size:32"`
	Ticker      string `gorm:"size:16"`
	Side        string `gorm:"size:8"`
	Quantity    int64
	SubmittedAt time.Time
}

// FillRecord is one completed fill.
type FillRecord struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   int64  `gorm:"index"`
	AccountID string `gorm:"index;size:32"`
	Ticker    string `gorm:"size:16"`
	Side      string `gorm:"size:8"`
	Quantity  int64
	FilledAt  time.Time
}

// Noop discards everything. Used when no database is configured.
type Noop struct{}

func (Noop) OrderSubmitted(*track.Order) {}
func (Noop) OrderFilled(*track.Order)    {}
