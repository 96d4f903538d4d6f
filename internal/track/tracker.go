package track

import (
	"strings"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/pkg/exception"
)

// Order holds the decision loop's view of one broker order. Status, filled
// and remaining stay absent until the first broker report arrives.
type Order struct {
	ID        int64
	AccountID string
	Symbol    adapter.Symbol
	Side      enum.OrderSide
	Quantity  int64

	status     enum.OrderStatus
	reported   bool
	filledSeen bool
	filled     int64
	remaining  int64
}

// Status returns the last reported status, or the uninitialized fault
// before the first report.
func (o *Order) Status() (enum.OrderStatus, error) {
	if !o.reported {
		return 0, exception.ErrUninitialized
	}
	return o.status, nil
}

// Filled returns the filled quantity from the last report.
func (o *Order) Filled() (int64, error) {
	if !o.reported {
		return 0, exception.ErrUninitialized
	}
	return o.filled, nil
}

// Remaining returns the unfilled quantity from the last report.
func (o *Order) Remaining() (int64, error) {
	if !o.reported {
		return 0, exception.ErrUninitialized
	}
	return o.remaining, nil
}

// Reported tells whether at least one status report has arrived.
func (o *Order) Reported() bool {
	return o.reported
}

// IsOpen reports whether the order still blocks new decisions. An order
// with no status report yet counts as open.
func (o *Order) IsOpen() bool {
	return !o.reported || o.status.IsOpen()
}

// Transition is the outcome of applying one status report.
type Transition struct {
	Order  *Order
	Filled bool
}

// Tracker drives order lifecycle state from broker status reports. The
// broker is the source of truth: any reported status is recorded directly,
// legality of the transition is not validated.
type Tracker struct {
	orders map[int64]*Order
	open   map[string]map[int64]*Order
}

func NewTracker() *Tracker {
	return &Tracker{
		orders: make(map[int64]*Order),
		open:   make(map[string]map[int64]*Order),
	}
}

func accountKey(id string) string {
	return strings.ToLower(id)
}

// Track registers an order at submission time (or from an open-order
// announcement after reconnect). Tracking the same id twice errors.
func (t *Tracker) Track(o *Order) error {
	if _, ok := t.orders[o.ID]; ok {
		return exception.ErrOrderDuplicate
	}
	t.orders[o.ID] = o
	key := accountKey(o.AccountID)
	if t.open[key] == nil {
		t.open[key] = make(map[int64]*Order)
	}
	t.open[key][o.ID] = o
	return nil
}

// Order returns a tracked order.
func (t *Tracker) Order(id int64) (*Order, bool) {
	o, ok := t.orders[id]
	return o, ok
}

// ApplyStatus records a broker status report. An unknown order id returns
// ErrUnknownOrder (dropped upstream); an unknown status string returns
// ErrOrderUnknownStatus (fatal upstream). Reaching Filled removes the
// order from its account's open set; the broker routinely repeats fill
// reports, so only the first one signals Filled on the transition.
func (t *Tracker) ApplyStatus(orderID int64, status string, filled, remaining int64) (Transition, error) {
	o, ok := t.orders[orderID]
	if !ok {
		return Transition{}, exception.ErrUnknownOrder
	}

	parsed, err := enum.ParseOrderStatus(status)
	if err != nil {
		return Transition{}, err
	}

	o.status = parsed
	o.filled = filled
	o.remaining = remaining
	o.reported = true

	if parsed == enum.OrderStatusFilled && !o.filledSeen {
		o.filledSeen = true
		delete(t.open[accountKey(o.AccountID)], o.ID)
		return Transition{Order: o, Filled: true}, nil
	}
	return Transition{Order: o}, nil
}

// OpenOrders returns the orders still counting as open for an account.
func (t *Tracker) OpenOrders(accountID string) []*Order {
	var out []*Order
	for _, o := range t.open[accountKey(accountID)] {
		if o.IsOpen() {
			out = append(out, o)
		}
	}
	return out
}

// HasOpen reports whether an account has any open order.
func (t *Tracker) HasOpen(accountID string) bool {
	for _, o := range t.open[accountKey(accountID)] {
		if o.IsOpen() {
			return true
		}
	}
	return false
}

// Ready reports whether every order in every open set has received at
// least one status report.
func (t *Tracker) Ready() bool {
	for _, orders := range t.open {
		for _, o := range orders {
			if !o.Reported() {
				return false
			}
		}
	}
	return true
}
