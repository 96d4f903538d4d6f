package sim

import (
	"math"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/internal/bus"
	"main/internal/gateway"

	"github.com/yanun0323/errors"
)

var _ gateway.Session = (*Session)(nil)

// Session is an in-process gateway for paper runs and tests. It keeps a
// scripted account snapshot and replays it through the bus whenever the
// decision loop subscribes, the same way the real gateway re-reports
// after a cancel/resubscribe pair.
type Session struct {
	queue *bus.Queue
	book  *gateway.RequestBook
	ids   gateway.OrderIDs

	accountID string
	netLiq    float64
	summaries map[enum.SummaryTag]float64
	positions []position
	fillMode  bool

	// call counters, exposed for assertions
	SummarySubs     int
	SummaryCancels  int
	PositionSubs    int
	PositionCancels int
	MarketDataSubs  int
	OrdersPlaced    int
}

type position struct {
	symbol   adapter.Symbol
	quantity float64
	price    float64
	reqID    int64
}

// New creates a simulated session for one account. Order ids are seeded
// at 1 the way a fresh client identity would be.
func New(queue *bus.Queue, accountID string) *Session {
	s := &Session{
		queue:     queue,
		book:      gateway.NewRequestBook(),
		accountID: accountID,
		summaries: make(map[enum.SummaryTag]float64),
	}
	s.ids.Seed(1)
	return s
}

// EnableFills makes placed orders fill immediately and mutate the
// scripted snapshot.
func (s *Session) EnableFills() {
	s.fillMode = true
}

// SetNetLiquidation scripts the account's net liquidation value.
func (s *Session) SetNetLiquidation(v float64) {
	s.netLiq = v
	s.recompute()
}

// SetPosition scripts one holding with its current price.
func (s *Session) SetPosition(symbol adapter.Symbol, quantity, price float64) {
	for i := range s.positions {
		if s.positions[i].symbol.Key() == symbol.Key() {
			s.positions[i].quantity = quantity
			s.positions[i].price = price
			s.recompute()
			return
		}
	}
	s.positions = append(s.positions, position{symbol: symbol, quantity: quantity, price: price})
	s.recompute()
}

// recompute derives gross and maintenance margin from the scripted book.
func (s *Session) recompute() {
	gross := 0.0
	for _, p := range s.positions {
		gross += math.Abs(p.quantity * p.price)
	}
	s.summaries[enum.TagNetLiquidation] = s.netLiq
	s.summaries[enum.TagGrossPositionValue] = gross
	s.summaries[enum.TagMaintMarginReq] = gross * 0.25
}

func (s *Session) SubscribeAccountSummary(tags ...enum.SummaryTag) (int64, error) {
	if len(tags) == 0 {
		tags = gateway.RequiredSummaryTags
	}
	s.SummarySubs++
	reqID := s.book.Allocate()
	for _, tag := range tags {
		if v, ok := s.summaries[tag]; ok {
			if err := s.queue.Publish(bus.AccountSummary{AccountID: s.accountID, Tag: tag, Value: v}); err != nil {
				return 0, err
			}
		}
	}
	return reqID, s.queue.Publish(bus.AccountSummaryEnd{})
}

func (s *Session) CancelAccountSummary(reqID int64) error {
	s.SummaryCancels++
	return nil
}

func (s *Session) SubscribePositions() error {
	s.PositionSubs++
	for _, p := range s.positions {
		if err := s.queue.Publish(bus.Position{AccountID: s.accountID, Symbol: p.symbol, Quantity: p.quantity}); err != nil {
			return err
		}
	}
	return s.queue.Publish(bus.PositionEnd{})
}

func (s *Session) CancelPositions() error {
	s.PositionCancels++
	return nil
}

func (s *Session) SubscribeMarketData(symbol adapter.Symbol) (int64, error) {
	s.MarketDataSubs++
	reqID := s.book.AllocateMarketData(symbol)
	for i := range s.positions {
		if s.positions[i].symbol.Key() == symbol.Key() {
			s.positions[i].reqID = reqID
			return reqID, s.queue.Publish(bus.TickPrice{ReqID: reqID, Field: enum.PriceFieldLast, Price: s.positions[i].price})
		}
	}
	// unknown to the script yet, price arrives once SetPosition runs
	return reqID, nil
}

func (s *Session) CancelMarketData(reqID int64) error {
	s.book.Release(reqID)
	return nil
}

func (s *Session) PlaceOrder(spec adapter.OrderSpec) (int64, error) {
	orderID, err := s.ids.Next()
	if err != nil {
		return 0, errors.Wrap(err, "place order")
	}
	s.OrdersPlaced++

	if err := s.queue.Publish(bus.OrderStatus{
		OrderID:   orderID,
		Status:    enum.OrderStatusSubmitted.String(),
		Filled:    0,
		Remaining: spec.Quantity,
	}); err != nil {
		return 0, err
	}

	if s.fillMode {
		s.applyFill(spec)
		if err := s.queue.Publish(bus.OrderStatus{
			OrderID:   orderID,
			Status:    enum.OrderStatusFilled.String(),
			Filled:    spec.Quantity,
			Remaining: 0,
		}); err != nil {
			return 0, err
		}
	}
	return orderID, nil
}

func (s *Session) applyFill(spec adapter.OrderSpec) {
	delta := float64(spec.Quantity)
	if spec.Side == enum.OrderSideSell {
		delta = -delta
	}
	for i := range s.positions {
		if s.positions[i].symbol.Key() == spec.Symbol.Key() {
			s.positions[i].quantity += delta
			s.recompute()
			return
		}
	}
	s.positions = append(s.positions, position{symbol: spec.Symbol, quantity: delta})
	s.recompute()
}

func (s *Session) TickerFor(reqID int64) (adapter.Symbol, bool) {
	return s.book.TickerFor(reqID)
}

func (s *Session) Disconnect() error {
	return nil
}
