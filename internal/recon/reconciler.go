package recon

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"main/internal/adapter"
	"main/internal/bus"
	"main/internal/ledger"
	"main/internal/market"
	"main/internal/track"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// DefaultPollTimeout bounds each bus wait. A timeout is a liveness check,
// not an error.
const DefaultPollTimeout = 20 * time.Second

// Refresher reissues the account-summary and positions subscriptions after
// a fill made the account snapshot stale. It runs on the decision thread;
// cancel and resubscribe are not interleaved with other decision work.
type Refresher interface {
	RefreshAccountData() error
}

// MarketData is the slice of the session the reconciler drives itself:
// resolving request ids on inbound ticks, and opening a stream for any
// instrument it discovers outside the portfolio. Without the latter a
// held off-portfolio position would register an unpriced ticker that no
// startup subscription covers, and the snapshot could never converge.
type MarketData interface {
	TickerFor(reqID int64) (adapter.Symbol, bool)
	SubscribeMarketData(symbol adapter.Symbol) (int64, error)
}

// FillListener observes order fills, e.g. for journaling. Optional.
type FillListener interface {
	OrderFilled(o *track.Order)
}

// SessionFault is a session-level error surfaced out of the readiness
// wait. It is never applied to domain state; the caller decides whether
// to retry.
type SessionFault struct {
	Code   int
	Reason string
}

func (e *SessionFault) Error() string {
	return fmt.Sprintf("session error %d: %s", e.Code, e.Reason)
}

// Reconciler drains the bus and applies each event to the ticker registry,
// account ledger and order tracker, until the snapshot is fresh enough to
// act on. It is the sole mutator of all three.
type Reconciler struct {
	queue   *bus.Queue
	market  *market.Registry
	ledger  *ledger.Ledger
	tracker *track.Tracker
	data    MarketData
	refresh Refresher
	fills   FillListener

	poll time.Duration

	summaryReady   bool
	positionsReady bool
}

// Option tweaks a Reconciler.
type Option func(*Reconciler)

// WithPollTimeout overrides the bus poll timeout.
func WithPollTimeout(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.poll = d
		}
	}
}

// WithFillListener registers a fill observer.
func WithFillListener(l FillListener) Option {
	return func(r *Reconciler) { r.fills = l }
}

func New(queue *bus.Queue, registry *market.Registry, accounts *ledger.Ledger, tracker *track.Tracker, data MarketData, refresh Refresher, opts ...Option) *Reconciler {
	r := &Reconciler{
		queue:   queue,
		market:  registry,
		ledger:  accounts,
		tracker: tracker,
		data:    data,
		refresh: refresh,
		poll:    DefaultPollTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ready reports whether all four readiness predicates hold.
func (r *Reconciler) Ready() bool {
	return r.summaryReady &&
		r.positionsReady &&
		r.market.PricesReady() &&
		r.tracker.Ready()
}

// WaitReady consumes the bus until the snapshot reflects a full refresh
// cycle for every entity of interest, then returns. A SessionFault aborts
// the wait; ctx cancellation returns ctx.Err().
func (r *Reconciler) WaitReady(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m, ok := r.queue.Consume(r.poll)
		if !ok {
			if r.queue.Closed() {
				return exception.ErrBusClosed
			}
			if r.Ready() {
				return nil
			}
			continue
		}

		if err := r.apply(m); err != nil {
			return err
		}

		if r.Ready() {
			return nil
		}
	}
}

// apply dispatches one message to its owning entity. The variant set is
// closed; anything else is a protocol violation.
func (r *Reconciler) apply(m bus.Message) error {
	switch m := m.(type) {
	case bus.AccountSummary:
		account, ok := r.ledger.Lookup(m.AccountID)
		if !ok {
			logs.Warnf("account %s not registered, dropping summary %s", m.AccountID, m.Tag)
			return nil
		}
		account.SetSummary(m.Tag, m.Value)

	case bus.AccountSummaryEnd:
		r.summaryReady = true

	case bus.Position:
		account, ok := r.ledger.Lookup(m.AccountID)
		if !ok {
			logs.Warnf("account %s not registered, dropping position %s", m.AccountID, m.Symbol)
			return nil
		}
		if err := r.ensureMarketData(m.Symbol); err != nil {
			return err
		}
		account.SetPosition(m.Symbol, m.Quantity)

	case bus.PositionEnd:
		r.positionsReady = true

	case bus.TickPrice:
		symbol, ok := r.data.TickerFor(m.ReqID)
		if !ok {
			logs.Warnf("request id %d not registered, dropping tick", m.ReqID)
			return nil
		}
		ticker, ok := r.market.Lookup(symbol.Ticker)
		if !ok {
			logs.Warnf("ticker %s not registered, dropping tick", symbol)
			return nil
		}
		ticker.SetPrice(m.Field, m.Price)

	case bus.OrderStatus:
		return r.applyOrderStatus(m)

	case bus.OrderOpened:
		if _, ok := r.tracker.Order(m.OrderID); ok {
			return nil
		}
		if _, ok := r.ledger.Lookup(m.AccountID); !ok {
			logs.Warnf("account %s not registered, dropping open order %d", m.AccountID, m.OrderID)
			return nil
		}
		if err := r.ensureMarketData(m.Symbol); err != nil {
			return err
		}
		if err := r.tracker.Track(&track.Order{
			ID:        m.OrderID,
			AccountID: m.AccountID,
			Symbol:    m.Symbol,
			Side:      m.Side,
			Quantity:  m.Quantity,
		}); err != nil {
			return errors.Wrap(err, "track open order")
		}

	case bus.SessionError:
		return &SessionFault{Code: m.Code, Reason: m.Reason}

	default:
		return errors.Wrap(exception.ErrProtocolViolation, fmt.Sprintf("unhandled message %T", m))
	}
	return nil
}

// ensureMarketData registers an instrument on first reference and opens
// its data stream. Portfolio instruments are subscribed at startup; this
// covers positions and open orders reported outside the portfolio.
func (r *Reconciler) ensureMarketData(symbol adapter.Symbol) error {
	if _, ok := r.market.Lookup(symbol.Ticker); ok {
		return nil
	}
	r.market.Register(symbol)
	if _, err := r.data.SubscribeMarketData(symbol); err != nil {
		return errors.Wrap(err, "subscribe market data "+symbol.Ticker)
	}
	return nil
}

func (r *Reconciler) applyOrderStatus(m bus.OrderStatus) error {
	res, err := r.tracker.ApplyStatus(m.OrderID, m.Status, m.Filled, m.Remaining)
	switch {
	case stderrors.Is(err, exception.ErrUnknownOrder):
		logs.Warnf("order %d not tracked, dropping status %s", m.OrderID, m.Status)
		return nil
	case err != nil:
		return err
	}

	if !res.Filled {
		return nil
	}

	logs.Infof("order %d filled for account %s", res.Order.ID, res.Order.AccountID)
	if r.fills != nil {
		r.fills.OrderFilled(res.Order)
	}

	// The fill invalidates everything reported before it. Clear the
	// snapshot, force both batch flags down, and reissue the
	// subscriptions back-to-back so nothing runs in between.
	if account, ok := r.ledger.Lookup(res.Order.AccountID); ok {
		account.MarkStale()
	}
	r.summaryReady = false
	r.positionsReady = false
	if err := r.refresh.RefreshAccountData(); err != nil {
		return errors.Wrap(err, "refresh account data after fill")
	}
	return nil
}
