package loop

import (
	"context"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/gateway"
	"main/internal/journal"
	"main/internal/ledger"
	"main/internal/market"
	"main/internal/rebal"
	"main/internal/recon"
	"main/internal/track"
)

// DefaultIdle is the pause between decision cycles when the snapshot is
// already converged and nothing needs doing.
const DefaultIdle = 30 * time.Second

// Loop runs the decide-and-place cycle for one account. It owns the
// decision goroutine's share of the world: nothing else mutates the
// ledger, registry or tracker while Run is active.
type Loop struct {
	session  gateway.Session
	recon    *recon.Reconciler
	engine   *rebal.Engine
	tracker  *track.Tracker
	accounts *ledger.Ledger
	market   *market.Registry
	journal  journal.Journal
	window   rebal.Window

	accountID string
	idle      time.Duration
	clock     func() time.Time
}

// Option tweaks a Loop.
type Option func(*Loop)

// WithIdle overrides the between-cycle pause.
func WithIdle(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.idle = d
		}
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Loop) { l.clock = clock }
}

func New(
	session gateway.Session,
	reconciler *recon.Reconciler,
	engine *rebal.Engine,
	tracker *track.Tracker,
	accounts *ledger.Ledger,
	registry *market.Registry,
	jrn journal.Journal,
	window rebal.Window,
	accountID string,
	opts ...Option,
) *Loop {
	l := &Loop{
		session:   session,
		recon:     reconciler,
		engine:    engine,
		tracker:   tracker,
		accounts:  accounts,
		market:    registry,
		journal:   jrn,
		window:    window,
		accountID: accountID,
		idle:      DefaultIdle,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run cycles until ctx is done or the trading day has passed the window's
// end hour. Session faults are logged and retried; everything else
// returns.
func (l *Loop) Run(ctx context.Context) error {
	for {
		placed, err := l.RunOnce(ctx)
		if err != nil {
			fault, ok := err.(*recon.SessionFault)
			if !ok {
				return err
			}
			logs.Warnf("session degraded, retrying: %+v", fault)
		}

		if l.window.Past(l.clock()) {
			logs.Info("trading window over, stopping")
			return nil
		}

		// A placed order gets its status report during the next
		// readiness wait, so only an idle cycle needs a pause.
		if !placed {
			if err := l.pause(ctx); err != nil {
				return err
			}
		}
	}
}

// RunOnce waits for a converged snapshot and makes at most one decision.
// It reports whether an order was placed.
func (l *Loop) RunOnce(ctx context.Context) (bool, error) {
	if err := l.recon.WaitReady(ctx); err != nil {
		return false, err
	}

	if !l.window.Open(l.clock()) {
		return false, nil
	}

	if l.tracker.HasOpen(l.accountID) {
		return false, nil
	}

	account, ok := l.accounts.Lookup(l.accountID)
	if !ok {
		return false, errors.Errorf("account %s not registered", l.accountID)
	}

	spec, ok, err := l.engine.Decide(account, l.market)
	if err != nil {
		return false, errors.Wrap(err, "decide")
	}
	if !ok {
		return false, nil
	}

	orderID, err := l.session.PlaceOrder(spec)
	if err != nil {
		return false, errors.Wrap(err, "place order").With("spec", spec)
	}

	order := &track.Order{
		ID:        orderID,
		AccountID: spec.AccountID,
		Symbol:    spec.Symbol,
		Side:      spec.Side,
		Quantity:  spec.Quantity,
	}
	if err := l.tracker.Track(order); err != nil {
		return false, errors.Wrap(err, "track placed order")
	}

	logs.Infof("placed order %d: %s %d %s", orderID, spec.Side, spec.Quantity, spec.Symbol)
	l.journal.OrderSubmitted(order)

	return true, nil
}

func (l *Loop) pause(ctx context.Context) error {
	timer := time.NewTimer(l.idle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
