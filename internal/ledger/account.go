package ledger

import (
	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
)

// Account is one brokerage account's converged snapshot: summary metrics
// and position sizes as last reported by the gateway. All mutation happens
// on the decision thread.
type Account struct {
	id string

	summary   map[enum.SummaryTag]float64
	positions map[string]float64
	held      []adapter.Symbol
}

func newAccount(id string) *Account {
	return &Account{
		id:        id,
		summary:   make(map[enum.SummaryTag]float64),
		positions: make(map[string]float64),
	}
}

func (a *Account) ID() string {
	return a.id
}

// SetSummary records a summary metric value.
func (a *Account) SetSummary(tag enum.SummaryTag, value float64) {
	a.summary[tag] = value
}

// Summary returns a metric value, or the uninitialized fault if the tag
// has not been observed since the last refresh.
func (a *Account) Summary(tag enum.SummaryTag) (float64, error) {
	v, ok := a.summary[tag]
	if !ok {
		return 0, errors.Wrap(exception.ErrUninitialized, a.id+" "+tag.String())
	}
	return v, nil
}

// SummaryObserved reports whether every given tag has been observed.
func (a *Account) SummaryObserved(tags ...enum.SummaryTag) bool {
	for _, tag := range tags {
		if _, ok := a.summary[tag]; !ok {
			return false
		}
	}
	return true
}

// SetPosition records a signed position size.
func (a *Account) SetPosition(symbol adapter.Symbol, quantity float64) {
	if _, ok := a.positions[symbol.Key()]; !ok {
		a.held = append(a.held, symbol)
	}
	a.positions[symbol.Key()] = quantity
}

// Position returns the signed position size for a symbol; absent means
// zero.
func (a *Account) Position(symbol adapter.Symbol) float64 {
	return a.positions[symbol.Key()]
}

// Held returns the symbols the gateway has reported positions for, in
// first-report order.
func (a *Account) Held() []adapter.Symbol {
	return a.held
}

// Leverage is gross position value over net liquidation value.
func (a *Account) Leverage() (float64, error) {
	gross, err := a.Summary(enum.TagGrossPositionValue)
	if err != nil {
		return 0, err
	}
	net, err := a.Summary(enum.TagNetLiquidation)
	if err != nil {
		return 0, err
	}
	return gross / net, nil
}

// SurvivableDrawdown is the fraction of equity that can be lost before a
// maintenance-margin liquidation.
func (a *Account) SurvivableDrawdown() (float64, error) {
	net, err := a.Summary(enum.TagNetLiquidation)
	if err != nil {
		return 0, err
	}
	maint, err := a.Summary(enum.TagMaintMarginReq)
	if err != nil {
		return 0, err
	}
	gross, err := a.Summary(enum.TagGrossPositionValue)
	if err != nil {
		return 0, err
	}
	return (net - maint) / (gross - maint), nil
}

// MarkStale discards summary metrics and positions after a fill so that
// derived values cannot be read until the gateway re-reports them.
func (a *Account) MarkStale() {
	a.summary = make(map[enum.SummaryTag]float64)
	a.positions = make(map[string]float64)
	a.held = nil
}
