package rebal

import (
	"math"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/internal/ledger"
	"main/internal/market"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Config defines the leverage band and order sizing.
type Config struct {
	LowLeverage  float64
	HighLeverage float64
	TargetDollar float64
	Urgency      enum.OrderUrgency
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		LowLeverage:  1.5,
		HighLeverage: 1.9,
		TargetDollar: 2000,
		Urgency:      enum.OrderUrgencyPatient,
	}
}

// Engine decides at most one order per readiness cycle, trading the
// instrument whose market value deviates most from its target weight.
type Engine struct {
	cfg       Config
	portfolio *Portfolio
}

func NewEngine(cfg Config, portfolio *Portfolio) *Engine {
	return &Engine{cfg: cfg, portfolio: portfolio}
}

// Decide inspects the converged snapshot and proposes one order, or
// ok=false when leverage sits inside the band. The reconciler guarantees
// every effective price is positive by the time this runs.
func (e *Engine) Decide(account *ledger.Account, prices *market.Registry) (adapter.OrderSpec, bool, error) {
	leverage, err := account.Leverage()
	if err != nil {
		return adapter.OrderSpec{}, false, errors.Wrap(err, "decide")
	}

	switch {
	case leverage < e.cfg.LowLeverage:
		return e.buyUnderweight(account, prices)
	case leverage > e.cfg.HighLeverage:
		return e.sellOverweight(account, prices)
	default:
		return adapter.OrderSpec{}, false, nil
	}
}

// buyUnderweight buys the portfolio instrument with the lowest
// marketValue/weight ratio, targeting a fixed dollar amount.
func (e *Engine) buyUnderweight(account *ledger.Account, prices *market.Registry) (adapter.OrderSpec, bool, error) {
	var (
		best      adapter.Symbol
		bestPrice float64
		bestRatio = math.Inf(1)
	)
	for _, symbol := range e.portfolio.Symbols() {
		price, err := e.effectivePrice(prices, symbol)
		if err != nil {
			return adapter.OrderSpec{}, false, err
		}
		ratio := account.Position(symbol) * price / e.portfolio.Weight(symbol)
		if ratio < bestRatio {
			best, bestPrice, bestRatio = symbol, price, ratio
		}
	}

	quantity := int64(math.Ceil(e.cfg.TargetDollar / bestPrice))
	logs.Infof("underweight %s ratio %.2f, buying %d", best, bestRatio, quantity)
	return adapter.OrderSpec{
		AccountID: account.ID(),
		Symbol:    best,
		Side:      enum.OrderSideBuy,
		Urgency:   e.cfg.Urgency,
		Quantity:  quantity,
	}, true, nil
}

// sellOverweight sells the held instrument with the highest ratio. A held
// position outside the portfolio is infinitely overweight and goes first.
// Sizing takes the larger of the dollar target and the full position, so
// a position too small for a partial exit is closed outright.
func (e *Engine) sellOverweight(account *ledger.Account, prices *market.Registry) (adapter.OrderSpec, bool, error) {
	for _, symbol := range account.Held() {
		if e.portfolio.Contains(symbol) || account.Position(symbol) == 0 {
			continue
		}
		return e.sellSpec(account, prices, symbol, math.Inf(1))
	}

	var (
		best      adapter.Symbol
		bestRatio = math.Inf(-1)
		found     bool
	)
	for _, symbol := range account.Held() {
		if !e.portfolio.Contains(symbol) {
			continue
		}
		price, err := e.effectivePrice(prices, symbol)
		if err != nil {
			return adapter.OrderSpec{}, false, err
		}
		ratio := account.Position(symbol) * price / e.portfolio.Weight(symbol)
		if ratio > bestRatio {
			best, bestRatio = symbol, ratio
			found = true
		}
	}
	if !found {
		return adapter.OrderSpec{}, false, nil
	}
	return e.sellSpec(account, prices, best, bestRatio)
}

func (e *Engine) sellSpec(account *ledger.Account, prices *market.Registry, symbol adapter.Symbol, ratio float64) (adapter.OrderSpec, bool, error) {
	price, err := e.effectivePrice(prices, symbol)
	if err != nil {
		return adapter.OrderSpec{}, false, err
	}
	quantity := int64(math.Ceil(e.cfg.TargetDollar / price))
	if position := int64(account.Position(symbol)); position > quantity {
		quantity = position
	}
	logs.Infof("overweight %s ratio %.2f, selling %d", symbol, ratio, quantity)
	return adapter.OrderSpec{
		AccountID: account.ID(),
		Symbol:    symbol,
		Side:      enum.OrderSideSell,
		Urgency:   e.cfg.Urgency,
		Quantity:  quantity,
	}, true, nil
}

func (e *Engine) effectivePrice(prices *market.Registry, symbol adapter.Symbol) (float64, error) {
	ticker, ok := prices.Lookup(symbol.Ticker)
	if !ok {
		return 0, errors.Wrap(exception.ErrUnknownTicker, symbol.Ticker)
	}
	price, ok := ticker.EffectivePrice()
	if !ok || price <= 0 {
		return 0, errors.Wrap(exception.ErrUninitialized, symbol.Ticker+" price")
	}
	return price, nil
}
