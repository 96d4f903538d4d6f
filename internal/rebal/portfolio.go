package rebal

import (
	"math"

	"main/internal/adapter"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
)

// weightTolerance absorbs float accumulation when validating the sum.
const weightTolerance = 1e-9

// Holding pairs an instrument with its target weight.
type Holding struct {
	Symbol adapter.Symbol
	Weight float64
}

// Portfolio is an immutable mapping from instrument to target weight in
// (0,1]. Weights must sum to exactly 1; violation is a configuration
// fault at construction, never a runtime condition. Enumeration order is
// construction order, which makes tie-breaks deterministic.
type Portfolio struct {
	symbols []adapter.Symbol
	weights map[string]float64
}

func NewPortfolio(holdings []Holding) (*Portfolio, error) {
	if len(holdings) == 0 {
		return nil, exception.ErrPortfolioEmpty
	}

	p := &Portfolio{weights: make(map[string]float64, len(holdings))}
	sum := 0.0
	for _, h := range holdings {
		if h.Weight <= 0 || h.Weight > 1 {
			return nil, errors.Wrap(exception.ErrPortfolioWeightRange, h.Symbol.Ticker)
		}
		if _, ok := p.weights[h.Symbol.Key()]; ok {
			return nil, errors.Wrap(exception.ErrPortfolioDuplicate, h.Symbol.Ticker)
		}
		p.symbols = append(p.symbols, h.Symbol)
		p.weights[h.Symbol.Key()] = h.Weight
		sum += h.Weight
	}

	if math.Abs(sum-1) > weightTolerance {
		return nil, exception.ErrPortfolioWeightSum
	}
	return p, nil
}

// Symbols returns the holdings in construction order.
func (p *Portfolio) Symbols() []adapter.Symbol {
	return p.symbols
}

// Weight returns the target weight of a symbol, or 0 if it is not a
// holding.
func (p *Portfolio) Weight(symbol adapter.Symbol) float64 {
	return p.weights[symbol.Key()]
}

// Contains reports whether the symbol is a holding.
func (p *Portfolio) Contains(symbol adapter.Symbol) bool {
	_, ok := p.weights[symbol.Key()]
	return ok
}
