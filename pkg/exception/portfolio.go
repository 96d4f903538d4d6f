package exception

import "github.com/yanun0323/errors"

// Portfolio construction errors. These are configuration faults and abort
// startup; they are never produced at runtime.
var (
	ErrPortfolioEmpty       = errors.New("portfolio: no holdings")
	ErrPortfolioWeightRange = errors.New("portfolio: weight outside (0,1]")
	ErrPortfolioWeightSum   = errors.New("portfolio: weights do not sum to 1")
	ErrPortfolioDuplicate   = errors.New("portfolio: duplicate holding")
)
