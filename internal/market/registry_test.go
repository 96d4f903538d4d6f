package market

import (
	"testing"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/pkg/exception"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotentAndCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	a := r.Register(adapter.NewSymbol("AVUV", "ARCA", "USD"))
	b := r.Register(adapter.NewSymbol("avuv", "ARCA", "USD"))
	assert.Same(t, a, b)
	assert.Len(t, r.Tickers(), 1)

	got, ok := r.Lookup("Avuv")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestEffectivePriceFallsBackToOpen(t *testing.T) {
	r := NewRegistry()
	tk := r.Register(adapter.NewSymbol("AVDV", "ARCA", "USD"))

	_, ok := tk.EffectivePrice()
	assert.False(t, ok)

	tk.SetPrice(enum.PriceFieldOpen, 61.5)
	price, ok := tk.EffectivePrice()
	require.True(t, ok)
	assert.Equal(t, 61.5, price)

	// a zero last trade price means the quote is stale; keep the open
	tk.SetPrice(enum.PriceFieldLast, 0)
	price, ok = tk.EffectivePrice()
	require.True(t, ok)
	assert.Equal(t, 61.5, price)

	tk.SetPrice(enum.PriceFieldLast, 62.25)
	price, ok = tk.EffectivePrice()
	require.True(t, ok)
	assert.Equal(t, 62.25, price)
}

func TestPriceIdempotence(t *testing.T) {
	r := NewRegistry()
	tk := r.Register(adapter.NewSymbol("AVLV", "ARCA", "USD"))
	tk.SetPrice(enum.PriceFieldLast, 99.0)
	before, _ := tk.EffectivePrice()
	ready := r.PricesReady()

	tk.SetPrice(enum.PriceFieldLast, 99.0)
	after, _ := tk.EffectivePrice()
	assert.Equal(t, before, after)
	assert.Equal(t, ready, r.PricesReady())
}

func TestUninitializedQuoteAccess(t *testing.T) {
	r := NewRegistry()
	tk := r.Register(adapter.NewSymbol("AVES", "ARCA", "USD"))

	_, err := tk.Bid()
	assert.ErrorIs(t, err, exception.ErrUninitialized)
	_, err = tk.Ask()
	assert.ErrorIs(t, err, exception.ErrUninitialized)
	_, err = tk.Last()
	assert.ErrorIs(t, err, exception.ErrUninitialized)

	tk.SetPrice(enum.PriceFieldBid, 10)
	bid, err := tk.Bid()
	require.NoError(t, err)
	assert.Equal(t, 10.0, bid)
}

func TestPricesReady(t *testing.T) {
	r := NewRegistry()
	a := r.Register(adapter.NewSymbol("AVUV", "ARCA", "USD"))
	b := r.Register(adapter.NewSymbol("AVIV", "ARCA", "USD"))
	assert.False(t, r.PricesReady())

	a.SetPrice(enum.PriceFieldLast, 80)
	assert.False(t, r.PricesReady())

	b.SetPrice(enum.PriceFieldOpen, 55)
	assert.True(t, r.PricesReady())
}
