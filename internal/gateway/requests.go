package gateway

import (
	"sync"
	"sync/atomic"

	"main/internal/adapter"
	"main/pkg/exception"
)

// RequestBook hands out request ids and remembers which symbol a
// market-data request belongs to. Ids are allocated on the decision
// thread; the session reader resolves them concurrently, hence the lock.
type RequestBook struct {
	mu     sync.RWMutex
	nextID int64
	byReq  map[int64]adapter.Symbol
}

func NewRequestBook() *RequestBook {
	return &RequestBook{nextID: 1, byReq: make(map[int64]adapter.Symbol)}
}

// Allocate reserves the next request id without binding a symbol, for
// account-summary style subscriptions.
func (b *RequestBook) Allocate() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	return id
}

// AllocateMarketData reserves the next request id and binds it to a
// symbol.
func (b *RequestBook) AllocateMarketData(symbol adapter.Symbol) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.byReq[id] = symbol
	return id
}

// Release drops a market-data binding after cancellation.
func (b *RequestBook) Release(reqID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.byReq, reqID)
}

// TickerFor resolves a request id to its symbol.
func (b *RequestBook) TickerFor(reqID int64) (adapter.Symbol, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	symbol, ok := b.byReq[reqID]
	return symbol, ok
}

// OrderIDs allocates broker order ids. The sequence must ascend across
// the lifetime of a client identity; the gateway reports the next valid
// id at connect time and Seed never moves the sequence backwards.
type OrderIDs struct {
	next atomic.Int64
}

func NewOrderIDs() *OrderIDs {
	return &OrderIDs{}
}

// Seed raises the sequence floor to the gateway-reported next valid id.
func (o *OrderIDs) Seed(id int64) {
	for {
		current := o.next.Load()
		if id <= current {
			return
		}
		if o.next.CompareAndSwap(current, id) {
			return
		}
	}
}

// Seeded reports whether a next valid id has arrived.
func (o *OrderIDs) Seeded() bool {
	return o.next.Load() > 0
}

// Next returns the next order id, erroring until the sequence is seeded.
func (o *OrderIDs) Next() (int64, error) {
	if !o.Seeded() {
		return 0, exception.ErrSessionNoOrderID
	}
	return o.next.Add(1) - 1, nil
}
