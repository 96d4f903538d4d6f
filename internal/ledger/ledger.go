package ledger

import "strings"

// Ledger is the account registry, keyed case-insensitively by account id.
// Accounts are created once via explicit registration; events referencing
// unregistered accounts are dropped upstream.
type Ledger struct {
	byKey map[string]*Account
	order []*Account
}

func NewLedger() *Ledger {
	return &Ledger{byKey: make(map[string]*Account)}
}

// Register returns the account for an id, creating it if needed.
func (l *Ledger) Register(id string) *Account {
	key := strings.ToLower(id)
	if a, ok := l.byKey[key]; ok {
		return a
	}
	a := newAccount(id)
	l.byKey[key] = a
	l.order = append(l.order, a)
	return a
}

// Lookup resolves an account by id, case-insensitively.
func (l *Ledger) Lookup(id string) (*Account, bool) {
	a, ok := l.byKey[strings.ToLower(id)]
	return a, ok
}

// Accounts returns all registered accounts in registration order.
func (l *Ledger) Accounts() []*Account {
	return l.order
}
