package ledger

import (
	"context"
	"sync"

	"github.com/haeli05/mintvault/internal/common"
)

type accountKey struct {
	mint  string
	owner string
}

// MemoryLedger is an in-process Ledger used by tests and by anything that
// needs ledger semantics without a database.
type MemoryLedger struct {
	mu          sync.Mutex
	authorities map[string]string
	balances    map[accountKey]uint64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		authorities: make(map[string]string),
		balances:    make(map[accountKey]uint64),
	}
}

func (l *MemoryLedger) CreateMint(ctx context.Context, mintID, authority string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.authorities[mintID]; ok {
		return nil
	}
	l.authorities[mintID] = authority
	return nil
}

func (l *MemoryLedger) Transfer(ctx context.Context, mintID, from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fromKey := accountKey{mint: mintID, owner: from}
	if l.balances[fromKey] < amount {
		return common.ErrorInsufficientBalance
	}
	l.balances[fromKey] -= amount
	l.balances[accountKey{mint: mintID, owner: to}] += amount
	return nil
}

func (l *MemoryLedger) Mint(ctx context.Context, mintID, authority, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	registered, ok := l.authorities[mintID]
	if !ok {
		return common.ErrorNotFound
	}
	if registered != authority {
		return common.ErrorUnauthorized
	}
	l.balances[accountKey{mint: mintID, owner: to}] += amount
	return nil
}

func (l *MemoryLedger) Burn(ctx context.Context, mintID, owner string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := accountKey{mint: mintID, owner: owner}
	if l.balances[key] < amount {
		return common.ErrorInsufficientBalance
	}
	l.balances[key] -= amount
	return nil
}

func (l *MemoryLedger) BalanceOf(ctx context.Context, mintID, owner string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[accountKey{mint: mintID, owner: owner}], nil
}
