package ledger

import (
	"context"
	"testing"

	"github.com/haeli05/mintvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger_MintRequiresAuthority(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.CreateMint(ctx, "mint-a", "vault-1"))

	err := l.Mint(ctx, "mint-a", "someone-else", "alice", 100)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	require.NoError(t, l.Mint(ctx, "mint-a", "vault-1", "alice", 100))

	balance, err := l.BalanceOf(ctx, "mint-a", "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
}

func TestMemoryLedger_MintUnknownClass(t *testing.T) {
	l := NewMemoryLedger()
	err := l.Mint(context.Background(), "nope", "vault-1", "alice", 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryLedger_CreateMintIsIdempotent(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.CreateMint(ctx, "mint-a", "vault-1"))
	require.NoError(t, l.CreateMint(ctx, "mint-a", "other"))

	// first registration wins
	require.NoError(t, l.Mint(ctx, "mint-a", "vault-1", "alice", 1))
	assert.ErrorIs(t, l.Mint(ctx, "mint-a", "other", "alice", 1), common.ErrorUnauthorized)
}

func TestMemoryLedger_TransferMovesBalance(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	require.NoError(t, l.CreateMint(ctx, "usdc", "issuer"))
	require.NoError(t, l.Mint(ctx, "usdc", "issuer", "alice", 500))

	require.NoError(t, l.Transfer(ctx, "usdc", "alice", "bob", 200))

	aliceBal, _ := l.BalanceOf(ctx, "usdc", "alice")
	bobBal, _ := l.BalanceOf(ctx, "usdc", "bob")
	assert.Equal(t, uint64(300), aliceBal)
	assert.Equal(t, uint64(200), bobBal)
}

func TestMemoryLedger_TransferInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	require.NoError(t, l.CreateMint(ctx, "usdc", "issuer"))
	require.NoError(t, l.Mint(ctx, "usdc", "issuer", "alice", 50))

	err := l.Transfer(ctx, "usdc", "alice", "bob", 100)
	assert.ErrorIs(t, err, common.ErrorInsufficientBalance)

	// nothing moved
	aliceBal, _ := l.BalanceOf(ctx, "usdc", "alice")
	bobBal, _ := l.BalanceOf(ctx, "usdc", "bob")
	assert.Equal(t, uint64(50), aliceBal)
	assert.Equal(t, uint64(0), bobBal)
}

func TestMemoryLedger_BurnReducesSupply(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	require.NoError(t, l.CreateMint(ctx, "mint-a", "vault-1"))
	require.NoError(t, l.Mint(ctx, "mint-a", "vault-1", "alice", 10))

	assert.ErrorIs(t, l.Burn(ctx, "mint-a", "alice", 11), common.ErrorInsufficientBalance)
	require.NoError(t, l.Burn(ctx, "mint-a", "alice", 10))

	balance, _ := l.BalanceOf(ctx, "mint-a", "alice")
	assert.Equal(t, uint64(0), balance)
}

func TestMemoryLedger_UnknownAccountHoldsZero(t *testing.T) {
	l := NewMemoryLedger()
	balance, err := l.BalanceOf(context.Background(), "usdc", "nobody")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}
