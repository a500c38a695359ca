// Package ledger is the fungible-token ledger the vault core settles
// against: token classes (mints) with a designated mint authority, and
// per-(mint, owner) balances moved by atomic transfer, mint and burn.
//
// The vault record key is registered as the authority of each synthetic
// mint, which is what entitles Deposit to mint new supply and Redeem to
// burn it.
package ledger

import "context"

type Ledger interface {
	// CreateMint registers a token class. Creating an existing mint is a
	// no-op so asset creation can run "create if absent".
	CreateMint(ctx context.Context, mintID, authority string) error

	// Transfer moves amount from one owner to another within a mint.
	// Fails with common.ErrorInsufficientBalance when from cannot cover it.
	Transfer(ctx context.Context, mintID, from, to string, amount uint64) error

	// Mint credits newly issued tokens to an owner. The caller must present
	// the mint's registered authority.
	Mint(ctx context.Context, mintID, authority, to string, amount uint64) error

	// Burn destroys tokens held by owner. Fails with
	// common.ErrorInsufficientBalance when the owner holds less.
	Burn(ctx context.Context, mintID, owner string, amount uint64) error

	// BalanceOf reports the owner's balance; unknown accounts hold zero.
	BalanceOf(ctx context.Context, mintID, owner string) (uint64, error)
}
