package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/dbx"
)

// PostgresLedger keeps mints and balances in the same database as the vault
// records. Bound to a dbx.DBTX it participates in the operation's
// transaction, so a failed deposit or redemption leaves no balance movement
// behind.
type PostgresLedger struct {
	db dbx.DBTX
}

func NewPostgresLedger(db dbx.DBTX) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) CreateMint(ctx context.Context, mintID, authority string) error {

	query :=
		`INSERT INTO mints (id, authority)
         VALUES ($1, $2)
		 ON CONFLICT (id) DO NOTHING
		 `

	_, err := l.db.ExecContext(ctx, query, mintID, authority)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (l *PostgresLedger) Transfer(ctx context.Context, mintID, from, to string, amount uint64) error {

	if err := l.debit(ctx, mintID, from, amount); err != nil {
		return err
	}
	return l.credit(ctx, mintID, to, amount)
}

func (l *PostgresLedger) Mint(ctx context.Context, mintID, authority, to string, amount uint64) error {

	query :=
		`SELECT authority FROM mints
		 WHERE id = $1
		 `

	var registered string
	err := l.db.QueryRowContext(ctx, query, mintID).Scan(&registered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	if registered != authority {
		return common.ErrorUnauthorized
	}

	return l.credit(ctx, mintID, to, amount)
}

func (l *PostgresLedger) Burn(ctx context.Context, mintID, owner string, amount uint64) error {
	return l.debit(ctx, mintID, owner, amount)
}

func (l *PostgresLedger) BalanceOf(ctx context.Context, mintID, owner string) (uint64, error) {

	query :=
		`SELECT balance FROM token_accounts
		 WHERE mint_id = $1 AND owner_id = $2
		 `

	var balance uint64
	err := l.db.QueryRowContext(ctx, query, mintID, owner).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return balance, nil
}

// debit subtracts from a balance, guarded so the row never goes negative.
// Zero rows affected means the account is missing or short.
func (l *PostgresLedger) debit(ctx context.Context, mintID, owner string, amount uint64) error {

	query :=
		`UPDATE token_accounts SET balance = balance - $1
		 WHERE mint_id = $2 AND owner_id = $3 AND balance >= $1
		 `

	res, err := l.db.ExecContext(ctx, query, amount, mintID, owner)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorInsufficientBalance
	}

	return nil
}

func (l *PostgresLedger) credit(ctx context.Context, mintID, owner string, amount uint64) error {

	query :=
		`INSERT INTO token_accounts (mint_id, owner_id, balance)
         VALUES ($1, $2, $3)
		 ON CONFLICT (mint_id, owner_id) DO UPDATE SET balance = token_accounts.balance + EXCLUDED.balance
		 `

	_, err := l.db.ExecContext(ctx, query, mintID, owner, amount)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
