package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/dbx"
	"github.com/haeli05/mintvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, vault *models.Vault) error {

	query :=
		`INSERT INTO vaults (id, asset_mint, deposit_limit, total_usdc, total_assets, version)
         VALUES ($1, $2, $3, $4, $5, 0)
		 `

	_, err := r.db.ExecContext(ctx, query,
		vault.ID, vault.AssetMint, vault.DepositLimit, vault.TotalUsdc, vault.TotalAssets)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAssetAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByMint(ctx context.Context, assetMint string) (*models.Vault, error) {

	query :=
		`SELECT id, asset_mint, deposit_limit, total_usdc, total_assets, version FROM vaults
		 WHERE asset_mint = $1
		 `

	vault := &models.Vault{}
	err := r.db.QueryRowContext(ctx, query, assetMint).Scan(
		&vault.ID, &vault.AssetMint, &vault.DepositLimit, &vault.TotalUsdc, &vault.TotalAssets, &vault.Version)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vault, nil
}

func (r *PostgresRepository) UpdateTotals(ctx context.Context, id string, totalUsdc, totalAssets uint64, expectedVersion int64) error {

	query :=
		`UPDATE vaults SET total_usdc = $1, total_assets = $2, version = version + 1
		 WHERE id = $3 AND version = $4
		 `

	res, err := r.db.ExecContext(ctx, query, totalUsdc, totalAssets, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorConflict
	}

	return nil
}
