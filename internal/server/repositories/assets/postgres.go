package assets

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

func (r *PostgresRepository) Create(ctx context.Context, asset *models.Asset) error {

	query :=
		`INSERT INTO assets (id, mint, vault_id, authority, name, ticker, price)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.Mint, asset.VaultID, asset.Authority, asset.Name, asset.Ticker, asset.Price)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAssetAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByMint(ctx context.Context, mint string) (*models.Asset, error) {

	query :=
		`SELECT id, mint, vault_id, authority, name, ticker, price FROM assets
		 WHERE mint = $1
		 `

	asset := &models.Asset{}
	err := r.db.QueryRowContext(ctx, query, mint).Scan(
		&asset.ID, &asset.Mint, &asset.VaultID, &asset.Authority, &asset.Name, &asset.Ticker, &asset.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return asset, nil
}
