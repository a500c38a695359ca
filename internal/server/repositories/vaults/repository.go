package vaults

import (
	"context"

	"github.com/haeli05/mintvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, vault *models.Vault) error
	GetByMint(ctx context.Context, assetMint string) (*models.Vault, error)

	// UpdateTotals replaces the vault totals, guarded by the version the
	// caller read. A stale version is rejected with common.ErrorConflict.
	UpdateTotals(ctx context.Context, id string, totalUsdc, totalAssets uint64, expectedVersion int64) error
}
