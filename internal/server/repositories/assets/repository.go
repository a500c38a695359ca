package assets

import (
	"context"

	"github.com/haeli05/mintvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByMint(ctx context.Context, mint string) (*models.Asset, error)
}
