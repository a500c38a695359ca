package admins

import (
	"context"

	"github.com/haeli05/mintvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, admin *models.Admin) error
	Get(ctx context.Context, id string) (*models.Admin, error)
}
