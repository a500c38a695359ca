package admins

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

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) error {

	query :=
		`INSERT INTO admins (id, authority)
         VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, admin.ID, admin.Authority)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyInitialized
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Admin, error) {

	query :=
		`SELECT id, authority FROM admins
		 WHERE id = $1
		 `

	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&admin.ID, &admin.Authority)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return admin, nil
}
