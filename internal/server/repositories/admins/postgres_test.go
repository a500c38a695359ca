package admins

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreate_OK(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO admins").
		WithArgs("admin-key", "authority-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Create(context.Background(), &models.Admin{ID: "admin-key", Authority: "authority-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DuplicateMapsToAlreadyInitialized(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO admins").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := r.Create(context.Background(), &models.Admin{ID: "admin-key", Authority: "authority-1"})
	if !errors.Is(err, common.ErrorAlreadyInitialized) {
		t.Fatalf("expected ErrorAlreadyInitialized, got %v", err)
	}
}

func TestGet_OK(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, authority FROM admins").
		WithArgs("admin-key").
		WillReturnRows(sqlmock.NewRows([]string{"id", "authority"}).AddRow("admin-key", "authority-1"))

	admin, err := r.Get(context.Background(), "admin-key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if admin.Authority != "authority-1" {
		t.Fatalf("unexpected authority: %q", admin.Authority)
	}
}

func TestGet_NotFound(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, authority FROM admins").
		WithArgs("admin-key").
		WillReturnError(sql.ErrNoRows)

	_, err := r.Get(context.Background(), "admin-key")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
