package assets

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

func sampleAsset() *models.Asset {
	return &models.Asset{
		ID:        "asset-key",
		Mint:      "mint-a",
		VaultID:   "vault-key",
		Authority: "authority-1",
		Name:      "Tokenized Treasury",
		Ticker:    "TT",
		Price:     1_000_000,
	}
}

func TestCreate_OK(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	a := sampleAsset()
	mock.ExpectExec("INSERT INTO assets").
		WithArgs(a.ID, a.Mint, a.VaultID, a.Authority, a.Name, a.Ticker, int64(a.Price)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := r.Create(context.Background(), a); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DuplicateMintMapsToAssetAlreadyExists(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO assets").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := r.Create(context.Background(), sampleAsset())
	if !errors.Is(err, common.ErrorAssetAlreadyExists) {
		t.Fatalf("expected ErrorAssetAlreadyExists, got %v", err)
	}
}

func TestGetByMint_OK(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "mint", "vault_id", "authority", "name", "ticker", "price"}).
		AddRow("asset-key", "mint-a", "vault-key", "authority-1", "Tokenized Treasury", "TT", int64(1_000_000))
	mock.ExpectQuery("SELECT id, mint, vault_id, authority, name, ticker, price FROM assets").
		WithArgs("mint-a").
		WillReturnRows(rows)

	asset, err := r.GetByMint(context.Background(), "mint-a")
	if err != nil {
		t.Fatalf("GetByMint error: %v", err)
	}
	if asset.Price != 1_000_000 {
		t.Fatalf("unexpected price: %d", asset.Price)
	}
	if asset.VaultID != "vault-key" {
		t.Fatalf("unexpected vault id: %q", asset.VaultID)
	}
}

func TestGetByMint_NotFound(t *testing.T) {
	db, mock := newDB(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, mint, vault_id, authority, name, ticker, price FROM assets").
		WithArgs("mint-x").
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetByMint(context.Background(), "mint-x")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
