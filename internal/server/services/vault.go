package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/dbx"
	"github.com/haeli05/mintvault/internal/keys"
	"github.com/haeli05/mintvault/internal/server/config"
	"github.com/haeli05/mintvault/internal/server/models"
	"github.com/haeli05/mintvault/internal/server/repositories/repomanager"
)

const (
	maxNameLen   = 50
	maxTickerLen = 10
)

// DepositResult reports the outcome of a successful deposit.
type DepositResult struct {
	AssetAmount uint64
	TotalUsdc   uint64
	TotalAssets uint64
}

// RedeemResult reports the outcome of a successful redemption.
type RedeemResult struct {
	UsdcAmount  uint64
	TotalUsdc   uint64
	TotalAssets uint64
}

// WithdrawResult reports the vault totals after an administrative withdrawal.
type WithdrawResult struct {
	TotalUsdc   uint64
	TotalAssets uint64
}

// VaultService implements the vault state machine: Initialize, CreateAsset,
// Deposit, Redeem and AdminWithdraw. Every operation runs as one database
// transaction covering its record reads, ledger movements and total updates,
// so a failed precondition leaves zero observable effects.
type VaultService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	collateralMint string
	runTx          func(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
}

func NewVaultService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *VaultService {
	s := &VaultService{
		db:             db,
		repomanager:    m,
		collateralMint: cfg.CollateralMint,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
		return dbx.WithTx(ctx, db, nil, fn)
	}
	return s
}

// finishTx classifies transaction outcomes: a lost write race surfaces as a
// retryable conflict instead of a driver error.
func finishTx(err error) error {
	if err != nil && dbx.IsSerializationFailure(err) {
		return common.ErrorConflict
	}
	return err
}

// Initialize creates the singleton administrator record, making the caller
// the global privileged authority. First caller wins; there is no rotation.
func (s *VaultService) Initialize(ctx context.Context, caller string) (*models.Admin, error) {

	admin := &models.Admin{ID: keys.Admin(), Authority: caller}

	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Admins(tx)

		_, err := repo.Get(ctx, admin.ID)
		if err == nil {
			return common.ErrorAlreadyInitialized
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error reading admin record: %w", err)
		}

		return repo.Create(ctx, admin)
	})
	if err := finishTx(err); err != nil {
		return nil, err
	}

	return admin, nil
}

// requireAdmin loads the administrator record and checks the caller against
// its authority. Runs before anything else an admin-gated operation does.
func (s *VaultService) requireAdmin(ctx context.Context, tx dbx.DBTX, caller string) error {
	admin, err := s.repomanager.Admins(tx).Get(ctx, keys.Admin())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("error reading admin record: %w", err)
	}
	if admin.Authority != caller {
		return common.ErrorUnauthorized
	}
	return nil
}

// CreateAsset lists a new synthetic asset: the token class (minted and
// burned under the vault's authority), the vault record with its immutable
// deposit limit, and the asset record, all created atomically.
func (s *VaultService) CreateAsset(ctx context.Context, caller, assetMint, name, ticker string, price, depositLimit uint64) (*models.Asset, error) {

	asset := &models.Asset{
		ID:        keys.Asset(assetMint),
		Mint:      assetMint,
		VaultID:   keys.Vault(assetMint),
		Authority: caller,
		Name:      name,
		Ticker:    ticker,
		Price:     price,
	}

	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.requireAdmin(ctx, tx, caller); err != nil {
			return err
		}

		if len(name) > maxNameLen {
			return common.ErrorNameTooLong
		}
		if len(ticker) > maxTickerLen {
			return common.ErrorTickerTooLong
		}
		if price == 0 {
			return common.ErrorInvalidPrice
		}

		if err := s.repomanager.Assets(tx).Create(ctx, asset); err != nil {
			return err
		}

		vault := &models.Vault{
			ID:           asset.VaultID,
			AssetMint:    assetMint,
			DepositLimit: depositLimit,
		}
		if err := s.repomanager.Vaults(tx).Create(ctx, vault); err != nil {
			return err
		}

		return s.repomanager.Ledger(tx).CreateMint(ctx, assetMint, vault.ID)
	})
	if err := finishTx(err); err != nil {
		return nil, err
	}

	return asset, nil
}

// Deposit moves collateral from the caller into the vault reserve and mints
// the converted asset amount back to the caller.
func (s *VaultService) Deposit(ctx context.Context, caller, assetMint string, amount uint64) (*DepositResult, error) {

	if amount == 0 {
		return nil, common.ErrorInvalidAmount
	}

	result := &DepositResult{}

	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		asset, err := s.repomanager.Assets(tx).GetByMint(ctx, assetMint)
		if err != nil {
			return err
		}

		vault, err := s.repomanager.Vaults(tx).GetByMint(ctx, assetMint)
		if err != nil {
			return err
		}

		newUsdc, err := addTotal(vault.TotalUsdc, amount)
		if err != nil {
			return err
		}
		if newUsdc > vault.DepositLimit {
			return common.ErrorDepositLimitExceeded
		}

		assetAmount, err := collateralToAsset(amount, asset.Price)
		if err != nil {
			return err
		}
		newAssets, err := addTotal(vault.TotalAssets, assetAmount)
		if err != nil {
			return err
		}

		led := s.repomanager.Ledger(tx)
		if err := led.Transfer(ctx, s.collateralMint, caller, vault.ID, amount); err != nil {
			return err
		}
		if err := led.Mint(ctx, assetMint, vault.ID, caller, assetAmount); err != nil {
			return err
		}

		if err := s.repomanager.Vaults(tx).UpdateTotals(ctx, vault.ID, newUsdc, newAssets, vault.Version); err != nil {
			return err
		}

		result.AssetAmount = assetAmount
		result.TotalUsdc = newUsdc
		result.TotalAssets = newAssets
		return nil
	})
	if err := finishTx(err); err != nil {
		return nil, err
	}

	return result, nil
}

// Redeem burns the caller's asset tokens and pays out the collateral they
// are worth at the asset's fixed price. The vault cannot pay out collateral
// it does not hold: once AdminWithdraw has drained the reserve below full
// backing, redemptions fail until deposits replenish it.
func (s *VaultService) Redeem(ctx context.Context, caller, assetMint string, amount uint64) (*RedeemResult, error) {

	if amount == 0 {
		return nil, common.ErrorInvalidAmount
	}

	result := &RedeemResult{}

	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		asset, err := s.repomanager.Assets(tx).GetByMint(ctx, assetMint)
		if err != nil {
			return err
		}

		vault, err := s.repomanager.Vaults(tx).GetByMint(ctx, assetMint)
		if err != nil {
			return err
		}

		usdcOwed, err := assetToCollateral(amount, asset.Price)
		if err != nil {
			return err
		}
		if usdcOwed > vault.TotalUsdc {
			return common.ErrorInsufficientReserve
		}

		newUsdc, err := subTotal(vault.TotalUsdc, usdcOwed)
		if err != nil {
			return err
		}
		newAssets, err := subTotal(vault.TotalAssets, amount)
		if err != nil {
			return err
		}

		led := s.repomanager.Ledger(tx)
		if err := led.Burn(ctx, assetMint, caller, amount); err != nil {
			return err
		}
		if err := led.Transfer(ctx, s.collateralMint, vault.ID, caller, usdcOwed); err != nil {
			return err
		}

		if err := s.repomanager.Vaults(tx).UpdateTotals(ctx, vault.ID, newUsdc, newAssets, vault.Version); err != nil {
			return err
		}

		result.UsdcAmount = usdcOwed
		result.TotalUsdc = newUsdc
		result.TotalAssets = newAssets
		return nil
	})
	if err := finishTx(err); err != nil {
		return nil, err
	}

	return result, nil
}

// AdminWithdraw sweeps collateral from the vault reserve into the
// administrator's own account. Outstanding asset supply is deliberately left
// unchanged, so the vault may end up under-collateralized; remaining
// redeemers draw down the reserve first-come.
func (s *VaultService) AdminWithdraw(ctx context.Context, caller, assetMint string, amount uint64) (*WithdrawResult, error) {

	if amount == 0 {
		return nil, common.ErrorInvalidAmount
	}

	result := &WithdrawResult{}

	err := s.runTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.requireAdmin(ctx, tx, caller); err != nil {
			return err
		}

		vault, err := s.repomanager.Vaults(tx).GetByMint(ctx, assetMint)
		if err != nil {
			return err
		}

		if amount > vault.TotalUsdc {
			return common.ErrorInsufficientReserve
		}
		newUsdc, err := subTotal(vault.TotalUsdc, amount)
		if err != nil {
			return err
		}

		led := s.repomanager.Ledger(tx)
		if err := led.Transfer(ctx, s.collateralMint, vault.ID, caller, amount); err != nil {
			return err
		}

		if err := s.repomanager.Vaults(tx).UpdateTotals(ctx, vault.ID, newUsdc, vault.TotalAssets, vault.Version); err != nil {
			return err
		}

		result.TotalUsdc = newUsdc
		result.TotalAssets = vault.TotalAssets
		return nil
	})
	if err := finishTx(err); err != nil {
		return nil, err
	}

	return result, nil
}

// GetVault reports the accounting state of one vault.
func (s *VaultService) GetVault(ctx context.Context, assetMint string) (*models.Vault, error) {
	return s.repomanager.Vaults(s.db).GetByMint(ctx, assetMint)
}

// Balance reports the caller's ledger balance for a mint.
func (s *VaultService) Balance(ctx context.Context, caller, mint string) (uint64, error) {
	return s.repomanager.Ledger(s.db).BalanceOf(ctx, mint, caller)
}
