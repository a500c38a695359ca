package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/haeli05/mintvault/internal/common"
	"github.com/haeli05/mintvault/internal/dbx"
	"github.com/haeli05/mintvault/internal/keys"
	"github.com/haeli05/mintvault/internal/ledger"
	"github.com/haeli05/mintvault/internal/server/models"
	"github.com/haeli05/mintvault/internal/server/repositories/accounts"
	"github.com/haeli05/mintvault/internal/server/repositories/admins"
	"github.com/haeli05/mintvault/internal/server/repositories/assets"
	"github.com/haeli05/mintvault/internal/server/repositories/vaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	byID map[string]models.Admin
}

func (r *fakeAdmins) Create(ctx context.Context, admin *models.Admin) error {
	if _, ok := r.byID[admin.ID]; ok {
		return common.ErrorAlreadyInitialized
	}
	r.byID[admin.ID] = *admin
	return nil
}

func (r *fakeAdmins) Get(ctx context.Context, id string) (*models.Admin, error) {
	admin, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &admin, nil
}

type fakeAssets struct {
	byMint map[string]models.Asset
}

func (r *fakeAssets) Create(ctx context.Context, asset *models.Asset) error {
	if _, ok := r.byMint[asset.Mint]; ok {
		return common.ErrorAssetAlreadyExists
	}
	r.byMint[asset.Mint] = *asset
	return nil
}

func (r *fakeAssets) GetByMint(ctx context.Context, mint string) (*models.Asset, error) {
	asset, ok := r.byMint[mint]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &asset, nil
}

type fakeVaults struct {
	byID map[string]models.Vault
	// invoked before applying an update, so tests can race a second writer
	beforeUpdate func()
}

func (r *fakeVaults) Create(ctx context.Context, vault *models.Vault) error {
	if _, ok := r.byID[vault.ID]; ok {
		return common.ErrorAssetAlreadyExists
	}
	r.byID[vault.ID] = *vault
	return nil
}

func (r *fakeVaults) GetByMint(ctx context.Context, assetMint string) (*models.Vault, error) {
	for _, vault := range r.byID {
		if vault.AssetMint == assetMint {
			v := vault
			return &v, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeVaults) UpdateTotals(ctx context.Context, id string, totalUsdc, totalAssets uint64, expectedVersion int64) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	vault, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	if vault.Version != expectedVersion {
		return common.ErrorConflict
	}
	vault.TotalUsdc = totalUsdc
	vault.TotalAssets = totalAssets
	vault.Version++
	r.byID[id] = vault
	return nil
}

type fakeManager struct {
	admins   *fakeAdmins
	accounts *fakeAccounts
	assets   *fakeAssets
	vaults   *fakeVaults
	ledger   *ledger.MemoryLedger
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		admins:   &fakeAdmins{byID: make(map[string]models.Admin)},
		accounts: &fakeAccounts{byUserName: make(map[string]models.Account)},
		assets:   &fakeAssets{byMint: make(map[string]models.Asset)},
		vaults:   &fakeVaults{byID: make(map[string]models.Vault)},
		ledger:   ledger.NewMemoryLedger(),
	}
}

func (m *fakeManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeManager) Admins(db dbx.DBTX) admins.Repository               { return m.admins }
func (m *fakeManager) Accounts(db dbx.DBTX) accounts.Repository           { return m.accounts }
func (m *fakeManager) Assets(db dbx.DBTX) assets.Repository               { return m.assets }
func (m *fakeManager) Vaults(db dbx.DBTX) vaults.Repository               { return m.vaults }
func (m *fakeManager) Ledger(db dbx.DBTX) ledger.Ledger                   { return m.ledger }

const (
	usdcMint  = "usdc"
	assetMint = "mint-tsla"
	adminAcc  = "acc-admin"
	userAcc   = "acc-user"
)

func newTestVaultService(t *testing.T) (*VaultService, *fakeManager) {
	t.Helper()
	m := newFakeManager()
	s := &VaultService{
		repomanager:    m,
		collateralMint: usdcMint,
		runTx: func(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
			return fn(ctx, nil)
		},
	}
	return s, m
}

// seedCollateral registers the collateral mint and funds an account, the way
// an external issuer would.
func seedCollateral(t *testing.T, m *fakeManager, owner string, amount uint64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, m.ledger.CreateMint(ctx, usdcMint, "issuer"))
	require.NoError(t, m.ledger.Mint(ctx, usdcMint, "issuer", owner, amount))
}

func setupAsset(t *testing.T, s *VaultService, price, depositLimit uint64) {
	t.Helper()
	ctx := context.Background()
	_, err := s.Initialize(ctx, adminAcc)
	require.NoError(t, err)
	_, err = s.CreateAsset(ctx, adminAcc, assetMint, "Tesla", "TSLA", price, depositLimit)
	require.NoError(t, err)
}

func TestInitialize(t *testing.T) {
	s, _ := newTestVaultService(t)
	ctx := context.Background()

	admin, err := s.Initialize(ctx, adminAcc)
	require.NoError(t, err)
	assert.Equal(t, keys.Admin(), admin.ID)
	assert.Equal(t, adminAcc, admin.Authority)
}

func TestInitialize_SecondCallFails(t *testing.T) {
	s, _ := newTestVaultService(t)
	ctx := context.Background()

	_, err := s.Initialize(ctx, adminAcc)
	require.NoError(t, err)

	// even the same caller cannot re-initialize
	_, err = s.Initialize(ctx, adminAcc)
	assert.ErrorIs(t, err, common.ErrorAlreadyInitialized)

	_, err = s.Initialize(ctx, userAcc)
	assert.ErrorIs(t, err, common.ErrorAlreadyInitialized)
}

func TestCreateAsset(t *testing.T) {
	s, m := newTestVaultService(t)
	ctx := context.Background()

	_, err := s.Initialize(ctx, adminAcc)
	require.NoError(t, err)

	asset, err := s.CreateAsset(ctx, adminAcc, assetMint, "Tesla", "TSLA", 2_000_000, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, keys.Asset(assetMint), asset.ID)
	assert.Equal(t, keys.Vault(assetMint), asset.VaultID)
	assert.Equal(t, uint64(2_000_000), asset.Price)

	vault, err := s.GetVault(ctx, assetMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), vault.DepositLimit)
	assert.Zero(t, vault.TotalUsdc)
	assert.Zero(t, vault.TotalAssets)

	// the vault record is the mint authority of the new asset
	require.NoError(t, m.ledger.Mint(ctx, assetMint, vault.ID, userAcc, 1))
}

func TestCreateAsset_RequiresAdmin(t *testing.T) {
	s, _ := newTestVaultService(t)
	ctx := context.Background()

	// before Initialize there is no admin at all
	_, err := s.CreateAsset(ctx, adminAcc, assetMint, "Tesla", "TSLA", 1_000_000, 1_000_000)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Initialize(ctx, adminAcc)
	require.NoError(t, err)

	_, err = s.CreateAsset(ctx, userAcc, assetMint, "Tesla", "TSLA", 1_000_000, 1_000_000)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestCreateAsset_Validation(t *testing.T) {
	s, _ := newTestVaultService(t)
	ctx := context.Background()

	_, err := s.Initialize(ctx, adminAcc)
	require.NoError(t, err)

	_, err = s.CreateAsset(ctx, adminAcc, assetMint, strings.Repeat("n", 51), "TSLA", 1_000_000, 0)
	assert.ErrorIs(t, err, common.ErrorNameTooLong)

	_, err = s.CreateAsset(ctx, adminAcc, assetMint, "Tesla", strings.Repeat("t", 11), 1_000_000, 0)
	assert.ErrorIs(t, err, common.ErrorTickerTooLong)

	_, err = s.CreateAsset(ctx, adminAcc, assetMint, "Tesla", "TSLA", 0, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidPrice)

	// boundary lengths are accepted
	_, err = s.CreateAsset(ctx, adminAcc, assetMint, strings.Repeat("n", 50), strings.Repeat("t", 10), 1_000_000, 0)
	assert.NoError(t, err)
}

func TestCreateAsset_DuplicateMint(t *testing.T) {
	s, _ := newTestVaultService(t)
	setupAsset(t, s, 1_000_000, 1_000_000)

	_, err := s.CreateAsset(context.Background(), adminAcc, assetMint, "Tesla", "TSLA", 1_000_000, 1_000_000)
	assert.ErrorIs(t, err, common.ErrorAssetAlreadyExists)
}

func TestDeposit(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000_000)
	seedCollateral(t, m, userAcc, 1_000_000)
	ctx := context.Background()

	result, err := s.Deposit(ctx, userAcc, assetMint, 100_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), result.AssetAmount)
	assert.Equal(t, uint64(100_000), result.TotalUsdc)
	assert.Equal(t, uint64(100_000), result.TotalAssets)

	assetBalance, err := s.Balance(ctx, userAcc, assetMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), assetBalance)

	usdcBalance, err := s.Balance(ctx, userAcc, usdcMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(900_000), usdcBalance)
}

func TestDeposit_NonUnityPrice(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, 2_000_000, 1_000_000_000)
	seedCollateral(t, m, userAcc, 1_000)

	result, err := s.Deposit(context.Background(), userAcc, assetMint, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), result.AssetAmount)
	assert.Equal(t, uint64(100), result.TotalUsdc)
	assert.Equal(t, uint64(50), result.TotalAssets)
}

func TestDeposit_ZeroAmount(t *testing.T) {
	s, _ := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)

	_, err := s.Deposit(context.Background(), userAcc, assetMint, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidAmount)
}

func TestDeposit_UnknownAsset(t *testing.T) {
	s, _ := newTestVaultService(t)

	_, err := s.Deposit(context.Background(), userAcc, "mint-unknown", 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeposit_LimitExceeded(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 100)
	seedCollateral(t, m, userAcc, 1_000)
	ctx := context.Background()

	_, err := s.Deposit(ctx, userAcc, assetMint, 101)
	assert.ErrorIs(t, err, common.ErrorDepositLimitExceeded)

	// nothing moved
	usdcBalance, err := s.Balance(ctx, userAcc, usdcMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000), usdcBalance)

	// the limit itself is reachable
	_, err = s.Deposit(ctx, userAcc, assetMint, 100)
	assert.NoError(t, err)
}

func TestDeposit_InsufficientCollateral(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)
	seedCollateral(t, m, userAcc, 10)

	_, err := s.Deposit(context.Background(), userAcc, assetMint, 100)
	assert.ErrorIs(t, err, common.ErrorInsufficientBalance)
}

func TestDeposit_WriteConflict(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)
	seedCollateral(t, m, userAcc, 1_000)

	vaultID := keys.Vault(assetMint)
	m.vaults.beforeUpdate = func() {
		// a concurrent writer bumps the version between read and write
		m.vaults.beforeUpdate = nil
		vault := m.vaults.byID[vaultID]
		vault.Version++
		m.vaults.byID[vaultID] = vault
	}

	_, err := s.Deposit(context.Background(), userAcc, assetMint, 100)
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestRedeem(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000_000)
	seedCollateral(t, m, userAcc, 1_000_000)
	ctx := context.Background()

	_, err := s.Deposit(ctx, userAcc, assetMint, 100_000)
	require.NoError(t, err)

	result, err := s.Redeem(ctx, userAcc, assetMint, 50_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000), result.UsdcAmount)
	assert.Equal(t, uint64(50_000), result.TotalUsdc)
	assert.Equal(t, uint64(50_000), result.TotalAssets)

	assetBalance, err := s.Balance(ctx, userAcc, assetMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000), assetBalance)

	usdcBalance, err := s.Balance(ctx, userAcc, usdcMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(950_000), usdcBalance)
}

func TestRedeem_ZeroAmount(t *testing.T) {
	s, _ := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)

	_, err := s.Redeem(context.Background(), userAcc, assetMint, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidAmount)
}

func TestRedeem_MoreThanHeld(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)
	seedCollateral(t, m, userAcc, 1_000)
	ctx := context.Background()

	_, err := s.Deposit(ctx, userAcc, assetMint, 100)
	require.NoError(t, err)

	_, err = s.Redeem(ctx, userAcc, assetMint, 101)
	assert.ErrorIs(t, err, common.ErrorInsufficientBalance)
}

func TestAdminWithdraw(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)
	seedCollateral(t, m, userAcc, 1_000)
	ctx := context.Background()

	_, err := s.Deposit(ctx, userAcc, assetMint, 1_000)
	require.NoError(t, err)

	result, err := s.AdminWithdraw(ctx, adminAcc, assetMint, 400)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), result.TotalUsdc)
	// outstanding supply is untouched
	assert.Equal(t, uint64(1_000), result.TotalAssets)

	adminBalance, err := s.Balance(ctx, adminAcc, usdcMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), adminBalance)
}

func TestAdminWithdraw_RequiresAdmin(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)
	seedCollateral(t, m, userAcc, 1_000)
	ctx := context.Background()

	_, err := s.Deposit(ctx, userAcc, assetMint, 1_000)
	require.NoError(t, err)

	_, err = s.AdminWithdraw(ctx, userAcc, assetMint, 1)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAdminWithdraw_ZeroAmount(t *testing.T) {
	s, _ := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)

	_, err := s.AdminWithdraw(context.Background(), adminAcc, assetMint, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidAmount)
}

func TestAdminWithdraw_MoreThanReserve(t *testing.T) {
	s, m := newTestVaultService(t)
	setupAsset(t, s, PriceScale, 1_000_000)
	seedCollateral(t, m, userAcc, 1_000)
	ctx := context.Background()

	_, err := s.Deposit(ctx, userAcc, assetMint, 100)
	require.NoError(t, err)

	_, err = s.AdminWithdraw(ctx, adminAcc, assetMint, 101)
	assert.ErrorIs(t, err, common.ErrorInsufficientReserve)
}

func TestGetVault_UnknownAsset(t *testing.T) {
	s, _ := newTestVaultService(t)

	_, err := s.GetVault(context.Background(), "mint-unknown")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

// TestVaultLifecycle walks a full deposit/redeem/withdraw sequence and checks
// the accounting after every step.
func TestVaultLifecycle(t *testing.T) {
	s, m := newTestVaultService(t)
	ctx := context.Background()

	_, err := s.Initialize(ctx, adminAcc)
	require.NoError(t, err)

	_, err = s.CreateAsset(ctx, adminAcc, assetMint, "Tesla", "TSLA", 1_000_000, 1_000_000_000)
	require.NoError(t, err)

	seedCollateral(t, m, userAcc, 1_000_000_000)

	deposit, err := s.Deposit(ctx, userAcc, assetMint, 100_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), deposit.TotalUsdc)
	assert.Equal(t, uint64(100_000), deposit.TotalAssets)

	_, err = s.Deposit(ctx, userAcc, assetMint, 900_000_000)
	assert.ErrorIs(t, err, common.ErrorDepositLimitExceeded)

	redeem, err := s.Redeem(ctx, userAcc, assetMint, 50_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000), redeem.TotalUsdc)
	assert.Equal(t, uint64(50_000), redeem.TotalAssets)

	withdraw, err := s.AdminWithdraw(ctx, adminAcc, assetMint, 25_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(25_000), withdraw.TotalUsdc)
	assert.Equal(t, uint64(50_000), withdraw.TotalAssets)

	// 50_000 assets are outstanding but only 25_000 collateral remains
	_, err = s.Redeem(ctx, userAcc, assetMint, 50_000)
	assert.ErrorIs(t, err, common.ErrorInsufficientReserve)

	// the reserve still pays out what it can cover
	final, err := s.Redeem(ctx, userAcc, assetMint, 25_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), final.TotalUsdc)
	assert.Equal(t, uint64(25_000), final.TotalAssets)
}
