package cli

import (
	"context"
	"fmt"
	"os"
)

// Initialize claims the global admin role for the logged-in account.
func (a *App) Initialize(ctx context.Context) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	authority, err := a.api.Initialize(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized, admin authority: %s\n", authority)
	return nil
}

// CreateAsset prompts for the asset parameters and lists the asset.
func (a *App) CreateAsset(ctx context.Context) error {
	mint, err := getSimpleText(a.reader, "Enter asset mint", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter asset name", os.Stdout)
	if err != nil {
		return err
	}
	ticker, err := getSimpleText(a.reader, "Enter ticker", os.Stdout)
	if err != nil {
		return err
	}
	price, err := getAmount(a.reader, "Enter price (collateral per asset unit, scaled by 1e6)", os.Stdout)
	if err != nil {
		return err
	}
	depositLimit, err := getAmount(a.reader, "Enter deposit limit (collateral base units)", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	assetID, vaultID, err := a.api.CreateAsset(ctx, mint, name, ticker, price, depositLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Asset created: asset=%s vault=%s\n", assetID, vaultID)
	return nil
}

// Deposit prompts for the asset mint and collateral amount.
func (a *App) Deposit(ctx context.Context) error {
	mint, err := getSimpleText(a.reader, "Enter asset mint", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Enter collateral amount", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	out, err := a.api.Deposit(ctx, mint, amount)
	if err != nil {
		return err
	}

	fmt.Printf("Minted %d asset units, vault now holds %d collateral / %d assets\n",
		out.AssetAmount, out.TotalUsdc, out.TotalAssets)
	return nil
}

// Redeem prompts for the asset mint and asset amount to burn.
func (a *App) Redeem(ctx context.Context) error {
	mint, err := getSimpleText(a.reader, "Enter asset mint", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Enter asset amount", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	out, err := a.api.Redeem(ctx, mint, amount)
	if err != nil {
		return err
	}

	fmt.Printf("Paid out %d collateral, vault now holds %d collateral / %d assets\n",
		out.UsdcAmount, out.TotalUsdc, out.TotalAssets)
	return nil
}

// AdminWithdraw prompts for the asset mint and collateral amount to sweep.
func (a *App) AdminWithdraw(ctx context.Context) error {
	mint, err := getSimpleText(a.reader, "Enter asset mint", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Enter collateral amount", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	out, err := a.api.AdminWithdraw(ctx, mint, amount)
	if err != nil {
		return err
	}

	fmt.Printf("Withdrawn, vault now holds %d collateral / %d assets\n",
		out.TotalUsdc, out.TotalAssets)
	return nil
}

// GetVault prints the accounting state of one vault.
func (a *App) GetVault(ctx context.Context) error {
	mint, err := getSimpleText(a.reader, "Enter asset mint", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	state, err := a.api.GetVault(ctx, mint)
	if err != nil {
		return err
	}

	fmt.Printf("limit=%d collateral=%d assets=%d\n",
		state.DepositLimit, state.TotalUsdc, state.TotalAssets)
	return nil
}

// Balance prints the caller's balance for a mint.
func (a *App) Balance(ctx context.Context) error {
	mint, err := getSimpleText(a.reader, "Enter mint", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	amount, err := a.api.Balance(ctx, mint)
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", amount)
	return nil
}
