package models

// Vault is the mutable accounting record backing one asset.
//
// TotalUsdc is the collateral reserve, TotalAssets the outstanding synthetic
// supply. AdminWithdraw may drive TotalUsdc below the collateral implied by
// TotalAssets; redeemers then draw down the remaining reserve first-come.
// Version guards concurrent updates: a write against a stale version is
// rejected, not merged.
type Vault struct {
	ID           string
	AssetMint    string
	DepositLimit uint64
	TotalUsdc    uint64
	TotalAssets  uint64
	Version      int64
}
