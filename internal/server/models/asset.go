package models

// Asset is the static record for one listed synthetic asset. Price is the
// fixed exchange rate in collateral minor units per asset unit and never
// changes after creation.
type Asset struct {
	ID        string
	Mint      string
	VaultID   string
	Authority string
	Name      string
	Ticker    string
	Price     uint64
}
