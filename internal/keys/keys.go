// Package keys derives canonical record identifiers. A record's key is a pure
// function of its kind and seed values, so two lookups for the same seeds
// always resolve to the same storage slot.
package keys

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	KindAdmin = "admin"
	KindAsset = "asset"
	KindVault = "vault"
)

// Derive computes the canonical key for a record of the given kind. Kind and
// seeds are joined with a zero byte so that ("ab","c") and ("a","bc") cannot
// collide.
func Derive(kind string, seeds ...string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, s := range seeds {
		h.Write([]byte{0})
		h.Write([]byte(s))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Admin returns the key of the singleton administrator record.
func Admin() string {
	return Derive(KindAdmin)
}

// Asset returns the key of the asset record for a synthetic mint.
func Asset(mint string) string {
	return Derive(KindAsset, mint)
}

// Vault returns the key of the vault record for a synthetic mint.
func Vault(mint string) string {
	return Derive(KindVault, mint)
}
