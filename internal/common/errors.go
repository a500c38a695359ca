// Package common holds the sentinel errors shared by the vault services,
// repositories and transport layer.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("concurrent update conflict")

	// authorization errors
	ErrorUnauthorized = errors.New("unauthorized")

	// state errors
	ErrorAlreadyInitialized = errors.New("already initialized")
	ErrorAssetAlreadyExists = errors.New("asset already exists")
	ErrorUserAlreadyExists  = errors.New("user already exists")

	// capacity errors
	ErrorDepositLimitExceeded = errors.New("deposit would exceed limit")
	ErrorInsufficientReserve  = errors.New("insufficient reserve")

	// balance errors, surfaced from the token ledger
	ErrorInsufficientBalance = errors.New("insufficient balance")

	// validation errors
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorInvalidAmount   = errors.New("amount must be positive")
	ErrorInvalidPrice    = errors.New("price must be positive")
	ErrorNameTooLong     = errors.New("name is too long")
	ErrorTickerTooLong   = errors.New("ticker is too long")

	// arithmetic on vault totals must never wrap; hitting this is a defect,
	// not a caller-recoverable condition
	ErrorArithmeticOverflow = errors.New("arithmetic overflow")

	// auth-specific errors
	ErrorInvalidToken = errors.New("invalid token")

	ErrorInternal = errors.New("internal error")
)
