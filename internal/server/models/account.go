package models

import "time"

// Account is a registered caller identity. The account ID is what vault
// operations see as the caller.
type Account struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
