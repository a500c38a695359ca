package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText, getPassword and getAmount are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getAmount = GetAmount

// Register prompts for a username and password and creates a new account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	accountID, err := a.api.Register(ctx, userName, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Registered, account id: %s\n", accountID)
	return nil
}

// Login prompts for credentials and stores the access token on success.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.api.Login(ctx, userName, string(password)); err != nil {
		return err
	}

	a.userName = userName
	fmt.Println("Success!")
	return nil
}

// Ping probes server reachability.
func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		return err
	}

	fmt.Println("Server is up")
	return nil
}
