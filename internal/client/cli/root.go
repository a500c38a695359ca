package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the vault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("vault %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: init, create-asset, deposit, redeem, withdraw, vault, balance, ping, exit")
			} else {
				fmt.Println("Available commands: register, login, ping, exit")
			}

		case "register":
			a.runCommand(ctx, a.Register)
		case "login":
			a.runCommand(ctx, a.Login)
		case "init":
			a.runCommand(ctx, a.Initialize)
		case "create-asset":
			a.runCommand(ctx, a.CreateAsset)
		case "deposit":
			a.runCommand(ctx, a.Deposit)
		case "redeem":
			a.runCommand(ctx, a.Redeem)
		case "withdraw":
			a.runCommand(ctx, a.AdminWithdraw)
		case "vault":
			a.runCommand(ctx, a.GetVault)
		case "balance":
			a.runCommand(ctx, a.Balance)
		case "ping":
			a.runCommand(ctx, a.Ping)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func (a *App) runCommand(ctx context.Context, cmd func(ctx context.Context) error) {
	if err := cmd(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
