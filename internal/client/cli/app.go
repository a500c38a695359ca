// Package cli is the interactive front end of the vault: a small REPL that
// drives the gRPC API for account, asset and vault operations.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/haeli05/mintvault/internal/client/client"
	"github.com/haeli05/mintvault/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *client.GRPCClient
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewVaultClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

// requestCtx derives the per-RPC deadline from the configured timeout.
func (a *App) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
