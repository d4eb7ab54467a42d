package client

import (
	"context"
	"errors"
	"fmt"

	"bazaar-be/internal/adapter"
	"bazaar-be/internal/config"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/tui"
)

// App is the terminal storefront application. It satisfies [Client].
type App struct {
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(log *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return &App{
		ui:     tui.New(serverAdapter, log),
		logger: log,
	}, nil
}

// Run starts the storefront UI and blocks until the user exits. A
// deliberate quit is not an error.
func (a *App) Run() error {
	err := a.ui.Run(context.Background())
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
