// Package tui implements the interactive terminal storefront for the
// marketplace client.
//
// The whole UI is a single Bubble Tea program built around [appModel]: a
// screen enum selects which sub-model renders, all key handling and async
// command dispatch live in app_model.go, and the sub-models are plain view
// structs. Server calls go through [adapter.ServerAdapter] and never block
// the update loop.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"bazaar-be/internal/adapter"
	"bazaar-be/internal/logger"
)

// TUI runs the terminal storefront on top of a server adapter.
type TUI struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, logger: logger}
}

// Run starts the storefront and blocks until the user quits. A logout
// returns the user to the welcome screen inside the same program, so Run
// only comes back on quit or a terminal error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return result.err
}
