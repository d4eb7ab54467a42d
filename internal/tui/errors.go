package tui

import "errors"

// ErrUserQuit is returned by [TUI.Run] when the user exits the storefront
// deliberately rather than through a failure.
var ErrUserQuit = errors.New("user quit")
