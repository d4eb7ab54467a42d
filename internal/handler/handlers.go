package handler

import (
	"bazaar-be/internal/config"
	"bazaar-be/internal/handler/http"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/service"
)

// Handlers groups the transport-level entry points of the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs the transport handlers configured in cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, logger),
	}, nil
}
