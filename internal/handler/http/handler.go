package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/service"
)

type Handler struct {
	services *service.Services

	// validate checks request payloads against their struct tags before any
	// service call is made.
	validate *validator.Validate

	// requestTimeout bounds the handling of a single inbound request,
	// including the store calls behind it.
	requestTimeout time.Duration

	limiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validate:       validator.New(),
		requestTimeout: requestTimeout,
		limiter:        newRateLimiter(),
		logger:         logger,
	}
}
