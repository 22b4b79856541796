package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/middleware"
)

var errInvalidIdentifier = errors.New("invalid identifier")

func parseIntParam(c *fiber.Ctx, name string) (int, error) {
	parsed, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, errInvalidIdentifier
	}
	return parsed, nil
}

// requestLogger binds the request's correlation identifier to the handler's
// component logger.
func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if correlation := middleware.GetCorrelationID(c); correlation != "" {
		logger = base.With().Str("correlation_id", correlation).Logger()
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
