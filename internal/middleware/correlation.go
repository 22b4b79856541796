package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	correlationHeader = "X-Correlation-ID"
	requestIDHeader   = "X-Request-ID"

	// Inbound identifiers longer than this are replaced rather than echoed.
	maxCorrelationLength = 128
)

type correlationIDKey struct{}

var correlationKey = correlationIDKey{}

// CorrelationID tags every request with an identifier so the log lines it
// produces can be grouped. Inbound X-Correlation-ID or X-Request-ID headers
// are honoured; otherwise a fresh UUID is minted. The identifier is echoed
// back on the response and threaded through the request context.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := resolveCorrelationID(c)

		c.Locals("correlation_id", id)
		c.Set(correlationHeader, id)
		c.SetUserContext(context.WithValue(c.Context(), correlationKey, id))

		return c.Next()
	}
}

func resolveCorrelationID(c *fiber.Ctx) string {
	for _, header := range []string{correlationHeader, requestIDHeader} {
		if id := strings.TrimSpace(c.Get(header)); id != "" && len(id) <= maxCorrelationLength {
			return id
		}
	}
	return uuid.NewString()
}

// GetCorrelationID returns the identifier bound to the active request, or an
// empty string outside a request scope.
func GetCorrelationID(c *fiber.Ctx) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Locals("correlation_id").(string); ok {
		return id
	}
	return ""
}
