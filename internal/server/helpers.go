package server

import (
	"errors"

	"codebook/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// postIDParam reads the :id segment of a post route. An id that is not a positive
// integer cannot name a stored post, so it is returned as 0 and the service
// reports the operation's not-found error.
func postIDParam(c *fiber.Ctx) uint {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}

// parseBody decodes a JSON request body into dst. An empty body leaves dst
// untouched so the service reports the missing fields. On malformed JSON it
// writes a 400 response and returns errResponseWritten.
func (s *Server) parseBody(c *fiber.Ctx, dst any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, dst); err != nil {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	return nil
}
