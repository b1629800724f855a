package handler

import (
	"errors"

	"go-inventory-pro/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps the error taxonomy onto HTTP statuses. Input errors,
// duplicates, and policy rejections are all 400s with distinct messages;
// missing records are 404; a storage outage is 503 so clients can tell
// "your input was wrong" apart from "the system is down".
func respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr  *apperr.ValidationError
		duplicateErr   *apperr.DuplicateKeyError
		policyErr      *apperr.PolicyViolationError
		notFoundErr    *apperr.NotFoundError
		unavailableErr *apperr.StorageUnavailableError
	)
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Msg})
	case errors.As(err, &duplicateErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": duplicateErr.Error()})
	case errors.As(err, &policyErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   policyErr.Msg,
			"details": policyErr.Details,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	case errors.As(err, &unavailableErr):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "Storage unavailable",
			"details": unavailableErr.Err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
