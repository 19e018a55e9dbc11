package handler

import (
	"errors"

	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

const msgInvalidJSON = "Invalid JSON"

// messages holds the per-endpoint texts for the two errors whose wording
// differs between entities.
type messages struct {
	notFound string
	conflict string
}

// respond maps service errors onto status codes. Anything unrecognised is
// returned to Fiber's error handler, which answers with a generic 500.
func respond(c *fiber.Ctx, err error, m messages) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, repository.ErrConflict):
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"message": m.conflict})
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": m.notFound})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, service.ErrSaleNotRecorded):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": service.ErrSaleNotRecorded.Error()})
	}
	return err
}

func badJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msgInvalidJSON})
}

// ErrorHandler is installed as Fiber's ErrorHandler. Details stay in the log.
func ErrorHandler(logf func(format string, v ...interface{})) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
			return c.Status(fe.Code).SendString(fe.Message)
		}
		logf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).SendString("Something broke!")
	}
}
