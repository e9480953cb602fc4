package handler

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"depdemo/internal/model"
	"depdemo/internal/modules/moda"
	"depdemo/internal/modules/modb"
	"depdemo/internal/service"
)

const greetingMessage = "Hello from the demo server!"

// Greeting composes the fixed-shape root response: the greeting message, a
// random integer in [1,100], and the names of the linked demo modules.
// No inputs are consumed and no error path exists.
func Greeting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Greeting{
			Message: greetingMessage,
			Random:  rand.Intn(100) + 1,
			Modules: model.ModuleNames{
				A: moda.Name(),
				B: modb.Name(),
			},
		})
	}
}

// FetchProxy proxies one GET to the configured upstream endpoint and returns
// the upstream body verbatim. Any failure (network, DNS, timeout, non-2xx,
// persistence) becomes a 500 with the raw error message.
func FetchProxy(svc service.FetchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Fetch(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		c.Set(fiber.HeaderContentType, res.ContentType)
		return c.Send(res.Body)
	}
}

// ListFetches returns the fetch audit trail with limit & offset.
func ListFetches(svc service.FetchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetFetch returns a single fetch record by ID.
func GetFetch(svc service.FetchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "fetch record not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(rec)
	}
}

// HealthCheck checks DB connectivity only.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
