package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := fiber.Map{
		"status":  "healthy",
		"version": matching.Version,
	}

	if h.db != nil {
		data["database"] = "up"
		if err := h.db.Ping(c.Context()); err != nil {
			data["database"] = "down"
			data["status"] = "degraded"
		}
	}
	if h.cache != nil {
		data["cache"] = "up"
		if err := h.cache.Ping(c.Context()); err != nil {
			data["cache"] = "down"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
