package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/logging"
	"github.com/taskhive/taskhive-backend/internal/store"
)

type HealthHandler struct {
	store *store.Store
	ring  *logging.RingHandler
}

func NewHealthHandler(store *store.Store, ring *logging.RingHandler) *HealthHandler {
	return &HealthHandler{store: store, ring: ring}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	users, projects, tasks, comments := h.store.Counts()
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Users:     users,
		Projects:  projects,
		Tasks:     tasks,
		Comments:  comments,
	})
}

// RecentLogs exposes the in-memory ring of recent WARN+ records.
func (h *HealthHandler) RecentLogs(c *fiber.Ctx) error {
	return c.JSON(h.ring.Recent())
}
