package rooster

import (
	"preekrooster/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the operational endpoints of the rooster feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the rooster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rooster")
	group.Get("/status", h.HandleStatus)
	group.Post("/run", h.HandleRun)
}

// HandleStatus returns the summary of the most recent sync run.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	last := h.service.LastSummary()
	if last == nil {
		return c.JSON(fiber.Map{"status": "no run completed yet"})
	}
	return c.JSON(last)
}

// HandleRun triggers a sync run and returns its summary. The workload is a
// handful of rows, so the run completes within the request.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Sync run triggered via HTTP")

	summary := h.service.Run(c.UserContext())
	return c.JSON(summary)
}
