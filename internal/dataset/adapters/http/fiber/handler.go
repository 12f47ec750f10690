package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"sales-insights-service/internal/dataset"
)

type Refresher interface {
	Refresh(ctx context.Context) (*dataset.Snapshot, error)
	Current() (*dataset.Snapshot, error)
}

type DatasetHandler struct {
	store Refresher
}

func NewDatasetHandler(store Refresher) *DatasetHandler {
	return &DatasetHandler{store: store}
}

type RefreshResponse struct {
	SnapshotID string `json:"snapshot_id"`
	Products   int    `json:"products"`
	Sales      int    `json:"sales"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}

// Refresh godoc
// @Summary Reload the dataset snapshot
// @Description Re-reads products and sales wholesale and swaps in a fresh snapshot
// @Tags Dataset
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 500 {object} map[string]string
// @Router /api/refresh [post]
func (h *DatasetHandler) Refresh(c *fiber.Ctx) error {
	snap, err := h.store.Refresh(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "refresh_failed",
		})
	}

	return c.Status(http.StatusOK).JSON(RefreshResponse{
		SnapshotID: snap.ID,
		Products:   len(snap.Products),
		Sales:      len(snap.SalesSorted),
	})
}

// Health godoc
// @Summary Service health
// @Tags Dataset
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *DatasetHandler) Health(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok"}
	if snap, err := h.store.Current(); err == nil {
		resp.SnapshotID = snap.ID
	}
	return c.Status(http.StatusOK).JSON(resp)
}
