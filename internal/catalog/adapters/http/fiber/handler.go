package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/dataset"
)

type GetFacetOptionsUseCase interface {
	Execute(ctx context.Context) (domain.FacetOptionsMap, error)
}

type OptionsHandler struct {
	uc GetFacetOptionsUseCase
}

func NewOptionsHandler(uc GetFacetOptionsUseCase) *OptionsHandler {
	return &OptionsHandler{uc: uc}
}

// GetFacetOptions godoc
// @Summary List facet filter options
// @Description Returns the distinct values available per facet in the current snapshot
// @Tags Filters
// @Produce json
// @Success 200 {object} FacetOptionsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/filters/options [get]
func (h *OptionsHandler) GetFacetOptions(c *fiber.Ctx) error {
	options, err := h.uc.Execute(c.UserContext())
	if err != nil {
		if errors.Is(err, dataset.ErrNoSnapshot) {
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error:   "no_snapshot",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := FacetOptionsResponse{
		Publisher: orEmpty(options[domain.FacetPublisher]),
		Genre:     orEmpty(options[domain.FacetGenre]),
		Status:    orEmpty(options[domain.FacetStatus]),
		Category:  orEmpty(options[domain.FacetCategory]),
		Tags:      orEmpty(options[domain.FacetTags]),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
