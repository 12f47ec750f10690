package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	catalog "sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/charts/core/domain"
	"sales-insights-service/internal/charts/core/usecase"
	"sales-insights-service/internal/dataset"
)

type GetChartsUseCase interface {
	Execute(ctx context.Context, in usecase.GetChartsInput) (*domain.ChartBundle, error)
}

type ChartsHandler struct {
	uc       GetChartsUseCase
	validate *validator.Validate
}

func NewChartsHandler(uc GetChartsUseCase) *ChartsHandler {
	return &ChartsHandler{
		uc:       uc,
		validate: validator.New(),
	}
}

type chartQuery struct {
	Start    string `validate:"omitempty,datetime=2006-01-02"`
	End      string `validate:"omitempty,datetime=2006-01-02"`
	Platform string `validate:"omitempty,oneof=total app web"`
}

// GetCharts godoc
// @Summary Query chart aggregates
// @Description Returns line, stacked, pie, scatter, and badge views for the selected filters and date range
// @Tags Charts
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Param platform query string false "Metric platform: total | app | web"
// @Param publisher query string false "Selected publishers (CSV)"
// @Param genre query string false "Selected genres (CSV)"
// @Param status query string false "Selected statuses (CSV)"
// @Param category query string false "Selected categories (CSV)"
// @Param tags query string false "Selected tags (CSV, all must match)"
// @Success 200 {object} ChartsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/charts [get]
func (h *ChartsHandler) GetCharts(c *fiber.Ctx) error {
	q := chartQuery{
		Start:    c.Query("start", ""),
		End:      c.Query("end", ""),
		Platform: c.Query("platform", ""),
	}

	if err := h.validate.Struct(q); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}

	platform := domain.Platform(q.Platform)
	if q.Platform == "total" {
		platform = domain.PlatformTotal
	}

	in := usecase.GetChartsInput{
		Start:    q.Start,
		End:      q.End,
		Platform: platform,
		Facets: catalog.FacetSelection{
			Publishers: csvToSet(c.Query("publisher", "")),
			Genres:     csvToSet(c.Query("genre", "")),
			Statuses:   csvToSet(c.Query("status", "")),
			Categories: csvToSet(c.Query("category", "")),
			Tags:       csvToSet(c.Query("tags", "")),
		},
	}

	bundle, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange),
			errors.Is(err, usecase.ErrInvalidPlatform):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, dataset.ErrNoSnapshot):
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error:   "no_snapshot",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(bundle))
}

func toResponse(b *domain.ChartBundle) ChartsResponse {
	resp := ChartsResponse{
		Start: b.Start,
		End:   b.End,
		Line: LineSeriesResponse{
			DateList:     emptyIfNil(b.Line.DateList),
			ValueList:    emptyFloatsIfNil(b.Line.ValueList),
			BaselineList: b.Line.BaselineList,
			YMax:         b.Line.YMax,
		},
		Stack: StackMatrixResponse{
			Publishers: emptyIfNil(b.Stack.Publishers),
			Categories: emptyIfNil(b.Stack.Categories),
			Matrix:     b.Stack.Matrix,
			XMax:       b.Stack.XMax,
		},
		GenreSales: PieShareResponse{
			Labels: emptyIfNil(b.GenreSales.Labels),
			Values: emptyFloatsIfNil(b.GenreSales.Values),
		},
		GenreCount: PieShareResponse{
			Labels: emptyIfNil(b.GenreCount.Labels),
			Values: emptyFloatsIfNil(b.GenreCount.Values),
		},
		MaxSales: b.MaxSales,
		Scatter:  make([]ScatterPointResponse, 0, len(b.Scatter)),
		Products: make([]ProductSummaryResponse, 0, len(b.Products)),
	}
	if resp.Stack.Matrix == nil {
		resp.Stack.Matrix = [][]float64{}
	}

	for _, p := range b.Scatter {
		resp.Scatter = append(resp.Scatter, ScatterPointResponse{
			ProductID: p.ProductID,
			Title:     p.Title,
			Publisher: p.Publisher,
			Category:  p.Category,
			Genre:     p.Genre,
			ReadUser:  p.ReadUser,
			PaidUser:  p.PaidUser,
			Sales:     p.Sales,
		})
	}

	for _, row := range b.Products {
		badges := make([]string, 0, len(row.Badges))
		for _, badge := range row.Badges {
			badges = append(badges, string(badge))
		}
		resp.Products = append(resp.Products, ProductSummaryResponse{
			ProductID:     row.ProductID,
			Title:         row.Title,
			Publisher:     row.Publisher,
			Genre:         row.Genre,
			Category:      row.Category,
			Status:        row.Status,
			Tags:          emptyIfNil(row.Tags),
			StartedSaleAt: row.StartedSaleAt,
			ThumbPath:     row.ThumbPath,
			SalesTotal:    row.SalesTotal,
			AppTotal:      row.AppTotal,
			WebTotal:      row.WebTotal,
			Badges:        badges,
		})
	}

	return resp
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyFloatsIfNil(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
