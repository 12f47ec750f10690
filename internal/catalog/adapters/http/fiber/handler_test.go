package fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/dataset"
)

type fakeOptionsUseCase struct {
	ExecuteFunc func(ctx context.Context) (domain.FacetOptionsMap, error)
}

func (f *fakeOptionsUseCase) Execute(ctx context.Context) (domain.FacetOptionsMap, error) {
	return f.ExecuteFunc(ctx)
}

func setupTestApp(uc GetFacetOptionsUseCase) *fiber.App {
	app := fiber.New()
	h := NewOptionsHandler(uc)
	app.Get("/api/filters/options", h.GetFacetOptions)
	return app
}

func TestGetFacetOptions_Success(t *testing.T) {
	uc := &fakeOptionsUseCase{
		ExecuteFunc: func(ctx context.Context) (domain.FacetOptionsMap, error) {
			return domain.FacetOptionsMap{
				domain.FacetPublisher: {"Acme", "Beta"},
				domain.FacetGenre:     {"Drama"},
			}, nil
		},
	}
	app := setupTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/filters/options", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var out FacetOptionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(out.Publisher) != 2 || out.Publisher[0] != "Acme" {
		t.Fatalf("publisher = %v", out.Publisher)
	}
	if len(out.Genre) != 1 || out.Genre[0] != "Drama" {
		t.Fatalf("genre = %v", out.Genre)
	}
	// Facets absent from the map still serialize as arrays.
	if out.Tags == nil || len(out.Tags) != 0 {
		t.Fatalf("tags = %v", out.Tags)
	}
}

func TestGetFacetOptions_NoSnapshot(t *testing.T) {
	uc := &fakeOptionsUseCase{
		ExecuteFunc: func(ctx context.Context) (domain.FacetOptionsMap, error) {
			return nil, dataset.ErrNoSnapshot
		},
	}
	app := setupTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/filters/options", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestGetFacetOptions_InternalError(t *testing.T) {
	uc := &fakeOptionsUseCase{
		ExecuteFunc: func(ctx context.Context) (domain.FacetOptionsMap, error) {
			return nil, io.ErrUnexpectedEOF
		},
	}
	app := setupTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/filters/options", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}
