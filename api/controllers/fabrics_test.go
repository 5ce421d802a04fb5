package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vamsi-027/fabric-commerce-backend/internal/catalog"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/pagination"
	"github.com/google/uuid"
)

type stubCatalog struct {
	listFn func(ctx context.Context, params catalog.ListParams) (*catalog.ListResult, error)
}

func (s *stubCatalog) List(ctx context.Context, params catalog.ListParams) (*catalog.ListResult, error) {
	return s.listFn(ctx, params)
}

func TestListFabricsResponseKeys(t *testing.T) {
	svc := &stubCatalog{
		listFn: func(ctx context.Context, params catalog.ListParams) (*catalog.ListResult, error) {
			return &catalog.ListResult{
				Fabrics: []models.Fabric{
					{ID: uuid.New(), SKU: "VEL-001", Name: "Emerald Velvet", Category: "Velvet"},
					{ID: uuid.New(), SKU: "VEL-002", Name: "Royal Blue Velvet", Category: "Velvet"},
				},
				TotalCount: 14,
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/fabrics?limit=5", nil)
	rec := httptest.NewRecorder()
	ListFabrics(svc, testLogger()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var payload struct {
		Fabrics    []models.Fabric `json:"fabrics"`
		Count      int             `json:"count"`
		Pagination struct {
			TotalCount int `json:"totalCount"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Count != 2 {
		t.Fatalf("count must be the page size, got %d", payload.Count)
	}
	if payload.Pagination.TotalCount != 14 {
		t.Fatalf("expected totalCount 14 got %d", payload.Pagination.TotalCount)
	}
	if payload.Pagination.TotalPages != 3 {
		t.Fatalf("expected totalPages 3 for 14/5 got %d", payload.Pagination.TotalPages)
	}
}

func TestListFabricsForwardsFilters(t *testing.T) {
	var captured catalog.ListParams
	svc := &stubCatalog{
		listFn: func(ctx context.Context, params catalog.ListParams) (*catalog.ListResult, error) {
			captured = params
			return &catalog.ListResult{Fabrics: []models.Fabric{}}, nil
		},
	}

	target := "/api/fabrics?search=velvet&category=Velvet&color_family=Green&sort_field=price&sort_direction=desc&page=2&limit=10"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ListFabrics(svc, testLogger()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	if captured.Search != "velvet" || captured.Category != "Velvet" || captured.ColorFamily != "Green" {
		t.Fatalf("filters not forwarded: %+v", captured)
	}
	if string(captured.Sort) != "price" || string(captured.Direction) != "desc" {
		t.Fatalf("sort not forwarded: %+v", captured)
	}
	if captured.Pagination != (pagination.Params{Page: 2, Limit: 10}) {
		t.Fatalf("pagination not forwarded: %+v", captured.Pagination)
	}
}

func TestListFabricsRejectsNonNumericPage(t *testing.T) {
	svc := &stubCatalog{
		listFn: func(ctx context.Context, params catalog.ListParams) (*catalog.ListResult, error) {
			t.Fatal("service must not run for invalid query")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/fabrics?page=two", nil)
	rec := httptest.NewRecorder()
	ListFabrics(svc, testLogger()).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
