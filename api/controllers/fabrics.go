package controllers

import (
	"net/http"

	"github.com/Vamsi-027/fabric-commerce-backend/api/responses"
	"github.com/Vamsi-027/fabric-commerce-backend/api/validators"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/catalog"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/pagination"
)

type fabricsResponse struct {
	Fabrics    []models.Fabric   `json:"fabrics"`
	Count      int               `json:"count"`
	Pagination fabricsPagination `json:"pagination"`
}

type fabricsPagination struct {
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// ListFabrics serves the storefront catalog browse endpoint. The response
// shape is fixed: {fabrics, count, pagination:{totalCount, totalPages}}.
func ListFabrics(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<20)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		query := r.URL.Query()
		params := catalog.ListParams{
			Search:      validators.SanitizeString(query.Get("search"), 200),
			Category:    validators.SanitizeString(query.Get("category"), 100),
			ColorFamily: validators.SanitizeString(query.Get("color_family"), 100),
			Pattern:     validators.SanitizeString(query.Get("pattern"), 100),
			Usage:       validators.SanitizeString(query.Get("usage"), 100),
			Sort:        enums.SortField(query.Get("sort_field")),
			Direction:   enums.SortDirection(query.Get("sort_direction")),
			Pagination:  pagination.Params{Page: page, Limit: limit},
		}

		result, err := svc.List(ctx, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, fabricsResponse{
			Fabrics: result.Fabrics,
			Count:   len(result.Fabrics),
			Pagination: fabricsPagination{
				TotalCount: result.TotalCount,
				TotalPages: pagination.TotalPages(result.TotalCount, limit),
			},
		})
	}
}
