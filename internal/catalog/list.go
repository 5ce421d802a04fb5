package catalog

import (
	"strings"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/pagination"
)

// ListParams describe the supported filter knobs for the fabrics browse
// endpoint.
type ListParams struct {
	Search      string              `json:"search,omitempty"`
	Category    string              `json:"category,omitempty"`
	ColorFamily string              `json:"color_family,omitempty"`
	Pattern     string              `json:"pattern,omitempty"`
	Usage       string              `json:"usage,omitempty"`
	Sort        enums.SortField     `json:"sort_field,omitempty"`
	Direction   enums.SortDirection `json:"sort_direction,omitempty"`
	Pagination  pagination.Params   `json:"-"`
}

// Normalize fills in sort and pagination defaults so both data tiers apply
// the same query.
func (p ListParams) Normalize() ListParams {
	if !p.Sort.Valid() {
		p.Sort = enums.SortFieldName
	}
	if !p.Direction.Valid() {
		p.Direction = enums.SortAsc
	}
	p.Pagination = p.Pagination.Normalize()
	return p
}

// ListResult is one page of fabrics plus the unpaginated match count.
type ListResult struct {
	Fabrics    []models.Fabric
	TotalCount int
}

// matches applies the shared filter predicate. Category, color family,
// pattern and usage are exact matches; search is a case-insensitive
// substring test over name and SKU.
func matches(fabric models.Fabric, params ListParams) bool {
	if params.Category != "" && fabric.Category != params.Category {
		return false
	}
	if params.ColorFamily != "" && fabric.ColorFamily != params.ColorFamily {
		return false
	}
	if params.Pattern != "" && fabric.Pattern != params.Pattern {
		return false
	}
	if params.Usage != "" && fabric.Usage != params.Usage {
		return false
	}
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(fabric.Name), needle) &&
			!strings.Contains(strings.ToLower(fabric.SKU), needle) {
			return false
		}
	}
	return true
}

// less orders two fabrics under the requested sort key and direction.
func less(a, b models.Fabric, sort enums.SortField, direction enums.SortDirection) bool {
	var before bool
	switch sort {
	case enums.SortFieldPrice:
		before = a.PriceCents < b.PriceCents
		if a.PriceCents == b.PriceCents {
			before = a.Name < b.Name
		}
	case enums.SortFieldCreatedAt:
		before = a.CreatedAt.Before(b.CreatedAt)
		if a.CreatedAt.Equal(b.CreatedAt) {
			before = a.Name < b.Name
		}
	case enums.SortFieldCategory:
		before = a.Category < b.Category
		if a.Category == b.Category {
			before = a.Name < b.Name
		}
	default:
		before = a.Name < b.Name
	}
	if direction == enums.SortDesc {
		return !before
	}
	return before
}
