package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/enums"
	"gorm.io/gorm"
)

// Source is one tier of the catalog: the database repository or the bundled
// static dataset.
type Source interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
}

// Repository serves catalog queries from the fabrics table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List counts and fetches one page of fabrics under the shared filter
// semantics.
func (r *Repository) List(ctx context.Context, params ListParams) (*ListResult, error) {
	params = params.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Fabric{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.ColorFamily != "" {
		query = query.Where("color_family = ?", params.ColorFamily)
	}
	if params.Pattern != "" {
		query = query.Where("pattern = ?", params.Pattern)
	}
	if params.Usage != "" {
		query = query.Where("usage = ?", params.Usage)
	}
	if params.Search != "" {
		needle := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", needle, needle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count fabrics: %w", err)
	}

	var fabrics []models.Fabric
	err := query.
		Order(orderClause(params.Sort, params.Direction)).
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.Limit).
		Find(&fabrics).
		Error
	if err != nil {
		return nil, fmt.Errorf("list fabrics: %w", err)
	}
	if fabrics == nil {
		fabrics = []models.Fabric{}
	}
	return &ListResult{Fabrics: fabrics, TotalCount: int(total)}, nil
}

func orderClause(sort enums.SortField, direction enums.SortDirection) string {
	column := "name"
	switch sort {
	case enums.SortFieldPrice:
		column = "price_cents"
	case enums.SortFieldCreatedAt:
		column = "created_at"
	case enums.SortFieldCategory:
		column = "category"
	}
	dir := "ASC"
	if direction == enums.SortDesc {
		dir = "DESC"
	}
	if column == "name" {
		return fmt.Sprintf("name %s", dir)
	}
	return fmt.Sprintf("%s %s, name ASC", column, dir)
}
