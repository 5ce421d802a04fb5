package catalog

import (
	"context"
	"testing"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db/models"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/pagination"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Fabric{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	fabrics := defaultFabrics()
	if err := db.Create(&fabrics).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestRepositoryFiltersByCategory(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	result, err := repo.List(context.Background(), ListParams{Category: "Velvet"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalCount != 2 || len(result.Fabrics) != 2 {
		t.Fatalf("expected 2 velvet rows, got total=%d page=%d", result.TotalCount, len(result.Fabrics))
	}
}

func TestRepositorySearchMatchesNameAndSKU(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	byName, err := repo.List(context.Background(), ListParams{Search: "herringbone"})
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if byName.TotalCount != 1 {
		t.Fatalf("expected 1 herringbone match, got %d", byName.TotalCount)
	}

	bySKU, err := repo.List(context.Background(), ListParams{Search: "wol-hb"})
	if err != nil {
		t.Fatalf("search by sku: %v", err)
	}
	if bySKU.TotalCount != 1 {
		t.Fatalf("expected 1 sku match, got %d", bySKU.TotalCount)
	}
}

func TestRepositoryCountIgnoresPagination(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	result, err := repo.List(context.Background(), ListParams{
		Pagination: pagination.Params{Page: 2, Limit: 3},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalCount != 8 {
		t.Fatalf("expected total 8 across pages, got %d", result.TotalCount)
	}
	if len(result.Fabrics) != 3 {
		t.Fatalf("expected 3 rows on page 2, got %d", len(result.Fabrics))
	}
}

func TestRepositorySortsByPriceDescending(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	result, err := repo.List(context.Background(), ListParams{Sort: "price", Direction: "desc"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(result.Fabrics); i++ {
		if result.Fabrics[i-1].PriceCents < result.Fabrics[i].PriceCents {
			t.Fatalf("expected descending price order, got %d before %d",
				result.Fabrics[i-1].PriceCents, result.Fabrics[i].PriceCents)
		}
	}
}
