package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/metrics"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type failingSource struct {
	calls int
}

func (f *failingSource) List(ctx context.Context, params ListParams) (*ListResult, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

func TestFallbackFiltersStaticDataIdentically(t *testing.T) {
	primary := &failingSource{}
	svc, err := NewService(ServiceParams{Primary: primary})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.List(context.Background(), ListParams{Category: "Velvet"})
	if err != nil {
		t.Fatalf("expected transparent fallback, got %v", err)
	}
	if primary.calls != 1 {
		t.Fatalf("expected one primary attempt, got %d", primary.calls)
	}
	if result.TotalCount != 2 || len(result.Fabrics) != 2 {
		t.Fatalf("expected the 2 velvet entries, got total=%d page=%d", result.TotalCount, len(result.Fabrics))
	}
	for _, fabric := range result.Fabrics {
		if fabric.Category != "Velvet" {
			t.Fatalf("non-velvet entry leaked through the filter: %s", fabric.Name)
		}
	}
}

func TestFallbackCounterIncrements(t *testing.T) {
	reg := prometheus.NewRegistry()
	met := metrics.NewCheckout(reg)
	svc, err := NewService(ServiceParams{Primary: &failingSource{}, Metrics: met})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.List(context.Background(), ListParams{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := testutil.ToFloat64(met.CatalogFallback); got != 1 {
		t.Fatalf("expected fallback counter 1, got %v", got)
	}
}

func TestPrimarySuccessSkipsFallback(t *testing.T) {
	static := NewStaticSource(nil)
	svc, err := NewService(ServiceParams{Primary: static, Fallback: &failingSource{}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.List(context.Background(), ListParams{Search: "linen"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalCount != 2 {
		t.Fatalf("expected 2 linen matches, got %d", result.TotalCount)
	}
}

func TestStaticSortAndPaginationShape(t *testing.T) {
	static := NewStaticSource(nil)

	result, err := static.List(context.Background(), ListParams{
		Sort:       "price",
		Direction:  "desc",
		Pagination: pagination.Params{Page: 1, Limit: 3},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Fabrics) != 3 {
		t.Fatalf("expected a 3-row page, got %d", len(result.Fabrics))
	}
	if result.TotalCount != 8 {
		t.Fatalf("expected unpaginated total 8, got %d", result.TotalCount)
	}
	for i := 1; i < len(result.Fabrics); i++ {
		if result.Fabrics[i-1].PriceCents < result.Fabrics[i].PriceCents {
			t.Fatalf("expected descending price order, got %d before %d",
				result.Fabrics[i-1].PriceCents, result.Fabrics[i].PriceCents)
		}
	}

	// Page past the end stays well formed.
	tail, err := static.List(context.Background(), ListParams{
		Pagination: pagination.Params{Page: 9, Limit: 3},
	})
	if err != nil {
		t.Fatalf("tail list: %v", err)
	}
	if len(tail.Fabrics) != 0 || tail.TotalCount != 8 {
		t.Fatalf("expected empty page with intact total, got page=%d total=%d",
			len(tail.Fabrics), tail.TotalCount)
	}
}

func TestStaticSearchIsCaseInsensitive(t *testing.T) {
	static := NewStaticSource(nil)

	result, err := static.List(context.Background(), ListParams{Search: "VELVET"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.TotalCount != 2 {
		t.Fatalf("expected 2 matches for VELVET, got %d", result.TotalCount)
	}
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	calls := 0
	for i := 0; i < 5; i++ {
		d.Trigger(func() {
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected a burst to collapse into one call, got %d", calls)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	calls := 0
	d.Trigger(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Fatalf("expected stop to cancel the pending call, got %d", calls)
	}
}
