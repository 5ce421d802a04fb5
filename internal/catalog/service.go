package catalog

import (
	"context"

	pkgerrors "github.com/Vamsi-027/fabric-commerce-backend/pkg/errors"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/metrics"
)

// Service answers catalog queries with a defined tier order: the database
// first, the static dataset second. The fallback is invisible to callers.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Primary  Source
	Fallback Source
	Metrics  *metrics.Checkout
	Logger   *logger.Logger
}

type service struct {
	primary  Source
	fallback Source
	met      *metrics.Checkout
	logg     *logger.Logger
}

// NewService builds the two-tier catalog service. A nil fallback gets the
// bundled dataset.
func NewService(params ServiceParams) (Service, error) {
	if params.Primary == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog primary source is required")
	}
	if params.Fallback == nil {
		params.Fallback = NewStaticSource(nil)
	}
	return &service{
		primary:  params.Primary,
		fallback: params.Fallback,
		met:      params.Metrics,
		logg:     params.Logger,
	}, nil
}

// List queries the primary tier and, on any error, serves the same query
// from the static dataset. The swap is logged and counted but never surfaced.
func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	result, err := s.primary.List(ctx, params)
	if err == nil {
		return result, nil
	}

	if s.logg != nil {
		s.logg.Error(ctx, "catalog store query failed, serving static dataset", err)
	}
	if s.met != nil {
		s.met.CatalogFallback.Inc()
	}
	return s.fallback.List(ctx, params)
}
