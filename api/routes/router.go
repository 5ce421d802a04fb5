package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vamsi-027/fabric-commerce-backend/api/controllers"
	"github.com/Vamsi-027/fabric-commerce-backend/api/middleware"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/cart"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/catalog"
	checkoutsvc "github.com/Vamsi-027/fabric-commerce-backend/internal/checkout"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/orders"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/wishlist"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/config"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
)

// RouterParams collects the services the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	HealthDeps      map[string]controllers.Pinger
	CartService     cart.Service
	WishlistService wishlist.Service
	CatalogService  catalog.Service
	CheckoutService checkoutsvc.Service
	OrdersService   orders.Service
	MetricsGatherer prometheus.Gatherer
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
		middleware.Session(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.HealthDeps))
	})

	gatherer := params.MetricsGatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/api/fabrics", controllers.ListFabrics(params.CatalogService, logg))

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", controllers.CartGet(params.CartService, logg))
		r.Post("/items", controllers.CartAdd(params.CartService, logg))
		r.Patch("/items/{itemId}", controllers.CartUpdateQuantity(params.CartService, logg))
		r.Delete("/items/{itemId}", controllers.CartRemove(params.CartService, logg))
		r.Delete("/", controllers.CartClear(params.CartService, logg))
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", controllers.WishlistList(params.WishlistService, logg))
		r.Get("/ids", controllers.WishlistIDs(params.WishlistService, logg))
		r.Post("/items", controllers.WishlistAdd(params.WishlistService, logg))
		r.Delete("/items/{fabricId}", controllers.WishlistRemove(params.WishlistService, logg))
	})

	r.Route("/store/orders", func(r chi.Router) {
		r.Post("/create", controllers.CreateOrder(params.CheckoutService, logg))
		r.Post("/create-direct", controllers.CreateOrderDirect(params.OrdersService, logg))
	})

	return r
}
