package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Vamsi-027/fabric-commerce-backend/api/controllers"
	"github.com/Vamsi-027/fabric-commerce-backend/api/routes"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/cart"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/catalog"
	checkoutsvc "github.com/Vamsi-027/fabric-commerce-backend/internal/checkout"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/orders"
	"github.com/Vamsi-027/fabric-commerce-backend/internal/wishlist"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/config"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/db"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/medusa"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/metrics"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/migrate"
	"github.com/Vamsi-027/fabric-commerce-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	medusaClient, err := medusa.NewClient(context.Background(), cfg.Medusa, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create medusa client", err)
		os.Exit(1)
	}

	checkoutMetrics := metrics.NewCheckout(prometheus.DefaultRegisterer)

	cartService, err := cart.NewService(cart.ServiceParams{
		Store:  cart.NewRedisStore(redisClient),
		Bus:    cart.NewBus(),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Store:  wishlist.NewRedisStore(redisClient),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Primary:  catalog.NewRepository(dbClient.DB()),
		Fallback: catalog.NewStaticSource(nil),
		Metrics:  checkoutMetrics,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Backend:               medusaClient,
		LegacyCheckoutEnabled: cfg.FeatureFlags.EnableLegacyCheckout,
		DefaultRegionID:       cfg.Medusa.RegionID,
		DefaultCurrency:       cfg.Medusa.Currency,
		Metrics:               checkoutMetrics,
		Logger:                logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Tx:                    dbClient,
		Repo:                  orders.NewRepository(dbClient.DB()),
		LegacyCheckoutEnabled: cfg.FeatureFlags.EnableLegacyCheckout,
		DefaultCurrency:       cfg.Medusa.Currency,
		Logger:                logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config: cfg,
			Logger: logg,
			HealthDeps: map[string]controllers.Pinger{
				"db":    dbClient,
				"redis": redisClient,
			},
			CartService:     cartService,
			WishlistService: wishlistService,
			CatalogService:  catalogService,
			CheckoutService: checkoutService,
			OrdersService:   ordersService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
