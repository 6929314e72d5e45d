package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"romix/internal/api"
	"romix/internal/catalog"
	"romix/internal/inventory"
	"romix/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "romix-api"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	productsFile := getenv("ROMIX_PRODUCTS_FILE", "data/products.json")
	variantsFile := getenv("ROMIX_VARIANTS_FILE", "data/product_variants.json")
	metricsEnabled := getenv("METRICS_ENABLED", "") == "1"
	metricsToken := getenv("METRICS_TOKEN", "")
	orderLimit := getenvInt("ORDER_RATE_LIMIT", 30)
	orderWindow := getenvInt("ORDER_RATE_WINDOW_SECONDS", 60)

	cat := catalog.NewStore(productsFile)
	if _, err := cat.All(); err != nil {
		log.Fatal("load products", zap.Error(err), zap.String("file", productsFile))
	}

	inv := inventory.NewStore(&inventory.FileSnapshot{Path: variantsFile}, cat, log)
	if err := inv.Load(false); err != nil {
		log.Fatal("load variants", zap.Error(err), zap.String("file", variantsFile))
	}

	reg := prometheus.NewRegistry()

	h := api.NewHandler(
		&catalog.Server{Store: cat, Log: log},
		&inventory.Server{
			Store:     inv,
			Log:       log,
			Metrics:   inventory.NewMetrics(reg),
			RateLimit: kit.NewIPRateLimiter(orderLimit, orderWindow),
		},
		api.Deps{
			Log:            log,
			Service:        service,
			Registry:       reg,
			MetricsEnabled: metricsEnabled,
			MetricsToken:   metricsToken,
		},
	)

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
