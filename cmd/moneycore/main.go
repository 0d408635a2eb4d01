package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/ulule/limiter/v3"

	"github.com/twopi/moneycore/internal/adapters/ratecache"
	"github.com/twopi/moneycore/internal/adapters/twopiapi"
	"github.com/twopi/moneycore/internal/core/services"
	"github.com/twopi/moneycore/internal/platform/logging"
	"github.com/twopi/moneycore/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.IsProduction)
	slog.SetDefault(logger)
	ctx := logging.WithLogger(context.Background(), logger)

	client := twopiapi.New(cfg.APIBaseURL)

	cacheOptions := []ratecache.Option{}
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT, upstream throttling disabled", slog.String("error", err.Error()))
	} else {
		cacheOptions = append(cacheOptions, ratecache.WithRateLimit(rate))
	}
	rates := ratecache.New(client, cfg.RateCacheSize, cfg.RateCacheTTL, cacheOptions...)

	dashboardSvc := services.NewDashboardService(client, client, client, client, rates,
		services.WithBaseCurrency(cfg.BaseCurrency))
	balanceSvc := services.NewBalanceService(client, client)

	now := time.Now().UTC()

	report, err := dashboardSvc.GenerateDashboard(ctx, now)
	if err != nil {
		logger.Error("Failed to generate dashboard", slog.String("error", err.Error()))
		os.Exit(1)
	}

	balances, err := balanceSvc.AccountBalances(ctx)
	if err != nil {
		logger.Error("Failed to project account balances", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out := struct {
		Dashboard any `json:"dashboard"`
		Balances  any `json:"balances"`
	}{Dashboard: report, Balances: balances}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
