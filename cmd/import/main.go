// Command import registers companies for the tickers given as arguments or in
// IMPORT_TICKERS (comma separated), waiting out the Polygon rate limit instead of failing.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"dividend_backend/internal/app/di"
	companyadapters "dividend_backend/internal/feature/company/adapters"
	companyusecase "dividend_backend/internal/feature/company/usecase"
	infradb "dividend_backend/internal/platform/db"
	"dividend_backend/internal/platform/externalapi/polygon"
	"dividend_backend/internal/platform/logger"
	"dividend_backend/internal/shared/ratelimiter"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	logger.Init(os.Getenv("LOG_LEVEL"))

	tickers := parseTickers(os.Args[1:], os.Getenv("IMPORT_TICKERS"))
	if len(tickers) == 0 {
		slog.Error("no tickers given; pass them as arguments or set IMPORT_TICKERS")
		os.Exit(2)
	}

	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	iconStore, _, err := di.NewIconStore(ctx)
	if err != nil {
		slog.Error("failed to configure icon store", "error", err)
		os.Exit(1)
	}

	polygonClient := di.NewUnlimitedPolygonClient()
	companies := companyusecase.NewCompanyUsecase(
		companyadapters.NewCompanyRepository(db),
		polygonClient, polygonClient, iconStore, polygonClient, di.NewMOEXClient(),
	)
	// Each company costs up to two provider calls (metadata and icon).
	limit := polygon.LoadConfig().RateLimit / 2
	if limit < 1 {
		limit = 1
	}
	uc := companyusecase.NewImportUsecase(companies, ratelimiter.NewRateLimiter(limit, time.Minute))

	sum, err := uc.ImportAll(ctx, tickers)
	if err != nil {
		slog.Error("import interrupted", "error", err)
		os.Exit(1)
	}
	slog.Info("import ok", "created", sum.Created, "skipped", sum.Skipped, "failed", sum.Failed)
	if len(sum.Failed) > 0 {
		os.Exit(1)
	}
}

func parseTickers(args []string, env string) []string {
	if len(args) == 0 {
		args = strings.Split(env, ",")
	}
	var out []string
	for _, a := range args {
		if t := strings.TrimSpace(a); t != "" {
			out = append(out, t)
		}
	}
	return out
}
