package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"dividend_backend/internal/app/di"
	"dividend_backend/internal/app/router"
	accountadapters "dividend_backend/internal/feature/account/adapters"
	accounthandler "dividend_backend/internal/feature/account/transport/handler"
	accountusecase "dividend_backend/internal/feature/account/usecase"
	authadapters "dividend_backend/internal/feature/auth/adapters"
	authhandler "dividend_backend/internal/feature/auth/transport/handler"
	authusecase "dividend_backend/internal/feature/auth/usecase"
	companyadapters "dividend_backend/internal/feature/company/adapters"
	companyhandler "dividend_backend/internal/feature/company/transport/handler"
	companyusecase "dividend_backend/internal/feature/company/usecase"
	currencyadapters "dividend_backend/internal/feature/currency/adapters"
	currencyhandler "dividend_backend/internal/feature/currency/transport/handler"
	currencyusecase "dividend_backend/internal/feature/currency/usecase"
	dividendadapters "dividend_backend/internal/feature/dividend/adapters"
	dividendhandler "dividend_backend/internal/feature/dividend/transport/handler"
	dividendusecase "dividend_backend/internal/feature/dividend/usecase"
	reporthandler "dividend_backend/internal/feature/report/transport/handler"
	reportusecase "dividend_backend/internal/feature/report/usecase"
	infradb "dividend_backend/internal/platform/db"
	"dividend_backend/internal/platform/http/handler"
	jwtmw "dividend_backend/internal/platform/jwt"
	"dividend_backend/internal/platform/logger"
	infraredis "dividend_backend/internal/platform/redis"
	"dividend_backend/internal/platform/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	logger.Init(os.Getenv("LOG_LEVEL"))

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access database handle", "error", err)
		os.Exit(1)
	}

	// Redis
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Running without report cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// 外部サービス
	polygonClient := di.NewPolygonClient()
	moexClient := di.NewMOEXClient()
	iconStore, iconCfg, err := di.NewIconStore(ctx)
	if err != nil {
		slog.Error("failed to configure icon store", "error", err)
		os.Exit(1)
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	currencyRepo := currencyadapters.NewCurrencyRepository(db)
	accountRepo := accountadapters.NewAccountRepository(db)
	companyRepo := companyadapters.NewCompanyRepository(db)
	dividendRepo := dividendadapters.NewDividendRepository(db)
	refs := dividendadapters.NewReferenceLookup(db)
	aggregates := di.NewAggregateStore(db, rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration))
	currencyUC := currencyusecase.NewCurrencyUsecase(currencyRepo)
	accountUC := accountusecase.NewAccountUsecase(accountRepo)
	companyUC := companyusecase.NewCompanyUsecase(companyRepo, polygonClient, polygonClient, iconStore, polygonClient, moexClient)
	dividendUC := dividendusecase.NewDividendUsecase(dividendRepo, refs, aggregates)
	reportUC := reportusecase.NewReportUsecase(aggregates)

	// Handler
	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(sqlDB),
		Auth:     authhandler.NewAuthHandler(authUC),
		Currency: currencyhandler.NewCurrencyHandler(currencyUC),
		Account:  accounthandler.NewAccountHandler(accountUC),
		Company:  companyhandler.NewCompanyHandler(companyUC),
		Dividend: dividendhandler.NewDividendHandler(dividendUC),
		Report:   reporthandler.NewReportHandler(reportUC),
	}

	opts := router.Options{JWTSecret: jwtCfg.Secret}
	if iconCfg.Kind == storage.KindLocal {
		if err := os.MkdirAll(iconCfg.Dir, 0o755); err != nil {
			slog.Error("failed to create icon directory", "dir", iconCfg.Dir, "error", err)
			os.Exit(1)
		}
		opts.IconDir = iconCfg.Dir
		opts.IconURL = iconCfg.BaseURL
	}

	r := router.NewRouter(handlers, opts)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
