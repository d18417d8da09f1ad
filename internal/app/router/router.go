package router

import (
	"github.com/gin-gonic/gin"

	accounthandler "dividend_backend/internal/feature/account/transport/handler"
	authhandler "dividend_backend/internal/feature/auth/transport/handler"
	companyhandler "dividend_backend/internal/feature/company/transport/handler"
	currencyhandler "dividend_backend/internal/feature/currency/transport/handler"
	dividendhandler "dividend_backend/internal/feature/dividend/transport/handler"
	reporthandler "dividend_backend/internal/feature/report/transport/handler"
	"dividend_backend/internal/platform/http/handler"
	"dividend_backend/internal/platform/http/middleware"
	jwtmw "dividend_backend/internal/platform/jwt"
)

// Handlers はルーターに登録するHTTPハンドラーをまとめます。
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *authhandler.AuthHandler
	Currency *currencyhandler.CurrencyHandler
	Account  *accounthandler.AccountHandler
	Company  *companyhandler.CompanyHandler
	Dividend *dividendhandler.DividendHandler
	Report   *reporthandler.ReportHandler
}

// Options は環境に依存するルーター設定です。
type Options struct {
	// JWTSecret は認証必須ルートのトークン検証に使います。
	JWTSecret string
	// IconDir を指定すると IconURL 配下で読み取り専用に配信します。
	IconDir string
	IconURL string
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// 認証不要
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)

	if opts.IconDir != "" && opts.IconURL != "" {
		r.Static(opts.IconURL, opts.IconDir)
	}

	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.GET("/currencies", h.Currency.List)
		auth.POST("/currencies", h.Currency.Create)

		auth.GET("/accounts", h.Account.List)
		auth.POST("/accounts", h.Account.Create)
		auth.DELETE("/accounts/:id", h.Account.Delete)

		auth.GET("/companies", h.Company.List)
		auth.POST("/companies", h.Company.Create)
		auth.GET("/companies/:ticker", h.Company.Get)
		auth.GET("/companies/:ticker/dividend-history", h.Company.DividendHistory)

		auth.GET("/dividends", h.Dividend.List)
		auth.POST("/dividends", h.Dividend.Create)
		auth.PUT("/dividends/:id", h.Dividend.Update)
		auth.DELETE("/dividends/:id", h.Dividend.Delete)

		charts := auth.Group("/charts")
		charts.GET("/last-year", h.Report.LastYear)
		charts.GET("/monthly", h.Report.Monthly)
		charts.GET("/yearly", h.Report.Yearly)
		charts.GET("/by-ticker", h.Report.ByTicker)
		charts.GET("/by-account", h.Report.ByAccount)
		charts.GET("/by-currency", h.Report.ByCurrency)
	}

	return r
}
