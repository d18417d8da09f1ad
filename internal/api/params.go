package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListDividendsParams defines parameters for GET /dividends.
type ListDividendsParams struct {
	Start    *openapi_types.Date `form:"start,omitempty" json:"start,omitempty"`
	End      *openapi_types.Date `form:"end,omitempty" json:"end,omitempty"`
	Limit    *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Currency *string             `form:"currency,omitempty" json:"currency,omitempty"`
}

// ChartParams defines parameters for GET /charts/*.
type ChartParams struct {
	Currency  *string             `form:"currency,omitempty" json:"currency,omitempty"`
	ForNYears *int                `form:"for_n_years,omitempty" json:"for_n_years,omitempty"`
	Limit     *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Start     *openapi_types.Date `form:"start,omitempty" json:"start,omitempty"`
	End       *openapi_types.Date `form:"end,omitempty" json:"end,omitempty"`
}

// DividendHistoryParams defines parameters for GET /companies/:ticker/dividend-history.
type DividendHistoryParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// BindListDividendsParams reads ListDividendsParams from the request query string.
func BindListDividendsParams(c *gin.Context) (ListDividendsParams, error) {
	var params ListDividendsParams
	query := c.Request.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "start", query, &params.Start); err != nil {
		return params, fmt.Errorf("invalid format for parameter start: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "end", query, &params.End); err != nil {
		return params, fmt.Errorf("invalid format for parameter end: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return params, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "currency", query, &params.Currency); err != nil {
		return params, fmt.Errorf("invalid format for parameter currency: %w", err)
	}
	return params, nil
}

// BindChartParams reads ChartParams from the request query string.
func BindChartParams(c *gin.Context) (ChartParams, error) {
	var params ChartParams
	query := c.Request.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "currency", query, &params.Currency); err != nil {
		return params, fmt.Errorf("invalid format for parameter currency: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "for_n_years", query, &params.ForNYears); err != nil {
		return params, fmt.Errorf("invalid format for parameter for_n_years: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return params, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "start", query, &params.Start); err != nil {
		return params, fmt.Errorf("invalid format for parameter start: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "end", query, &params.End); err != nil {
		return params, fmt.Errorf("invalid format for parameter end: %w", err)
	}
	return params, nil
}

// BindDividendHistoryParams reads DividendHistoryParams from the request query string.
func BindDividendHistoryParams(c *gin.Context) (DividendHistoryParams, error) {
	var params DividendHistoryParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.Request.URL.Query(), &params.Limit); err != nil {
		return params, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return params, nil
}
