// Package api defines the HTTP contract shared by every feature handler:
// request bodies, response bodies and query parameter sets.
package api

import (
	"github.com/shopspring/decimal"
)

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest defines model for SignupRequest.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse defines model for TokenResponse.
type TokenResponse struct {
	Token string `json:"token"`
}

// CurrencyRequest defines model for CurrencyRequest.
type CurrencyRequest struct {
	Name string `json:"name" binding:"required,len=3"`
}

// CurrencyResponse defines model for CurrencyResponse.
type CurrencyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AccountRequest defines model for AccountRequest.
type AccountRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// AccountResponse defines model for AccountResponse.
type AccountResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CompanyRequest defines model for CompanyRequest.
type CompanyRequest struct {
	Ticker string `json:"ticker" binding:"required,max=8"`
}

// CompanyResponse defines model for CompanyResponse.
type CompanyResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ticker      string `json:"ticker"`
	Description string `json:"description,omitempty"`
	IconImage   string `json:"icon_image,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

// DividendHistoryItem is one historical dividend announcement from a market data provider.
type DividendHistoryItem struct {
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Source   string          `json:"source"`
}

// DividendRequest is the body of POST /dividends and PUT /dividends/:id.
// Either Payoff or both Shares and PerShare must be present.
type DividendRequest struct {
	Ticker     string           `json:"ticker" binding:"required,max=8"`
	AccountID  uint             `json:"account_id" binding:"required"`
	Currency   string           `json:"currency" binding:"required,len=3"`
	ReceivedOn string           `json:"received_on" binding:"required,datetime=2006-01-02"`
	Payoff     *decimal.Decimal `json:"payoff,omitempty"`
	Shares     *decimal.Decimal `json:"shares,omitempty"`
	PerShare   *decimal.Decimal `json:"per_share,omitempty"`
}

// DividendResponse defines model for DividendResponse.
type DividendResponse struct {
	ID          uint             `json:"id"`
	Ticker      string           `json:"ticker"`
	CompanyName string           `json:"company_name"`
	AccountID   uint             `json:"account_id"`
	Account     string           `json:"account"`
	Currency    string           `json:"currency"`
	ReceivedOn  string           `json:"received_on"`
	Payoff      decimal.Decimal  `json:"payoff"`
	Shares      *decimal.Decimal `json:"shares,omitempty"`
	PerShare    *decimal.Decimal `json:"per_share,omitempty"`
}

// ChartResponse is the chart payload rendered by the front end.
type ChartResponse struct {
	ChartType string         `json:"chart_type"`
	Labels    []string       `json:"labels"`
	Datasets  []ChartDataset `json:"datasets"`
	Options   ChartOptions   `json:"options"`
}

// ChartDataset is one labelled series of a chart.
type ChartDataset struct {
	Data  []float64 `json:"data"`
	Label string    `json:"label"`
}

// ChartOptions defines model for ChartOptions.
type ChartOptions struct {
	Plugins ChartPlugins `json:"plugins"`
}

// ChartPlugins defines model for ChartPlugins.
type ChartPlugins struct {
	Legend ChartLegend `json:"legend"`
}

// ChartLegend defines model for ChartLegend.
type ChartLegend struct {
	Labels ChartLegendLabels `json:"labels"`
}

// ChartLegendLabels defines model for ChartLegendLabels.
type ChartLegendLabels struct {
	Font ChartFont `json:"font"`
}

// ChartFont defines model for ChartFont.
type ChartFont struct {
	Size int `json:"size"`
}
