// Package entity defines the aggregation results behind the dividend charts.
package entity

import "github.com/shopspring/decimal"

// Granularity is the size of a time bucket.
type Granularity string

const (
	Month Granularity = "month"
	Year  Granularity = "year"
)

// Dimension is a categorical grouping axis.
type Dimension string

const (
	ByTicker   Dimension = "ticker"
	ByAccount  Dimension = "account"
	ByCurrency Dimension = "currency"
)

// Kind tells the chart client how to draw a report.
type Kind string

const (
	Bar       Kind = "bar"
	Doughnut  Kind = "doughnut"
	PolarArea Kind = "polarArea"
)

// NoDataLabel marks a series without a single payment.
const NoDataLabel = "no data"

// PeriodTotal is the payoff sum of one time bucket. Period is "YYYY-MM" for
// monthly buckets and "YYYY" for yearly ones.
type PeriodTotal struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

// CategoryTotal is the payoff sum of one ticker, account or currency.
type CategoryTotal struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// Series is one labelled run of values aligned with a report's labels.
type Series struct {
	Label  string
	Values []decimal.Decimal
}

// Report is a chart-ready aggregation: axis labels plus one or more series.
type Report struct {
	Kind   Kind
	Labels []string
	Series []Series
}
