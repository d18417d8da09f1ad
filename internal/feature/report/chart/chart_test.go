package chart

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/feature/report/domain/entity"
)

func TestBuild(t *testing.T) {
	r := &entity.Report{
		Kind:   entity.Bar,
		Labels: []string{"Jan", "Feb", "Mar"},
		Series: []entity.Series{
			{Label: "Dividends for 2023 in USD", Values: []decimal.Decimal{decimal.NewFromInt(100), decimal.Zero, decimal.RequireFromString("50.5")}},
			{Label: "no data", Values: []decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero}},
		},
	}

	raw, err := json.Marshal(Build(r))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"chart_type": "bar",
		"labels": ["Jan", "Feb", "Mar"],
		"datasets": [
			{"data": [100, 0, 50.5], "label": "Dividends for 2023 in USD"},
			{"data": [0, 0, 0], "label": "no data"}
		],
		"options": {"plugins": {"legend": {"labels": {"font": {"size": 18}}}}}
	}`, string(raw))
}

func TestBuild_EmptyCategorical(t *testing.T) {
	r := &entity.Report{
		Kind:   entity.Doughnut,
		Labels: []string{},
		Series: []entity.Series{{Label: "no data", Values: []decimal.Decimal{}}},
	}

	raw, err := json.Marshal(Build(r))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"chart_type": "doughnut",
		"labels": [],
		"datasets": [{"data": [], "label": "no data"}],
		"options": {"plugins": {"legend": {"labels": {"font": {"size": 18}}}}}
	}`, string(raw))
}
