// Package chart renders reports as the JSON payload drawn by the chart client.
package chart

import (
	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/report/domain/entity"
)

// LegendFontSize is the legend label size every chart is drawn with.
const LegendFontSize = 18

// Build converts r into a chart description. It only reshapes: labels,
// series and values keep their order.
func Build(r *entity.Report) api.ChartResponse {
	labels := make([]string, len(r.Labels))
	copy(labels, r.Labels)

	datasets := make([]api.ChartDataset, 0, len(r.Series))
	for _, s := range r.Series {
		data := make([]float64, len(s.Values))
		for i, v := range s.Values {
			data[i] = v.InexactFloat64()
		}
		datasets = append(datasets, api.ChartDataset{Data: data, Label: s.Label})
	}

	return api.ChartResponse{
		ChartType: string(r.Kind),
		Labels:    labels,
		Datasets:  datasets,
		Options: api.ChartOptions{
			Plugins: api.ChartPlugins{
				Legend: api.ChartLegend{
					Labels: api.ChartLegendLabels{Font: api.ChartFont{Size: LegendFontSize}},
				},
			},
		},
	}
}
