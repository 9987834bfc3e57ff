package quickchart

import (
	"mta/attribution"
	"mta/pathgraph"
	U "mta/util"
)

var datasetColors = []string{"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f"}

func colorAt(i int) string {
	return datasetColors[i%len(datasetColors)]
}

// GetAttributionChartConfig is a bar chart of the credit per channel.
func GetAttributionChartConfig(result *attribution.Result) ChartConfig {
	labels := make([]interface{}, 0, result.Len())
	data := make([]interface{}, 0, result.Len())
	for _, entry := range result.Entries() {
		labels = append(labels, string(entry.Channel))
		data = append(data, U.RoundOff(entry.Credit))
	}
	return ChartConfig{
		Type: ChartTypeBar,
		Data: ChartData{
			Labels:   labels,
			DataSets: []Dataset{{Label: result.Model.String(), Data: data, BackgroundColor: colorAt(0)}},
		},
	}
}

// GetComparisonChartConfig groups the bars of every compared model by channel.
func GetComparisonChartConfig(comparison *attribution.Comparison) ChartConfig {
	labels := make([]interface{}, 0, len(comparison.Channels))
	for _, channel := range comparison.Channels {
		labels = append(labels, string(channel))
	}
	datasets := make([]Dataset, 0, len(comparison.Models))
	for i, model := range comparison.Models {
		data := make([]interface{}, 0, len(comparison.Channels))
		for _, channel := range comparison.Channels {
			data = append(data, U.RoundOff(comparison.Credit(model, channel)))
		}
		datasets = append(datasets, Dataset{Label: model.String(), Data: data, BackgroundColor: colorAt(i)})
	}
	return ChartConfig{Type: ChartTypeBar, Data: ChartData{Labels: labels, DataSets: datasets}}
}

// GetPathGraphChartConfig renders links as sankey flows. Sankey charts reject
// cycles, callers pass an acyclic graph.
func GetPathGraphChartConfig(graph *pathgraph.PathGraph) SankeyConfig {
	rows := make([]SankeyRow, 0, len(graph.Links))
	for _, link := range graph.Links {
		rows = append(rows, SankeyRow{From: link.Source, To: link.Target, Flow: U.RoundOff(link.Weight)})
	}
	return SankeyConfig{
		Type: ChartTypeSankey,
		Data: SankeyData{DataSets: []SankeyDataset{{Label: "Customer journeys", Data: rows}}},
	}
}

// GetTopPathsTableConfig lists paths with their volume and conversion rate.
func GetTopPathsTableConfig(paths []pathgraph.PathSummary) TableConfig {
	rows := make([]interface{}, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, map[string]interface{}{
			"path":            path.String(),
			"journeys":        path.Journeys,
			"conversions":     path.Conversions,
			"conversion_rate": U.RoundOff(path.ConversionRate),
		})
	}
	return TableConfig{
		Title: "Top paths",
		Columns: []Column{
			{Width: 300, Title: "Path", DataIndex: "path"},
			{Width: 80, Title: "Journeys", DataIndex: "journeys"},
			{Width: 80, Title: "Conversions", DataIndex: "conversions"},
			{Width: 100, Title: "Conversion rate", DataIndex: "conversion_rate"},
		},
		DataSource: rows,
	}
}
