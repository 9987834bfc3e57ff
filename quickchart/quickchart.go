package quickchart

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	quickchartgo "github.com/henomis/quickchart-go"
	log "github.com/sirupsen/logrus"
)

const (
	ChartTypeBar    = "bar"
	ChartTypeSankey = "sankey"
)

type ChartConfig struct {
	Type string    `json:"type"`
	Data ChartData `json:"data"`
}
type ChartData struct {
	Labels   []interface{} `json:"labels"`
	DataSets []Dataset     `json:"datasets"`
}
type Dataset struct {
	Label           string        `json:"label"`
	Data            []interface{} `json:"data"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
}

type SankeyConfig struct {
	Type string     `json:"type"`
	Data SankeyData `json:"data"`
}
type SankeyData struct {
	DataSets []SankeyDataset `json:"datasets"`
}
type SankeyDataset struct {
	Label string      `json:"label"`
	Data  []SankeyRow `json:"data"`
}
type SankeyRow struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Flow float64 `json:"flow"`
}

type TableConfig struct {
	Title      string        `json:"title"`
	Columns    []Column      `json:"columns"`
	DataSource []interface{} `json:"dataSource"`
}
type Column struct {
	Width     int    `json:"width"`
	Title     string `json:"title"`
	DataIndex string `json:"dataIndex"`
}

// GetChartImageUrlForConfig accepts a ChartConfig or a SankeyConfig.
func GetChartImageUrlForConfig(config interface{}) (string, error) {
	bytes, err := json.Marshal(config)
	if err != nil {
		log.WithError(err).Error("failed to marshal chart config")
		return "", errors.New("failed to get chart url from quickchart")
	}
	qc := quickchartgo.New()
	qc.Config = string(bytes)
	chartUrl, err := qc.GetUrl()
	if err != nil {
		log.WithError(err).Error("failed to get chart url from quickchart")
		return "", errors.New("failed to get chart url from quickchart")
	}
	return chartUrl, nil
}

func GetTableURLfromTableConfig(config TableConfig) (string, error) {
	bytes, err := json.Marshal(config)
	if err != nil {
		return "", errors.New("failed to marshal table config")
	}
	return fmt.Sprintf("https://api.quickchart.io/v1/table?data=%s", url.QueryEscape(string(bytes))), nil
}
