package filestore

import (
	"fmt"
	"time"
)

const (
	JourneysDir = "journeys/"
	ReportsDir  = "reports/"
)

// GetReportsDir partitions reports by the UTC day they were generated on.
func GetReportsDir(timestamp int64) string {
	year, month, date := time.Unix(timestamp, 0).UTC().Date()
	return fmt.Sprintf("%s%d/%02d/%02d/", ReportsDir, year, int(month), date)
}

// GetReportFileName suffixes the report name with its generation time.
func GetReportFileName(reportName string, timestamp int64) string {
	return fmt.Sprintf("%s_%d.json", reportName, timestamp)
}
