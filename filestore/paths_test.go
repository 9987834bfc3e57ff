package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReportsDir(t *testing.T) {
	// 2024-03-05T10:00:00Z
	assert.Equal(t, "reports/2024/03/05/", GetReportsDir(1709632800))
	assert.Equal(t, "attribution_1709632800.json", GetReportFileName("attribution", 1709632800))
}
