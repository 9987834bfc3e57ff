package filestore

import (
	"io"
)

const (
	TypeDisk = "disk"
	TypeGCS  = "gcs"
	TypeS3   = "s3"
)

// FileManager is where journey files are read from and reports written to.
type FileManager interface {
	Create(dir, fileName string, reader io.Reader) error
	// Caller should take care of closing the returned io.ReadCloser.
	Get(dir, fileName string) (io.ReadCloser, error)
	GetBucketName() string
	GetJourneysDir() string
	GetJourneysFilePathAndName(fileName string) (string, string)
	GetReportsFilePathAndName(reportName string, timestamp int64) (string, string)
}
