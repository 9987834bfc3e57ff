package disk

import (
	"io"
	"os"
	"strings"

	"mta/filestore"

	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var _ filestore.FileManager = (*DiskDriver)(nil)

type DiskDriver struct {
	// This can be used as namespace
	// to differentiate files across multiple instances of DiskDriver
	// Analogus to bucket name
	baseDir string
}

func New(baseDir string) *DiskDriver {
	return &DiskDriver{baseDir: strings.TrimSuffix(baseDir, "/")}
}

func MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func withSeparator(path string) string {
	if !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}

func (dd *DiskDriver) Create(path, fileName string, reader io.Reader) error {
	err := MkdirAll(path)
	if err != nil {
		log.WithError(err).Errorln("Failed to create dir")
		return err
	}

	file, err := os.Create(withSeparator(path) + fileName)
	if err != nil {
		return E.Wrap(err, "failed to create file")
	}
	defer file.Close()
	_, err = io.Copy(file, reader)
	return err
}

// Get opens a file in read only mode.
// Caller should take care of closing the returned io.ReadCloser.
func (dd *DiskDriver) Get(path, fileName string) (io.ReadCloser, error) {
	log.WithFields(log.Fields{
		"Path":     path,
		"FileName": fileName,
	}).Debug("DiskDriver Opening file")

	file, err := os.OpenFile(withSeparator(path)+fileName, os.O_RDONLY, 0444)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (dd *DiskDriver) GetBucketName() string {
	return dd.baseDir
}

func (dd *DiskDriver) GetJourneysDir() string {
	return withSeparator(dd.baseDir) + filestore.JourneysDir
}

func (dd *DiskDriver) GetJourneysFilePathAndName(fileName string) (string, string) {
	return dd.GetJourneysDir(), fileName
}

func (dd *DiskDriver) GetReportsFilePathAndName(reportName string, timestamp int64) (string, string) {
	path := withSeparator(dd.baseDir) + filestore.GetReportsDir(timestamp)
	return path, filestore.GetReportFileName(reportName, timestamp)
}

// ListFiles List files present in a directory.
func (dd *DiskDriver) ListFiles(path string) []string {
	var files []string
	fileObjects, err := os.ReadDir(path)
	if err != nil {
		log.WithError(err).Errorln("Failed to read directory contents")
		return files
	}

	for _, file := range fileObjects {
		if !file.IsDir() {
			files = append(files, file.Name())
		}
	}
	return files
}
