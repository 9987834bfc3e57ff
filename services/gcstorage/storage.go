package gcstorage

import (
	"context"
	"io"

	"mta/filestore"

	"cloud.google.com/go/storage"
	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var _ filestore.FileManager = (*GCSDriver)(nil)

type GCSDriver struct {
	client     *storage.Client
	BucketName string
}

func New(bucketName string) (*GCSDriver, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, E.Wrap(err, "failed to create storage client")
	}
	d := &GCSDriver{
		BucketName: bucketName,
		client:     client,
	}
	return d, nil
}

func (gcsd *GCSDriver) Create(dir, fileName string, reader io.Reader) error {
	log.WithFields(log.Fields{
		"Dir":        dir,
		"FileName":   fileName,
		"BucketName": gcsd.BucketName,
	}).Debug("GCSDriver Creating file")

	ctx := context.Background()
	obj := gcsd.client.Bucket(gcsd.BucketName).Object(dir + fileName)
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, reader); err != nil {
		w.Close()
		return err
	}
	err := w.Close()
	return err
}

func (gcsd *GCSDriver) Get(dir, fileName string) (io.ReadCloser, error) {
	ctx := context.Background()
	obj := gcsd.client.Bucket(gcsd.BucketName).Object(dir + fileName)
	rc, err := obj.NewReader(ctx)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (gcsd *GCSDriver) GetBucketName() string {
	return gcsd.BucketName
}

func (gcsd *GCSDriver) GetJourneysDir() string {
	return filestore.JourneysDir
}

func (gcsd *GCSDriver) GetJourneysFilePathAndName(fileName string) (string, string) {
	return gcsd.GetJourneysDir(), fileName
}

func (gcsd *GCSDriver) GetReportsFilePathAndName(reportName string, timestamp int64) (string, string) {
	return filestore.GetReportsDir(timestamp), filestore.GetReportFileName(reportName, timestamp)
}

func (gcsd *GCSDriver) Close() error {
	return gcsd.client.Close()
}
