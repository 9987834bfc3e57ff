package service

import (
	"fmt"

	"mta/filestore"
	"mta/services/disk"
	"mta/services/gcstorage"
	serviceS3 "mta/services/s3"
)

// NewFileManager returns the journey store driver for storeType.
func NewFileManager(storeType, baseDir, bucket, region string) (filestore.FileManager, error) {
	switch storeType {
	case filestore.TypeDisk:
		return disk.New(baseDir), nil
	case filestore.TypeGCS:
		return gcstorage.New(bucket)
	case filestore.TypeS3:
		return serviceS3.New(bucket, region)
	}
	return nil, fmt.Errorf("invalid journey store %q", storeType)
}
