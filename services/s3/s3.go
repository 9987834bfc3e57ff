package s3

import (
	"io"

	"mta/filestore"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	E "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var _ filestore.FileManager = (*S3Driver)(nil)

type S3Driver struct {
	s3         *s3.S3
	uploader   *s3manager.Uploader
	BucketName string
	Region     string
}

func New(bucketName, region string) (*S3Driver, error) {
	sess, err := session.NewSession(aws.NewConfig().WithRegion(region))
	if err != nil {
		return nil, E.Wrap(err, "failed to create aws session")
	}
	return &S3Driver{
		s3:         s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		BucketName: bucketName,
		Region:     region,
	}, nil
}

// GetKey joins dir and file name, dir is expected to end with a separator.
func GetKey(dir, fileName string) string {
	return dir + fileName
}

func (sd *S3Driver) Create(dir, fileName string, reader io.Reader) error {
	log.WithFields(log.Fields{
		"Dir":        dir,
		"BucketName": sd.BucketName,
		"Region":     sd.Region,
	}).Debug("S3Driver Creating file")

	_, err := sd.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(sd.BucketName),
		Key:         aws.String(GetKey(dir, fileName)),
		Body:        reader,
		ContentType: aws.String("application/json"),
	})
	return err
}

func (sd *S3Driver) Get(dir, fileName string) (io.ReadCloser, error) {
	input := s3.GetObjectInput{
		Bucket: aws.String(sd.BucketName),
		Key:    aws.String(GetKey(dir, fileName)),
	}
	op, err := sd.s3.GetObject(&input)
	if err != nil {
		return nil, err
	}
	return op.Body, nil
}

func (sd *S3Driver) GetBucketName() string {
	return sd.BucketName
}

func (sd *S3Driver) GetJourneysDir() string {
	return filestore.JourneysDir
}

func (sd *S3Driver) GetJourneysFilePathAndName(fileName string) (string, string) {
	return sd.GetJourneysDir(), fileName
}

func (sd *S3Driver) GetReportsFilePathAndName(reportName string, timestamp int64) (string, string) {
	return filestore.GetReportsDir(timestamp), filestore.GetReportFileName(reportName, timestamp)
}
