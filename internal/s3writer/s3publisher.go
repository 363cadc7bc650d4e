package s3writer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	log "github.com/sirupsen/logrus"
)

type s3Publisher struct {
	uploader   s3manageriface.UploaderAPI
	bucketName string
	s3Prefix   string
}

func NewS3Publisher(uploader s3manageriface.UploaderAPI, bucketName string, s3Prefix string) Publisher {
	return &s3Publisher{
		uploader:   uploader,
		bucketName: bucketName,
		s3Prefix:   s3Prefix,
	}
}

// Publish uploads the file at localPath under the prefix, keeping its base name
func (s *s3Publisher) Publish(localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("could not open %s: %v", localPath, err)
	}
	defer f.Close()

	key := generateKey(s.s3Prefix, localPath)
	_, err = s.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("could not upload file to S3: %v", err)
	}
	log.WithField("key", key).Info("File uploaded to S3")

	return nil
}

func generateKey(s3Prefix string, localPath string) string {
	return path.Join(s3Prefix, filepath.Base(localPath))
}
