package logcollector

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	log "github.com/sirupsen/logrus"
)

const maxRetries = 5

// S3Client is the part of s3iface.S3API the collector needs
type S3Client interface {
	HeadObject(input *s3.HeadObjectInput) (*s3.HeadObjectOutput, error)
	GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

// S3LogCollector reads a log stored as a single S3 object. The object is
// downloaded once and kept in memory for the following reads.
type S3LogCollector struct {
	s3         S3Client
	bucket     string
	key        string
	data       []byte
	retryDelay time.Duration
}

func NewS3LogCollector(api S3Client, bucket string, key string) *S3LogCollector {
	return &S3LogCollector{
		s3:         api,
		bucket:     bucket,
		key:        key,
		retryDelay: 1 * time.Second,
	}
}

func (c *S3LogCollector) Validate() error {
	if c.key == "" {
		return fmt.Errorf("%w s3://%s: missing object key", ErrUnreadableLogFile, c.bucket)
	}

	_, err := c.s3.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			return fmt.Errorf("%w %s: %s", ErrUnreadableLogFile, c.location(), aerr.Code())
		}
		return fmt.Errorf("%w %s: %v", ErrUnreadableLogFile, c.location(), err)
	}
	return nil
}

func (c *S3LogCollector) GetLogs() (io.ReadCloser, error) {
	if c.data == nil {
		data, err := c.download(maxRetries)
		if err != nil {
			return nil, err
		}
		c.data = data
	}
	return ioutil.NopCloser(bytes.NewReader(c.data)), nil
}

func (c *S3LogCollector) FirstLine() (string, error) {
	r, err := c.GetLogs()
	if err != nil {
		return "", err
	}
	defer r.Close()

	return readFirstLine(r)
}

// Name is the object key, so output files land in a local directory named after it
func (c *S3LogCollector) Name() string {
	return c.key
}

func (c *S3LogCollector) location() string {
	return fmt.Sprintf("s3://%s/%s", c.bucket, c.key)
}

func (c *S3LogCollector) download(retries int) ([]byte, error) {
	log.WithField("bucket", c.bucket).WithField("key", c.key).Info("Getting logs")

	out, err := c.s3.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableLogFile, c.location(), err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(out.Body)
	if err != nil {
		if retries >= 1 {
			log.WithField("key", c.key).WithField("retries", retries-1).Warn("Retrying because of error reading response body")
			time.Sleep(c.retryDelay)
			return c.download(retries - 1)
		}
		return nil, fmt.Errorf("could not read log data: %v", err)
	}

	return buf.Bytes(), nil
}
