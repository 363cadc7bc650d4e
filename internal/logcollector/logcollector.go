package logcollector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnreadableLogFile = errors.New("unable to read log file")

// LogCollector gives access to the raw lines of one log
type LogCollector interface {
	// Validate fails with ErrUnreadableLogFile when the log cannot be read
	Validate() error
	GetLogs() (io.ReadCloser, error)
	FirstLine() (string, error)
	// Name is the path used to derive output file names
	Name() string
}

// New picks the collector for a local path or an s3://bucket/key location
func New(location string, s3Client S3Client) (LogCollector, error) {
	if !IsS3Location(location) {
		return NewFileLogCollector(location), nil
	}
	bucket, key, err := ParseS3Location(location)
	if err != nil {
		return nil, err
	}
	if s3Client == nil {
		return nil, fmt.Errorf("no S3 client configured for %s", location)
	}
	return NewS3LogCollector(s3Client, bucket, key), nil
}

func IsS3Location(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// ParseS3Location splits s3://bucket/key into bucket and key. The key may be empty.
func ParseS3Location(location string) (string, string, error) {
	if !IsS3Location(location) {
		return "", "", fmt.Errorf("not an s3 location: %s", location)
	}
	rest := strings.TrimPrefix(location, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" {
		return "", "", fmt.Errorf("missing bucket in %s", location)
	}
	if len(parts) == 1 {
		return parts[0], "", nil
	}
	return parts[0], strings.Trim(parts[1], "/"), nil
}

func readFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("could not read first line: %v", err)
	}
	return line, nil
}
