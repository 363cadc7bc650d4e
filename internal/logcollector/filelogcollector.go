package logcollector

import (
	"fmt"
	"io"
	"os"
)

type FileLogCollector struct {
	path string
}

func NewFileLogCollector(path string) *FileLogCollector {
	return &FileLogCollector{
		path: path,
	}
}

func (c *FileLogCollector) Validate() error {
	info, err := os.Stat(c.path)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrUnreadableLogFile, c.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w %s: is a directory", ErrUnreadableLogFile, c.path)
	}
	return nil
}

func (c *FileLogCollector) GetLogs() (io.ReadCloser, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnreadableLogFile, c.path, err)
	}
	return f, nil
}

func (c *FileLogCollector) FirstLine() (string, error) {
	f, err := c.GetLogs()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return readFirstLine(f)
}

func (c *FileLogCollector) Name() string {
	return c.path
}
