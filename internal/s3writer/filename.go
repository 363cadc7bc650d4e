package s3writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MakeFilename places a result file next to the log, in its "results" folder:
// MakeFilename("logs/test_log.txt", "only", ["ERROR", "THIS"]) is
// "logs/results/test_log_only_ERROR_THIS.txt".
func MakeFilename(logFile string, description string, keywords []string) string {
	base := filepath.Base(logFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_%s_%s.txt", base, description, strings.Join(keywords, "_"))
	return filepath.Join(filepath.Dir(logFile), "results", name)
}

// CreateFile creates path, and its directory if needed, truncating an existing file
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create directory for %s: %v", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not create %s: %v", path, err)
	}
	return f, nil
}
