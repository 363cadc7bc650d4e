package s3writer

import "logsearch/internal/entity"

// Writer persists the intermediate results of a search as flat files
type Writer interface {
	WriteMatchRecord(record *entity.MatchRecord) (string, error)
	WriteHistogramTable(table *entity.HistogramTable) (string, error)
}

// Publisher copies a produced file somewhere else
type Publisher interface {
	Publish(path string) error
}
