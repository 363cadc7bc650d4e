package s3writer

import (
	"fmt"
	"logsearch/internal/entity"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Dump records for the YAML files
type matchDump struct {
	Timestamp string   `yaml:"timestamp"`
	Keywords  []string `yaml:"keywords,flow"`
}

type matchRecordDump struct {
	Lines   int         `yaml:"lines"`
	Matches []matchDump `yaml:"matches"`
}

type bucketDump struct {
	End   string `yaml:"end"`
	Count int    `yaml:"count"`
}

type keywordHistogramDump struct {
	Keyword string       `yaml:"keyword"`
	Buckets []bucketDump `yaml:"buckets"`
}

type histogramTableDump struct {
	Start        string                 `yaml:"start"`
	DeltaSeconds int64                  `yaml:"delta_seconds"`
	Histograms   []keywordHistogramDump `yaml:"histograms"`
}

// FileWriter writes dumps to the results folder of the log
type FileWriter struct {
	logFile  string
	keywords []string
}

func NewFileWriter(logFile string, keywords []string) *FileWriter {
	return &FileWriter{
		logFile:  logFile,
		keywords: keywords,
	}
}

func (w *FileWriter) WriteMatchRecord(record *entity.MatchRecord) (string, error) {
	dump := matchRecordDump{
		Lines:   record.Lines,
		Matches: make([]matchDump, 0, record.Len()),
	}
	for _, m := range record.Matches() {
		dump.Matches = append(dump.Matches, matchDump{
			Timestamp: entity.FormatTimestamp(m.Timestamp),
			Keywords:  m.Keywords,
		})
	}

	path := MakeFilename(w.logFile, "data", w.keywords)
	return path, w.write(path, dump)
}

func (w *FileWriter) WriteHistogramTable(table *entity.HistogramTable) (string, error) {
	dump := histogramTableDump{
		Start:        entity.FormatTimestamp(table.Start),
		DeltaSeconds: int64(table.Delta / time.Second),
		Histograms:   make([]keywordHistogramDump, 0, len(table.Histograms)),
	}
	for _, h := range table.Histograms {
		kd := keywordHistogramDump{Keyword: h.Keyword}
		for _, b := range h.Buckets {
			end := "0"
			if !b.IsSentinel() {
				end = entity.FormatTimestamp(b.End)
			}
			kd.Buckets = append(kd.Buckets, bucketDump{End: end, Count: b.Count})
		}
		dump.Histograms = append(dump.Histograms, kd)
	}

	path := MakeFilename(w.logFile, "freq", w.keywords)
	return path, w.write(path, dump)
}

func (w *FileWriter) write(path string, dump interface{}) error {
	f, err := CreateFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return fmt.Errorf("could not write %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not write %s: %v", path, err)
	}

	log.WithField("path", path).Debug("Dump written")
	return nil
}
