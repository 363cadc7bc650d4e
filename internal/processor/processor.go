package processor

import (
	"bufio"
	"fmt"
	"io"
	"logsearch/internal/entity"
	"logsearch/internal/logcollector"
	"logsearch/internal/matcher"
	"logsearch/internal/parser"
	"strings"

	"github.com/sirupsen/logrus"
)

type Processor struct {
	logcollector logcollector.LogCollector
	Parser       parser.Parser
	Matcher      matcher.Matcher
	Sink         io.Writer
}

func NewProcessor(lc logcollector.LogCollector, p parser.Parser, m matcher.Matcher, sink io.Writer) *Processor {
	return &Processor{
		logcollector: lc,
		Parser:       p,
		Matcher:      m,
		Sink:         sink,
	}
}

// Process scans the collector's log within window
func (p *Processor) Process(window entity.ScanWindow) (*entity.MatchRecord, error) {
	logLines, err := p.logcollector.GetLogs()
	if err != nil {
		return nil, fmt.Errorf("could not open log: %w", err)
	}
	defer logLines.Close()

	record, err := p.Scan(logLines, window)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"log":           p.logcollector.Name(),
		"matched_lines": record.Lines,
		"timestamps":    record.Len(),
	}).Info("Processing log is finished")

	return record, nil
}

// Scan reads data line by line. Every line inside window that matches a
// keyword is written to the sink unchanged and recorded under its timestamp.
// A line with a malformed timestamp aborts the scan.
func (p *Processor) Scan(data io.Reader, window entity.ScanWindow) (*entity.MatchRecord, error) {
	record := entity.NewMatchRecord()
	reader := bufio.NewReader(data)
	lineNumber := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return record, fmt.Errorf("could not read log: %v", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNumber++

		timestamp, err := p.Parser.ParseTimestamp(line)
		if err != nil {
			return record, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		if window.Contains(timestamp) {
			if keyword, ok := p.Matcher.Match(line); ok {
				if err := p.writeLine(line); err != nil {
					return record, err
				}
				record.Add(timestamp, keyword)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return record, nil
}

func (p *Processor) writeLine(line string) error {
	if p.Sink == nil {
		return nil
	}
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := io.WriteString(p.Sink, line); err != nil {
		return fmt.Errorf("could not write matched line: %v", err)
	}
	return nil
}
