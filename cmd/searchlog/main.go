package main

import (
	"errors"
	"fmt"
	"logsearch/internal/config"
	"logsearch/internal/histogram"
	"logsearch/internal/interval"
	"logsearch/internal/logcollector"
	"logsearch/internal/matcher"
	"logsearch/internal/parser"
	"logsearch/internal/processor"
	"logsearch/internal/render"
	"logsearch/internal/s3writer"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	terminalWidth  = 60
	terminalHeight = 12
)

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}

	loc, err := env.Location()
	if err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}
	p := parser.NewLineParser(loc)

	opts, err := config.ParseSearchArgs(os.Args[1:], env, p)
	if err != nil {
		if errors.Is(err, config.ErrMissingRequiredOption) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "Use 'searchlog --help' to see the usage")
			os.Exit(1)
		}
		kingpin.Fatalf("%v, try --help", err)
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// AWS is only touched when the log or the publish target lives in S3
	var sess *session.Session
	if logcollector.IsS3Location(opts.LogFile) || opts.Publish != "" {
		sess = session.Must(session.NewSession(&aws.Config{
			Region: aws.String(env.AwsRegion),
		}))
	}

	var s3Client logcollector.S3Client
	if sess != nil && logcollector.IsS3Location(opts.LogFile) {
		s3Client = s3.New(sess)
	}

	lc, err := logcollector.New(opts.LogFile, s3Client)
	if err != nil {
		log.WithError(err).Fatal("Error setting up log source")
	}
	if err := lc.Validate(); err != nil {
		log.WithError(err).Fatal("Log file can not be read")
	}

	firstLine, err := lc.FirstLine()
	if err != nil {
		log.WithError(err).Fatal("Log file can not be read")
	}
	window, err := interval.NewResolver(p).Resolve(firstLine, opts.Start, opts.Finish, opts.SnapToMidnight)
	if err != nil {
		log.WithError(err).Fatal("Error resolving search interval")
	}

	m, err := matcher.NewKeywordMatcher(opts.Keywords, opts.CaseInsensitive)
	if err != nil {
		log.WithError(err).Fatal("Error setting up keywords")
	}

	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = s3writer.MakeFilename(lc.Name(), "only", m.Keywords())
	}
	sink, err := s3writer.CreateFile(outputFile)
	if err != nil {
		log.WithError(err).Fatal("Error creating output file")
	}

	record, err := processor.NewProcessor(lc, p, m, sink).Process(window)
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		log.WithError(err).Fatal("Error scanning log")
	}

	if record.Lines > 0 {
		fmt.Printf("Found %d lines\n", record.Lines)
	} else {
		fmt.Println("No log entries were found")
	}

	produced := []string{outputFile}
	var writer s3writer.Writer = s3writer.NewFileWriter(lc.Name(), m.Keywords())
	if opts.PersistIntermediate {
		path, err := writer.WriteMatchRecord(record)
		if err != nil {
			log.WithError(err).Fatal("Error writing matches")
		}
		produced = append(produced, path)
	}

	if opts.MakeHistogram {
		table, err := histogram.Aggregate(record, m.Keywords(), window.Start, opts.BucketWidth())
		if err != nil {
			log.WithError(err).Fatal("Error building histograms")
		}

		if opts.PersistIntermediate {
			path, err := writer.WriteHistogramTable(table)
			if err != nil {
				log.WithError(err).Fatal("Error writing histograms")
			}
			produced = append(produced, path)
		}

		png := render.NewPNGRenderer(opts.GraphsDir)
		renderers := []render.Renderer{png}
		if opts.Terminal {
			renderers = append(renderers, render.NewTerminalRenderer(os.Stdout, terminalWidth, terminalHeight))
		}
		for _, h := range table.Histograms {
			for _, r := range renderers {
				if err := r.Render(h, table.Delta); err != nil {
					log.WithError(err).WithField("keyword", h.Keyword).Fatal("Error rendering histogram")
				}
			}
			if !h.Empty() {
				produced = append(produced, png.Path(h.Keyword))
			}
		}
	}

	if opts.Publish != "" {
		bucket, prefix, err := logcollector.ParseS3Location(opts.Publish)
		if err != nil {
			log.WithError(err).Fatal("Error parsing publish location")
		}
		publisher := s3writer.NewS3Publisher(s3manager.NewUploader(sess), bucket, prefix)
		for _, path := range produced {
			if err := publisher.Publish(path); err != nil {
				log.WithError(err).WithField("file", path).Fatal("Error publishing file")
			}
		}
		log.WithField("files", len(produced)).Infof("Published results to %s", opts.Publish)
	}
}
