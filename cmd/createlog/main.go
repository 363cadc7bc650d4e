package main

import (
	"errors"
	"fmt"
	"logsearch/internal/config"
	"logsearch/internal/generator"
	"logsearch/internal/parser"
	"logsearch/internal/s3writer"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
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

	opts, err := config.ParseCreateArgs(os.Args[1:], env, parser.NewLineParser(loc), time.Now().In(loc))
	if err != nil {
		if errors.Is(err, config.ErrMissingRequiredOption) {
			fmt.Fprintln(os.Stderr, "please, provide at least file name AND list of keywords")
			fmt.Fprintln(os.Stderr, "Use 'createlog --help' to see the usage")
			os.Exit(1)
		}
		kingpin.Fatalf("%v, try --help", err)
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	dictionary, err := generator.LoadDictionary(opts.Dict)
	if err != nil {
		log.WithError(err).Fatal("Error loading dictionary")
	}
	g, err := generator.NewGenerator(rand.New(rand.NewSource(opts.Seed)), dictionary)
	if err != nil {
		log.WithError(err).Fatal("Error setting up generator")
	}

	f, err := s3writer.CreateFile(opts.File)
	if err != nil {
		log.WithError(err).Fatal("Error creating log file")
	}
	defer f.Close()

	log.WithFields(log.Fields{
		"seed":  opts.Seed,
		"words": len(dictionary),
	}).Debug("Generating log")

	err = g.Generate(f, generator.Options{
		Keywords: opts.Keywords,
		Lines:    opts.Lines,
		Start:    opts.Time,
		MinWords: opts.MinWords,
		MaxWords: opts.MaxWords,
		Delta:    opts.Delta,
	})
	if err != nil {
		log.WithError(err).Fatal("Error generating log")
	}

	fmt.Printf("Successfully created file '%s' with %d lines\n", opts.File, opts.Lines)
}
