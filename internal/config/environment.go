package config

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "LOGSEARCH"

// Environment holds the settings read from LOGSEARCH_* variables
type Environment struct {
	Debug     bool   `envconfig:"DEBUG" default:"false" desc:"Enable debug mode."`
	GraphsDir string `envconfig:"GRAPHS_DIR" default:"graphs" desc:"Directory for histogram images"`
	AwsRegion string `envconfig:"AWS_REGION" default:"eu-central-1" desc:"AWS region used for s3:// locations"`
	Timezone  string `envconfig:"TIMEZONE" default:"Local" desc:"Time zone of log timestamps and time arguments"`
}

func LoadEnvironment() (*Environment, error) {
	var env Environment
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("could not parse environment: %v", err)
	}
	return &env, nil
}

// Location is the time zone timestamps are interpreted in
func (e *Environment) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %v", e.Timezone, err)
	}
	return loc, nil
}

// Usage describes the recognized environment variables as a table
func Usage() (string, error) {
	var env Environment
	buf := new(bytes.Buffer)
	tabs := tabwriter.NewWriter(buf, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(envPrefix, &env, tabs, envconfig.DefaultTableFormat); err != nil {
		return "", err
	}
	if err := tabs.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// withEnvironmentUsage appends the environment table to the --help output of app
func withEnvironmentUsage(app *kingpin.Application) *kingpin.Application {
	usage, err := Usage()
	if err != nil {
		log.WithError(err).Debug("Could not describe environment")
		return app
	}
	return app.UsageTemplate(kingpin.DefaultUsageTemplate + "\n" + usage)
}
