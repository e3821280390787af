// SPDX-License-Identifier: MIT

// Package logger builds the logrus loggers used by the simulation and its
// driver.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variables read by New.
const (
	EnvLevel  = "LOG_LEVEL"
	EnvFormat = "LOG_FORMAT"
)

// New returns a logger configured from the environment, writing to stdout.
//
// LOG_LEVEL selects the level (default "info"; "debug" logs every step).
// LOG_FORMAT=json selects JSON output for log collection; anything else
// gives human-readable text with full timestamps.
func New() *logrus.Logger {
	return NewWith(os.Getenv, os.Stdout)
}

// NewWith is New with an explicit environment lookup and output.
func NewWith(getenv func(string) string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(getenv(EnvLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(getenv(EnvFormat)) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(out)
	return log
}

// Discard returns a logger that drops everything. Library code uses it when
// the caller supplies no logger.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
