package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/autofill/logger"
)

// Options represents CLI options
type Options struct {
	ConfigURL string   `short:"c" long:"cfg" description:"autofill config URL (yaml or json)"`
	Queries   []string `short:"q" long:"query" description:"dotted autofill query, can be repeated"`
	LogLevel  string   `short:"l" long:"log" description:"log level: debug, info, warn, error" default:"warn"`
	TimeoutMs int      `short:"t" long:"timeout" description:"resolution timeout in ms" default:"5000"`
	Gops      bool     `short:"g" long:"gops" description:"start gops agent"`
	Version   bool     `short:"v" long:"version" description:"Version"`
}

// Validate checks required options
func (o *Options) Validate() error {
	if o.ConfigURL == "" {
		return errors.New("config URL was empty")
	}
	if len(o.Queries) == 0 {
		return errors.New("no query specified")
	}
	switch strings.ToUpper(o.LogLevel) {
	case "", logger.DEBUG, logger.INFO, logger.WARN, logger.ERROR:
	default:
		return errors.Errorf("unsupported log level: %v", o.LogLevel)
	}
	if o.TimeoutMs <= 0 {
		return errors.Errorf("invalid timeout: %v", o.TimeoutMs)
	}
	return nil
}
