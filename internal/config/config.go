// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the configuration of the bucketgen command. It is read
// from an optional YAML file and from flags, where flags override the file.
package config

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/efficientgo/core/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v2"

	"github.com/prometheus/histbuckets/buckets"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Histogram is one named bucket layout.
type Histogram struct {
	Namespace   string            `yaml:"namespace,omitempty"`
	Subsystem   string            `yaml:"subsystem,omitempty"`
	Name        string            `yaml:"name"`
	Help        string            `yaml:"help,omitempty"`
	Labels      []string          `yaml:"labels,omitempty"`
	ConstLabels map[string]string `yaml:"const_labels,omitempty"`
	Buckets     buckets.Params    `yaml:"buckets"`
}

// FQName returns the fully-qualified metric name of the histogram.
func (h Histogram) FQName() string {
	return prometheus.BuildFQName(h.Namespace, h.Subsystem, h.Name)
}

// Opts returns the Prometheus options of the histogram without buckets.
func (h Histogram) Opts() prometheus.HistogramOpts {
	help := h.Help
	if help == "" {
		help = "Histogram with " + h.Buckets.String() + " buckets."
	}
	return prometheus.HistogramOpts{
		Namespace:   h.Namespace,
		Subsystem:   h.Subsystem,
		Name:        h.Name,
		Help:        help,
		ConstLabels: h.ConstLabels,
	}
}

// Config is the complete bucketgen configuration.
type Config struct {
	Histograms    []Histogram `yaml:"histograms"`
	Output        string      `yaml:"output,omitempty"`
	ListenAddress string      `yaml:"listen_address,omitempty"`
	LogLevel      string      `yaml:"log_level,omitempty"`

	// ShowVersion is only settable by flag.
	ShowVersion bool `yaml:"-"`
}

// Parse decodes a YAML configuration. Unknown fields are rejected.
func Parse(b []byte) (Config, error) {
	c := Config{}
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return c, errors.Wrap(err, "parse YAML configuration")
	}
	return c, nil
}

// Load reads and decodes the YAML configuration file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read configuration file %s", path)
	}
	c, err := Parse(b)
	if err != nil {
		return c, errors.Wrapf(err, "configuration file %s", path)
	}
	return c, nil
}

// ParseOptions parses command line arguments, without the program name, and
// merges them with the configuration file given by -config.file, if any.
// Scalar flags override the file. A layout given by -type is appended to the
// histograms of the file under the name given by -name. Usage and flag
// parsing errors are written to usage.
func ParseOptions(args []string, usage io.Writer) (Config, error) {
	fs := flag.NewFlagSet("bucketgen", flag.ContinueOnError)
	fs.SetOutput(usage)

	var (
		configFile    = fs.String("config.file", "", "YAML configuration with the histograms to generate. Flags override the configuration items.")
		output        = fs.String("output", "", "Output format, 'text' or 'json'. Defaults to text.")
		listenAddress = fs.String("web.listen-address", "", "If set, serve the configured histograms on /metrics at this address instead of printing them.")
		logLevel      = fs.String("log.level", "", "Only log messages with the given severity or above. One of: debug, info, warn, error.")
		showVersion   = fs.Bool("version", false, "Print version information and exit.")

		name   = fs.String("name", "buckets", "Name of the histogram generated from flags.")
		help   = fs.String("help-text", "", "Help text of the histogram generated from flags.")
		layout = buckets.Params{}
		typ    = fs.String("type", "", "Bucket layout generated from flags: linear, exponential or loglinear.")
	)
	fs.Float64Var(&layout.Start, "start", 0, "Upper bound of the lowest bucket (linear, exponential).")
	fs.Float64Var(&layout.Width, "width", 0, "Width of every bucket (linear).")
	fs.Float64Var(&layout.Factor, "factor", 0, "Growth factor between consecutive bounds (exponential).")
	fs.IntVar(&layout.Count, "count", 0, "Number of buckets (linear, exponential).")
	fs.Float64Var(&layout.Base, "base", 0, "Logarithmic base (loglinear).")
	fs.IntVar(&layout.SmallestMagnitude, "smallest-magnitude", 0, "Lowest magnitude (loglinear).")
	fs.IntVar(&layout.LargestMagnitude, "largest-magnitude", 0, "Highest magnitude (loglinear).")
	fs.IntVar(&layout.BucketsPerMagnitude, "buckets-per-magnitude", 0, "Number of buckets within every magnitude (loglinear).")

	c := Config{}
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, errors.Newf("unexpected arguments: %v", fs.Args())
	}

	if *configFile != "" {
		var err error
		if c, err = Load(*configFile); err != nil {
			return c, err
		}
	}
	if *output != "" {
		c.Output = *output
	}
	if *listenAddress != "" {
		c.ListenAddress = *listenAddress
	}
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}
	c.ShowVersion = *showVersion
	if *typ != "" {
		layout.Type = buckets.Algorithm(*typ)
		c.Histograms = append(c.Histograms, Histogram{Name: *name, Help: *help, Buckets: layout})
	}
	return c, nil
}

// Level returns the configured log level, info by default.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return l, nil
}

// Validate checks that every histogram has a unique valid name and a layout
// that generates, and that output format and log level are known.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "", OutputText, OutputJSON:
	default:
		return errors.Newf("unknown output format %q, expected %q or %q", c.Output, OutputText, OutputJSON)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if len(c.Histograms) == 0 {
		return errors.New("no histograms configured, set -config.file or -type")
	}
	seen := make(map[string]struct{}, len(c.Histograms))
	for i, h := range c.Histograms {
		if h.Name == "" {
			return errors.Newf("histogram %d: name is required", i)
		}
		fq := h.FQName()
		if _, ok := seen[fq]; ok {
			return errors.Newf("histogram %q configured more than once", fq)
		}
		seen[fq] = struct{}{}
		if _, err := h.Buckets.Generate(); err != nil {
			return errors.Wrapf(err, "histogram %q", fq)
		}
	}
	return nil
}
