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

// Command bucketgen prints histogram bucket layouts, or serves histograms
// using them on /metrics so the layouts can be inspected by a Prometheus
// server.
//
// Examples:
//
//	bucketgen -type loglinear -base 10 -smallest-magnitude -3 -largest-magnitude 1 -buckets-per-magnitude 4
//	bucketgen -config.file histograms.yaml -output json
//	bucketgen -config.file histograms.yaml -web.listen-address :9099
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/efficientgo/core/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/version"

	"github.com/prometheus/histbuckets/histogram"
	"github.com/prometheus/histbuckets/internal/config"
)

const program = "bucketgen"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	err := runMain(os.Args[1:], os.Stdout, os.Stderr)
	code := exitCode(err)
	if code != 0 {
		// Use %+v for github.com/efficientgo/core/errors error to print with stack.
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
	}
	os.Exit(code)
}

// exitCode maps the result of runMain to the process exit code. Asking for
// usage with -h is not a failure.
func exitCode(err error) int {
	if err == nil || stderrors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func runMain(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.ParseOptions(args, stderr)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Fprintln(stdout, version.Print(program))
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	if cfg.ListenAddress == "" {
		return render(stdout, cfg, logger)
	}

	reg := prometheus.NewRegistry()
	if err := registerHistograms(reg, cfg.Histograms); err != nil {
		return err
	}
	return serve(context.Background(), cfg.ListenAddress, reg, logger)
}

// layout is the rendered form of one configured histogram.
type layout struct {
	Name    string    `json:"name"`
	Layout  string    `json:"layout"`
	Buckets []float64 `json:"buckets"`
}

func generate(hs []config.Histogram, logger *slog.Logger) ([]layout, error) {
	out := make([]layout, 0, len(hs))
	for _, h := range hs {
		b, err := h.Buckets.Generate()
		if err != nil {
			return nil, errors.Wrapf(err, "histogram %q", h.FQName())
		}
		logger.Debug("generated buckets", "histogram", h.FQName(), "layout", h.Buckets.String(), "count", len(b))
		out = append(out, layout{Name: h.FQName(), Layout: h.Buckets.String(), Buckets: b})
	}
	return out, nil
}

// render writes the bucket bounds of every configured histogram to w.
func render(w io.Writer, cfg config.Config, logger *slog.Logger) error {
	ls, err := generate(cfg.Histograms, logger)
	if err != nil {
		return err
	}

	if strings.EqualFold(cfg.Output, config.OutputJSON) {
		b, err := json.MarshalIndent(ls, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal buckets")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	for _, l := range ls {
		bounds := make([]string, len(l.Buckets))
		for i, b := range l.Buckets {
			bounds[i] = strconv.FormatFloat(b, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", l.Name, l.Layout, strings.Join(bounds, " ")); err != nil {
			return err
		}
	}
	return nil
}

// registerHistograms registers one histogram, or histogram vector if labels
// are configured, per configured layout.
func registerHistograms(reg prometheus.Registerer, hs []config.Histogram) error {
	for _, h := range hs {
		var (
			c   prometheus.Collector
			err error
		)
		if len(h.Labels) > 0 {
			c, err = histogram.NewHistogramVec(h.Opts(), h.Buckets, h.Labels)
		} else {
			c, err = histogram.NewHistogram(h.Opts(), h.Buckets)
		}
		if err != nil {
			return err
		}
		if err := reg.Register(c); err != nil {
			return errors.Wrapf(err, "register histogram %q", h.FQName())
		}
	}
	return nil
}

func newHandler(reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
		Registry: reg,
	}))
	return m
}

func serve(ctx context.Context, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	srv := http.Server{Addr: addr, Handler: newHandler(reg, logger)}

	g := &run.Group{}
	g.Add(func() error {
		logger.Info("starting HTTP server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "starting web server")
		}
		return nil
	}, func(error) {
		if err := srv.Close(); err != nil {
			logger.Error("failed to stop web server", "err", err)
		}
	})
	g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	err := g.Run()
	if _, ok := err.(run.SignalError); ok {
		logger.Info("received signal, exiting", "signal", err)
		return nil
	}
	return err
}
