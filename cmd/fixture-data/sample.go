package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/mitchellh/cli"
	"github.com/mkeeler/fixture-data/metrics"
	"github.com/mkeeler/fixture-data/sampling"
	"github.com/mkeeler/fixture-data/template"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type sampleCommand struct {
	ui           cli.Ui
	templatePath string
	samples      int
	rateLimit    float64
	workers      int
	top          int
	timeout      time.Duration
	metricsPort  int
	reportAddr   string
	levelString  string

	flags *flag.FlagSet
	help  string
}

func newSampleCommand(ui cli.Ui) cli.Command {
	c := &sampleCommand{
		ui: ui,
	}

	flags := flag.NewFlagSet("", flag.ContinueOnError)

	flags.StringVar(&c.templatePath, "template", "", "Path to the template describing the maker to sample")
	flags.IntVar(&c.samples, "samples", 10000, "Number of distinct identifying inputs to derive")
	flags.Float64Var(&c.rateLimit, "rate", 0, "Derivations per second (default: unlimited)")
	flags.IntVar(&c.workers, "workers", 0, "Number of concurrent derivation workers")
	flags.IntVar(&c.top, "top", 10, "How many of the most frequent values to print")
	flags.DurationVar(&c.timeout, "timeout", 5*time.Minute, "How long to let the sampling run take")
	flags.IntVar(&c.metricsPort, "metrics-port", 0, "listening port for metrics path /metrics (default: disabled)")
	flags.StringVar(&c.reportAddr, "report-addr", "", "address to retrieve performance measurement (default: disabled)")
	flags.StringVar(&c.levelString, "log-level", "info", fmt.Sprintf("Log level. Must be one of [%s]", logLevelChoices()))

	c.flags = flags
	c.help = genUsage(`Usage: fixture-data sample [OPTIONS]

	Sample a maker's output distribution.

	This command derives the templated maker across many distinct identifying
	inputs and reports how often each rendered value was observed, which is
	how weighted-choice probabilities are validated empirically.`, c.flags)

	return c
}

func (c *sampleCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("Failed to parse command line arguments: %v", err))
		return 1
	}

	level, err := log.ParseLevel(c.levelString)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Invalid log level choice: %s", c.levelString))
		return 1
	}
	log.SetLevel(level)

	if c.templatePath == "" {
		c.ui.Error("Must supply a template")
		return 1
	}

	m, err := template.ReadFile(c.templatePath)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error reading template: %v", err))
		return 1
	}

	// wait for signal
	signalCh := make(chan os.Signal, 10)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM, syscall.SIGPIPE)

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var metricsServer *metrics.MetricsServer
	if c.metricsPort != 0 {
		metricsAddr := fmt.Sprintf("0.0.0.0:%d", c.metricsPort)
		metricsServer = metrics.NewMetricsServer(metrics.ServerConfig{
			Addr: metricsAddr,
		})
		go func() {
			log.Infof("Starting Metric Server on %s", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("error starting metric server: %v", err)
			}
		}()
	}

	go func() {
		shutdownMetricsServer := func() {
			if metricsServer != nil {
				metricsServer.Shutdown(ctx)
			}
		}
		for {
			var sig os.Signal
			select {
			case s := <-signalCh:
				sig = s
			case <-ctx.Done():
				shutdownMetricsServer()
				return
			}

			switch sig {
			case syscall.SIGPIPE:
				continue
			default:
				log.Info("Shutting down")
				shutdownMetricsServer()
				cancel()
				return
			}
		}
	}()

	sampler, err := sampling.NewSampler(m, sampling.Config{
		Samples: c.samples,
		Rate:    rate.Limit(c.rateLimit),
		Workers: c.workers,
	}, metricsServer)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error configuring sampler: %v", err))
		return 1
	}

	start := time.Now()
	log.Info("Sampling started")
	result, err := sampler.Run(ctx)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error sampling: %v", err))
		return 1
	}
	log.Info("Sampling completed")

	c.printTop(result)

	if metricsServer != nil && c.reportAddr != "" {
		if err := metrics.SampleReport(c.reportAddr, time.Since(start)); err != nil {
			c.ui.Error(fmt.Sprintf("Error retrieving report: %v", err))
			return 1
		}
	}
	return 0
}

func (c *sampleCommand) printTop(result sampling.Result) {
	type freq struct {
		value string
		count int64
	}
	freqs := make([]freq, 0, len(result.Counts))
	for v, n := range result.Counts {
		freqs = append(freqs, freq{value: v, count: n})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].count != freqs[j].count {
			return freqs[i].count > freqs[j].count
		}
		return freqs[i].value < freqs[j].value
	})

	limit := c.top
	if limit > len(freqs) {
		limit = len(freqs)
	}
	c.ui.Output(fmt.Sprintf("%d derivations across %d distinct values", result.Total, len(result.Counts)))
	for _, f := range freqs[:limit] {
		c.ui.Output(fmt.Sprintf("%8.4f%%  %s", 100*result.Frequency(f.value), f.value))
	}
}

func (c *sampleCommand) Synopsis() string {
	return "Sample a maker's output distribution"
}

func (c *sampleCommand) Help() string {
	return c.help
}
