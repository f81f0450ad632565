package sampling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkeeler/fixture-data/maker"
	"github.com/mkeeler/fixture-data/metrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Result is the aggregate of one sampling run.
type Result struct {
	// Counts maps each rendered value to how often it was derived.
	Counts map[string]int64

	// Total is the number of successful derivations.
	Total int64
}

// Frequency returns the observed selection frequency of a rendered value.
func (r Result) Frequency(value string) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Counts[value]) / float64(r.Total)
}

// Sampler derives a maker across generated inputs, optionally rate limited
// and instrumented.
type Sampler struct {
	conf          Config
	m             maker.Maker
	metricsServer *metrics.MetricsServer

	mu     sync.Mutex
	counts map[string]int64
	total  int64
}

// NewSampler validates conf and builds a sampler for m. metricsServer may
// be nil.
func NewSampler(m maker.Maker, conf Config, metricsServer *metrics.MetricsServer) (*Sampler, error) {
	if err := conf.Normalize(); err != nil {
		return nil, err
	}
	return &Sampler{
		conf:          conf,
		m:             m,
		metricsServer: metricsServer,
		counts:        make(map[string]int64),
	}, nil
}

// Run performs the sampling run. Inputs are "<prefix>-0" through
// "<prefix>-<samples-1>"; worker scheduling never affects derived values,
// only their observation order.
func (s *Sampler) Run(ctx context.Context) (Result, error) {
	var limiter *rate.Limiter
	if s.conf.Rate > 0 {
		limiter = rate.NewLimiter(s.conf.Rate, int(s.conf.Rate*10))
	}

	inputs := make(chan string)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(inputs)
		for i := 0; i < s.conf.Samples; i++ {
			select {
			case inputs <- fmt.Sprintf("%s-%d", s.conf.InputPrefix, i):
			case <-grpCtx.Done():
				return grpCtx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.conf.Workers; w++ {
		grp.Go(func() error {
			for input := range inputs {
				if limiter != nil {
					if err := limiter.Wait(grpCtx); err != nil {
						return err
					}
				}
				if err := s.sampleOne(input); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	log.Debugf("sampled %d derivations across %d distinct values", s.total, len(s.counts))
	return Result{Counts: s.counts, Total: s.total}, nil
}

func (s *Sampler) sampleOne(input string) error {
	start := time.Now()
	v, err := maker.Generate(s.m, input)
	duration := time.Since(start)

	if s.metricsServer != nil {
		if err == nil {
			s.metricsServer.IncLatencyHistogram(duration, "success")
		} else {
			s.metricsServer.IncLatencyHistogram(duration, "error")
		}
	}
	if err != nil {
		return fmt.Errorf("error deriving %q: %w", input, err)
	}

	rendered := fmt.Sprint(v)
	if s.metricsServer != nil {
		s.metricsServer.IncObservedValue(rendered)
	}

	s.mu.Lock()
	s.counts[rendered]++
	s.total++
	s.mu.Unlock()
	return nil
}
