package collector

import (
	"context"
	"fmt"

	"github.com/songzhibin97/solscout/internal/data"
	"github.com/songzhibin97/solscout/internal/utils/logger"
)

// Runner processes one source end to end
type Runner interface {
	Run(ctx context.Context, source data.TokenSource) error
}

// SequentialCollector runs every source in order, each inside its own failure boundary.
// Sources share no state; a token trending on two sources is processed twice.
type SequentialCollector struct {
	sources []data.TokenSource
	runner  Runner
	logger  logger.Logger
}

func NewSequentialCollector(sources []data.TokenSource, runner Runner, log logger.Logger) *SequentialCollector {
	return &SequentialCollector{
		sources: sources,
		runner:  runner,
		logger:  log,
	}
}

// Collect runs all sources and returns how many of them failed.
func (c *SequentialCollector) Collect(ctx context.Context) int {
	failed := 0

	for _, source := range c.sources {
		if err := c.collectOne(ctx, source); err != nil {
			c.logger.Error(fmt.Sprintf("error processing %s tokens", source.Name()), "source", source.Name(), "err", err)
			failed++
			continue
		}
		c.logger.Info("collected source", "source", source.Name())
	}

	return failed
}

func (c *SequentialCollector) collectOne(ctx context.Context, source data.TokenSource) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return c.runner.Run(ctx, source)
}
