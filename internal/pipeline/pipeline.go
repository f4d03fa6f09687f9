package pipeline

import (
	"context"
	"fmt"

	"github.com/songzhibin97/solscout/internal/data"
	"github.com/songzhibin97/solscout/internal/filter"
	"github.com/songzhibin97/solscout/internal/notify"
	"github.com/songzhibin97/solscout/internal/risk"
	"github.com/songzhibin97/solscout/internal/social"
	"github.com/songzhibin97/solscout/internal/utils/logger"
)

// Pipeline runs fetch -> filter -> rugcheck -> tweetscout -> notify for one source at a time
type Pipeline struct {
	safety   *risk.SafetyChecker
	social   social.Fetcher
	notifier notify.Notifier
	logger   logger.Logger
}

func New(
	reports risk.ReportFetcher,
	socialFetcher social.Fetcher,
	notifier notify.Notifier,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		safety:   risk.NewSafetyChecker(reports, log),
		social:   socialFetcher,
		notifier: notifier,
		logger:   log,
	}
}

// Run processes a single source end to end.
func (p *Pipeline) Run(ctx context.Context, source data.TokenSource) error {
	name := source.Name()

	// 1. 拉取热门代币
	p.logger.Info("fetching trending tokens", "source", name)
	tokens, err := source.FetchTrending(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch %s trending tokens: %w", name, err)
	}

	// 2. 阈值过滤，必须在任何外部检查之前
	filtered := filter.FilterTokens(tokens)
	p.logger.Info("filtered tokens", "source", name, "fetched", len(tokens), "tokens", filtered)

	// 3. rugcheck，单个失败只跳过该代币
	p.logger.Info("checking rugcheck reports", "source", name)
	safe := p.safety.Check(ctx, filtered)
	p.logger.Info("safe tokens", "source", name, "tokens", safe)

	// 4. tweetscout + 通知
	for _, token := range safe {
		p.logger.Info("fetching tweetscout data", "source", name, "ca", token.CA)

		// an enrichment failure abandons the rest of this source
		socialData, err := p.social.FetchSocialData(ctx, token.CA)
		if err != nil {
			return fmt.Errorf("failed to fetch tweetscout data for %s: %w", token.CA, err)
		}
		p.logger.Info("tweetscout data", "source", name, "ca", token.CA, "social", socialData)

		p.notifier.Notify(ctx, token.CA)
	}

	return nil
}
