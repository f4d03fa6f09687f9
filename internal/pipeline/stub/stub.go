package stub

import (
	"context"
	"errors"

	"github.com/songzhibin97/solscout/internal/models"
	"github.com/songzhibin97/solscout/internal/risk"
)

// ErrNetwork simulates a transport failure.
var ErrNetwork = errors.New("stub: connection reset by peer")

// Recorder collects stage calls in the order they happen, e.g. "risk:X", "notify:X".
type Recorder struct {
	Events []string
}

func (r *Recorder) record(event string) {
	if r != nil {
		r.Events = append(r.Events, event)
	}
}

// Source returns a fixed token list, or Err if set.
// Implements data.TokenSource.
type Source struct {
	SourceName string
	Tokens     []models.Token
	Err        error
	Panic      bool
	Rec        *Recorder
}

func (s *Source) Name() string { return s.SourceName }

func (s *Source) FetchTrending(_ context.Context) ([]models.Token, error) {
	s.Rec.record("fetch:" + s.SourceName)
	if s.Panic {
		panic("stub: source " + s.SourceName + " blew up")
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Tokens, nil
}

// Reports serves rugcheck reports keyed by contract address.
// Implements risk.ReportFetcher.
type Reports struct {
	ByCA map[string]risk.Report
	Errs map[string]error
	Rec  *Recorder
}

func (r *Reports) FetchReport(_ context.Context, ca string) (risk.Report, error) {
	r.Rec.record("risk:" + ca)
	if err, ok := r.Errs[ca]; ok {
		return nil, err
	}
	return r.ByCA[ca], nil
}

// Social returns a fixed engagement payload, or an error for CAs listed in Errs.
// Implements social.Fetcher.
type Social struct {
	Errs map[string]error
	Rec  *Recorder
}

func (s *Social) FetchSocialData(_ context.Context, ca string) (*models.SocialData, error) {
	s.Rec.record("social:" + ca)
	if err, ok := s.Errs[ca]; ok {
		return nil, err
	}
	return &models.SocialData{EngagementScore: 42.0, TopInfluencers: []any{"@stub"}}, nil
}

// Notifier records every notified contract address.
// Implements notify.Notifier.
type Notifier struct {
	Sent []string
	Rec  *Recorder
}

func (n *Notifier) Notify(_ context.Context, ca string) {
	n.Rec.record("notify:" + ca)
	n.Sent = append(n.Sent, ca)
}

// Token builds a fully populated token.
func Token(ca string, liquidity, volume float64, age, holders int) models.Token {
	return models.Token{
		Name:      "token-" + ca,
		Volume:    volume,
		Liquidity: &liquidity,
		AgeHours:  &age,
		Holders:   &holders,
		CA:        &ca,
	}
}
