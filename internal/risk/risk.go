package risk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/solscout/internal/models"
	"github.com/songzhibin97/solscout/internal/utils/logger"
	"github.com/songzhibin97/solscout/internal/utils/request"
)

const DefaultRugcheckURL = "https://rugcheck.example.com/api/check"

// RugcheckClient implements ReportFetcher against the rugcheck API
type RugcheckClient struct {
	url        string
	httpClient *resty.Client
}

func NewRugcheckClient(url string) *RugcheckClient {
	if url == "" {
		url = DefaultRugcheckURL
	}
	return &RugcheckClient{
		url:        url,
		httpClient: request.Request,
	}
}

func (c *RugcheckClient) FetchReport(ctx context.Context, ca string) (Report, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("User-Agent", request.UserAgent).
		SetQueryParam("ca", ca).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var report Report
	if err := json.Unmarshal(resp.Body(), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return report, nil
}

// SafetyChecker keeps only candidates whose report is rated safe
type SafetyChecker struct {
	reports ReportFetcher
	logger  logger.Logger
}

func NewSafetyChecker(reports ReportFetcher, log logger.Logger) *SafetyChecker {
	return &SafetyChecker{
		reports: reports,
		logger:  log,
	}
}

// Check evaluates each candidate in order. A failed lookup only drops that candidate.
func (s *SafetyChecker) Check(ctx context.Context, cas []string) []models.SafeToken {
	safe := make([]models.SafeToken, 0)

	for _, ca := range cas {
		s.logger.Info("checking rugcheck report", "ca", ca)

		report, err := s.reports.FetchReport(ctx, ca)
		if err != nil {
			s.logger.Error("failed to fetch rugcheck report", "ca", ca, "err", err)
			continue
		}

		if report.IsSafe() {
			safe = append(safe, models.SafeToken{CA: ca, Report: report})
		}
	}

	return safe
}
