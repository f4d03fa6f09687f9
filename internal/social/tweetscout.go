package social

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/solscout/internal/models"
	"github.com/songzhibin97/solscout/internal/utils/request"
)

const (
	DefaultTweetscoutURL = "https://tweetscout.example.com/api/check"

	// MaxInfluencers 保留的影响者数量上限
	MaxInfluencers = 20
)

// Fetcher retrieves social engagement data for a contract address
type Fetcher interface {
	FetchSocialData(ctx context.Context, ca string) (*models.SocialData, error)
}

type TweetscoutClient struct {
	url        string
	httpClient *resty.Client
}

func NewTweetscoutClient(url string) *TweetscoutClient {
	if url == "" {
		url = DefaultTweetscoutURL
	}
	return &TweetscoutClient{
		url:        url,
		httpClient: request.Request,
	}
}

func (c *TweetscoutClient) FetchSocialData(ctx context.Context, ca string) (*models.SocialData, error) {
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

	// engagement_score 只用于日志，任何 JSON 值都原样保留
	var result struct {
		EngagementScore any   `json:"engagement_score"`
		TopInfluencers  []any `json:"top_influencers"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	influencers := result.TopInfluencers
	if len(influencers) > MaxInfluencers {
		influencers = influencers[:MaxInfluencers]
	}
	if influencers == nil {
		influencers = []any{}
	}

	return &models.SocialData{
		EngagementScore: result.EngagementScore,
		TopInfluencers:  influencers,
	}, nil
}
