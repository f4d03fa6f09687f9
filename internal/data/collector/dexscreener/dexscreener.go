package dexscreener

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/solscout/internal/models"
	"github.com/songzhibin97/solscout/internal/utils/request"
)

const DefaultURL = "https://www.dexscreener.com/api/trending"

type DexscreenerDataSource struct {
	url        string
	httpClient *resty.Client
}

func NewDexscreenerDataSource(url string) *DexscreenerDataSource {
	if url == "" {
		url = DefaultURL
	}
	return &DexscreenerDataSource{
		url:        url,
		httpClient: request.Request,
	}
}

func (d *DexscreenerDataSource) Name() string {
	return "dexscreener"
}

// trendingToken mirrors one API entry. name and volume are required, the rest may be absent.
// name stays raw so that an explicit null can be told apart from an absent key.
type trendingToken struct {
	Name      json.RawMessage `json:"name"`
	Volume    *float64        `json:"volume"`
	Liquidity *float64        `json:"liquidity"`
	Age       *float64        `json:"age"`
	Holders   *float64        `json:"holders"`
	CA        *string         `json:"ca"`
}

func (d *DexscreenerDataSource) FetchTrending(ctx context.Context) ([]models.Token, error) {
	resp, err := d.httpClient.R().
		SetContext(ctx).
		SetHeader("User-Agent", request.UserAgent).
		Get(d.url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	entries, err := decodeTrending(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	tokens := make([]models.Token, 0, len(entries))
	for i, entry := range entries {
		token, err := entry.toToken()
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

func (e trendingToken) toToken() (models.Token, error) {
	if e.Name == nil {
		return models.Token{}, errors.New("missing name")
	}
	if e.Volume == nil {
		return models.Token{}, errors.New("missing volume")
	}

	// null 名称按空串处理
	var name *string
	if err := json.Unmarshal(e.Name, &name); err != nil {
		return models.Token{}, fmt.Errorf("failed to parse name: %w", err)
	}

	age, err := wholeNumber("age", e.Age)
	if err != nil {
		return models.Token{}, err
	}
	holders, err := wholeNumber("holders", e.Holders)
	if err != nil {
		return models.Token{}, err
	}

	token := models.Token{
		Volume:    *e.Volume,
		Liquidity: e.Liquidity,
		AgeHours:  age,
		Holders:   holders,
		CA:        e.CA,
	}
	if name != nil {
		token.Name = *name
	}
	return token, nil
}

// wholeNumber accepts integral JSON numbers such as 30 or 30.0 and rejects 1.5.
func wholeNumber(field string, v *float64) (*int, error) {
	if v == nil {
		return nil, nil
	}
	f := *v
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil, fmt.Errorf("%s is not a whole number: %v", field, f)
	}
	n := int(f)
	return &n, nil
}

// decodeTrending accepts either a bare array or {"tokens": [...]}.
// A null document or a null tokens member is rejected; an absent member is an empty list.
func decodeTrending(body []byte) ([]trendingToken, error) {
	trimmed := bytes.TrimSpace(body)
	if isNull(trimmed) {
		return nil, errors.New("null document")
	}

	var entries []trendingToken
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var wrapped struct {
		Tokens json.RawMessage `json:"tokens"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Tokens == nil {
		return nil, nil
	}
	if isNull(wrapped.Tokens) {
		return nil, errors.New("null tokens")
	}
	if err := json.Unmarshal(wrapped.Tokens, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
