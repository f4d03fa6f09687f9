package data

import (
	"context"

	"github.com/songzhibin97/solscout/internal/models"
)

// TokenSource 热门代币数据源
type TokenSource interface {
	// Name identifies the source in logs
	Name() string

	// FetchTrending retrieves the current trending token list
	FetchTrending(ctx context.Context) ([]models.Token, error)
}
