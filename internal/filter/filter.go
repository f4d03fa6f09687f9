package filter

import "github.com/songzhibin97/solscout/internal/models"

const (
	MaxLiquidity = 100_000
	MaxVolume    = 250_000
	MinAgeHours  = 24
	MaxHolders   = 300
)

// Eligible reports whether a token passes every threshold.
// Tokens with a missing liquidity, age, holders or contract address never pass.
// An empty contract address counts as present.
func Eligible(t models.Token) bool {
	if t.Liquidity == nil || t.AgeHours == nil || t.Holders == nil || t.CA == nil {
		return false
	}
	return *t.Liquidity < MaxLiquidity &&
		t.Volume < MaxVolume &&
		*t.AgeHours >= MinAgeHours &&
		*t.Holders <= MaxHolders
}

// FilterTokens returns the contract addresses of eligible tokens, in input order.
func FilterTokens(tokens []models.Token) []string {
	filtered := make([]string, 0)
	for _, t := range tokens {
		if Eligible(t) {
			filtered = append(filtered, *t.CA)
		}
	}
	return filtered
}
