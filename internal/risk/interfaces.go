package risk

import (
	"context"
)

// ReportFetcher retrieves a rug-pull risk report for a contract address
type ReportFetcher interface {
	// FetchReport returns the raw report for ca
	FetchReport(ctx context.Context, ca string) (Report, error)
}

// Report 风险报告原始内容
type Report map[string]any

// 可接受的最低评级（大小写敏感）
var acceptableScores = map[string]bool{
	"Good":      true,
	"Excellent": true,
}

// IsSafe reports whether minimum_score is exactly "Good" or "Excellent".
func (r Report) IsSafe() bool {
	score, ok := r["minimum_score"].(string)
	return ok && acceptableScores[score]
}
