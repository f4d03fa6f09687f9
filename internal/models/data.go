package models

// Token 热门代币
type Token struct {
	Name      string   `json:"name"`
	Volume    float64  `json:"volume"`
	Liquidity *float64 `json:"liquidity"`
	AgeHours  *int     `json:"age"` // 上线时长（小时）
	Holders   *int     `json:"holders"`
	CA        *string  `json:"ca"` // 合约地址，nil 表示缺失，空串照常传递
}

// SafeToken 通过 rugcheck 的代币
type SafeToken struct {
	CA     string         `json:"ca"`
	Report map[string]any `json:"report"`
}

// SocialData tweetscout 社交数据
type SocialData struct {
	EngagementScore any   `json:"engagement_score"` // 原样透传，仅用于日志
	TopInfluencers  []any `json:"top_influencers"`
}
