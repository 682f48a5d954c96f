package rankings

// TrendTag classifies how strongly a category is trending.
type TrendTag string

const (
	TrendHot       TrendTag = "hot"
	TrendPopular   TrendTag = "popular"
	TrendAttention TrendTag = "attention"
)

// Trend score boundaries.
const (
	hotThreshold     = 90
	popularThreshold = 70
)

// TierForScore derives the trend tag from a category's trend score.
func TierForScore(score int) TrendTag {
	switch {
	case score >= hotThreshold:
		return TrendHot
	case score >= popularThreshold:
		return TrendPopular
	default:
		return TrendAttention
	}
}
