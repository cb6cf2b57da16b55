package model

import "math"

// EngagementRate returns (likes+comments)/followers as a percentage
// rounded to two decimals. Callers must not pass zero followers.
func EngagementRate(likes, comments, followers int) float64 {
	pct := float64(likes+comments) / float64(followers) * 100
	return math.Round(pct*100) / 100
}

// CompositeScore is the integer ranking key: posts plus mention and
// hashtag occurrences.
func CompositeScore(a AuthorAggregate) int {
	return a.Posts + a.Mentions + a.Hashtags
}
