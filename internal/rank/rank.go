package rank

import (
	"sort"

	"brandlens/internal/model"
)

// Rank inner-joins users onto their aggregates, computes both
// engagement ratios and the composite score, and sorts descending by
// score. Users without an aggregate are dropped: only accounts with
// qualifying activity appear in the report. Ties keep the users-table
// order so repeated runs produce identical output.
//
// A user with zero followers has no finite engagement ratio; such rows
// are skipped and reported via the second return value instead of
// propagating Inf into the report.
func Rank(users []model.User, aggs map[string]model.AuthorAggregate) (ranked []model.RankedUser, skipped int) {
	ranked = make([]model.RankedUser, 0, len(aggs))
	for _, u := range users {
		a, ok := aggs[u.ID]
		if !ok {
			continue
		}
		if u.Followers == 0 {
			skipped++
			continue
		}
		ranked = append(ranked, model.RankedUser{
			User:               u,
			AuthorAggregate:    a,
			EngagementGeneral:  model.EngagementRate(a.Likes, a.Comments, u.Followers),
			EngagementSpecific: model.EngagementRate(a.LikesWithMention, a.CommentsWithMention, u.Followers),
			Score:              model.CompositeScore(a),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked, skipped
}
