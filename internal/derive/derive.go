package derive

import (
	"brandlens/internal/model"
	"brandlens/internal/util"
)

// Decorate fills in the per-post mention metrics: occurrence counts of
// the mention and hashtag literals, and the like/comment counts gated
// on at least one mention. Posts are independent of each other; the
// input slice is left untouched and order is preserved.
func Decorate(posts []model.Post, mention, hashtag string) []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		p.MentionCount = util.CountOccurrences(p.CaptionText, mention)
		p.HashtagCount = util.CountOccurrences(p.CaptionText, hashtag)
		if p.MentionCount != 0 {
			p.CommentsWithMention = p.CommentCount
			p.LikesWithMention = p.LikeCount
		} else {
			p.CommentsWithMention = 0
			p.LikesWithMention = 0
		}
		out[i] = p
	}
	return out
}
