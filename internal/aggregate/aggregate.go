package aggregate

import (
	"sort"

	"brandlens/internal/model"
)

// ByAuthor groups posts by author and sums the engagement columns.
// The result is an unordered mapping; an author with no surviving
// posts has no entry.
func ByAuthor(posts []model.Post) map[string]model.AuthorAggregate {
	groups := make(map[string]model.AuthorAggregate)
	for _, p := range posts {
		a := groups[p.AuthorID]
		a.AuthorID = p.AuthorID
		a.Comments += p.CommentCount
		a.CommentsWithMention += p.CommentsWithMention
		a.Likes += p.LikeCount
		a.LikesWithMention += p.LikesWithMention
		a.Posts++
		a.Mentions += p.MentionCount
		a.Hashtags += p.HashtagCount
		groups[p.AuthorID] = a
	}
	return groups
}

// SortedAuthorIDs returns group keys in lexical order for
// deterministic iteration.
func SortedAuthorIDs(m map[string]model.AuthorAggregate) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
