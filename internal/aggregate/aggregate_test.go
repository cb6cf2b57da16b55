package aggregate

import (
	"testing"

	"brandlens/internal/model"
)

func TestByAuthorSumsMetrics(t *testing.T) {
	posts := []model.Post{
		{AuthorID: "1", LikeCount: 10, CommentCount: 5, MentionCount: 1, HashtagCount: 1, LikesWithMention: 10, CommentsWithMention: 5},
		{AuthorID: "1", LikeCount: 10, CommentCount: 5, MentionCount: 1, LikesWithMention: 10, CommentsWithMention: 5},
		{AuthorID: "2", LikeCount: 3, CommentCount: 2},
	}
	groups := ByAuthor(posts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	a := groups["1"]
	if a.Posts != 2 || a.Likes != 20 || a.Comments != 10 || a.Mentions != 2 || a.Hashtags != 1 {
		t.Fatalf("unexpected aggregate for author 1: %+v", a)
	}
	if a.LikesWithMention != 20 || a.CommentsWithMention != 10 {
		t.Fatalf("unexpected gated sums: %+v", a)
	}
	b := groups["2"]
	if b.Posts != 1 || b.LikesWithMention != 0 || b.CommentsWithMention != 0 {
		t.Fatalf("unexpected aggregate for author 2: %+v", b)
	}
}

func TestByAuthorMentionGatedSums(t *testing.T) {
	// Same author: one post without mentions, one with two. Gated sums
	// must cover only the mentioning post.
	posts := []model.Post{
		{AuthorID: "1", CommentCount: 7, LikeCount: 4},
		{AuthorID: "1", CommentCount: 3, LikeCount: 2, MentionCount: 2, CommentsWithMention: 3, LikesWithMention: 2},
	}
	a := ByAuthor(posts)["1"]
	if a.CommentsWithMention != 3 || a.LikesWithMention != 2 {
		t.Fatalf("gated sums include unmentioned posts: %+v", a)
	}
	if a.Comments != 10 || a.Likes != 6 {
		t.Fatalf("plain sums wrong: %+v", a)
	}
}

func TestByAuthorNoGroupWithoutPosts(t *testing.T) {
	groups := ByAuthor(nil)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestSortedAuthorIDs(t *testing.T) {
	groups := ByAuthor([]model.Post{{AuthorID: "b"}, {AuthorID: "a"}, {AuthorID: "c"}})
	ids := SortedAuthorIDs(groups)
	if len(ids) != 3 || ids[0] != "a" || ids[2] != "c" {
		t.Fatalf("unexpected order: %v", ids)
	}
}
