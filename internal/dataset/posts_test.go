package dataset

import (
	"errors"
	"strings"
	"testing"
)

const postHeader = "person_id,taken_at,caption_text,caption_tags,like_count,comment_count\n"

func TestReadPostsAppliesDefaults(t *testing.T) {
	in := postHeader + "1,2021-01-15,,,,\n"
	posts, err := ReadPosts(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	p := posts[0]
	if p.CaptionText != "" || len(p.CaptionTags) != 0 || p.LikeCount != 0 || p.CommentCount != 0 {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.TakenAt.Year() != 2021 || p.TakenAt.Month() != 1 || p.TakenAt.Day() != 15 {
		t.Fatalf("unexpected taken_at: %v", p.TakenAt)
	}
}

func TestReadPostsRequiresAuthorAndTimestamp(t *testing.T) {
	for _, in := range []string{
		postHeader + ",2021-01-15,hi,,1,2\n",
		postHeader + "1,,hi,,1,2\n",
	} {
		_, err := ReadPosts(strings.NewReader(in))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %q, got %v", in, err)
		}
	}
}

func TestReadPostsTimestampLayouts(t *testing.T) {
	in := postHeader +
		"1,2021-01-15T10:30:00Z,a,,1,1\n" +
		"1,2021-01-16 08:00:00,b,,1,1\n" +
		"1,2021-01-17,c,,1,1\n"
	posts, err := ReadPosts(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].TakenAt.Hour() != 10 {
		t.Fatalf("RFC3339 hour lost: %v", posts[0].TakenAt)
	}
}

func TestReadPostsUnparseableTimestamp(t *testing.T) {
	in := postHeader + "1,someday,hi,,1,2\n"
	_, err := ReadPosts(strings.NewReader(in))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Field != "taken_at" {
		t.Fatalf("expected ParseError on taken_at, got %v", err)
	}
}

func TestReadPostsSplitsCaptionTags(t *testing.T) {
	in := postHeader + "1,2021-01-15,hi,\"#brand, #brandstyle\",1,2\n"
	posts, err := ReadPosts(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	tags := posts[0].CaptionTags
	if len(tags) != 2 || tags[0] != "#brand" || tags[1] != "#brandstyle" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}

func TestReadPostsIntegralFloatCounts(t *testing.T) {
	in := postHeader + "1,2021-01-15,hi,,10.0,5.0\n"
	posts, err := ReadPosts(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if posts[0].LikeCount != 10 || posts[0].CommentCount != 5 {
		t.Fatalf("unexpected counts: %+v", posts[0])
	}
}
