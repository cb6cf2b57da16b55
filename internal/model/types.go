package model

import "time"

// User is one row of the profiles table, loaded once and read-only.
type User struct {
	ID        string
	Username  string
	Followers int
}

// Post is one row of the posts table. The mention metrics are zero
// until derive.Decorate fills them in.
type Post struct {
	AuthorID     string
	TakenAt      time.Time
	CaptionText  string
	CaptionTags  []string
	LikeCount    int
	CommentCount int

	MentionCount        int
	HashtagCount        int
	CommentsWithMention int
	LikesWithMention    int
}

// AuthorAggregate holds per-author sums over the posts that survived
// filtering. An author with zero surviving posts has no aggregate.
type AuthorAggregate struct {
	AuthorID            string
	Comments            int
	CommentsWithMention int
	Likes               int
	LikesWithMention    int
	Posts               int
	Mentions            int
	Hashtags            int
}

// RankedUser is a User joined with its AuthorAggregate plus the
// engagement ratios and composite score.
type RankedUser struct {
	User
	AuthorAggregate
	EngagementGeneral  float64
	EngagementSpecific float64
	Score              int
}
