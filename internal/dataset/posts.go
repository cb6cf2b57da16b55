package dataset

import (
	"io"
	"os"
	"time"

	"brandlens/internal/model"
	"brandlens/internal/util"
)

// Column names of the posts table.
const (
	colAuthorID = "person_id"
	colTakenAt  = "taken_at"
	colCaption  = "caption_text"
	colTags     = "caption_tags"
	colLikes    = "like_count"
	colComments = "comment_count"
)

// postDefaults is the null substitution table applied before the
// required-field check. person_id and taken_at deliberately have no
// entry: an empty cell there is a validation failure.
var postDefaults = map[string]string{
	colCaption:  "",
	colTags:     "",
	colLikes:    "0",
	colComments: "0",
}

// takenAtLayouts are tried in order. Day precision is the minimum.
var takenAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadPosts reads the posts CSV at path.
func LoadPosts(path string) ([]model.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPosts(f)
}

// ReadPosts parses post records from r, substituting the documented
// defaults for missing optional cells.
func ReadPosts(r io.Reader) ([]model.Post, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	posts := make([]model.Post, 0, len(rows))
	for i, row := range rows {
		n := i + 1
		for col, def := range postDefaults {
			if row[col] == "" {
				row[col] = def
			}
		}
		for _, col := range []string{colAuthorID, colTakenAt} {
			if row[col] == "" {
				return nil, &ValidationError{Field: col, Row: n}
			}
		}
		takenAt, err := parseTakenAt(row[colTakenAt], n)
		if err != nil {
			return nil, err
		}
		likes, err := parseCount(colLikes, row[colLikes], n)
		if err != nil {
			return nil, err
		}
		comments, err := parseCount(colComments, row[colComments], n)
		if err != nil {
			return nil, err
		}
		if likes < 0 {
			return nil, &ValidationError{Field: colLikes, Row: n, Msg: "must be non-negative"}
		}
		if comments < 0 {
			return nil, &ValidationError{Field: colComments, Row: n, Msg: "must be non-negative"}
		}
		posts = append(posts, model.Post{
			AuthorID:     row[colAuthorID],
			TakenAt:      takenAt,
			CaptionText:  row[colCaption],
			CaptionTags:  util.SplitTags(row[colTags]),
			LikeCount:    likes,
			CommentCount: comments,
		})
	}
	return posts, nil
}

func parseTakenAt(v string, row int) (time.Time, error) {
	for _, layout := range takenAtLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, &ParseError{Field: colTakenAt, Value: v, Row: row}
}
