package filter

import (
	"time"

	"brandlens/internal/dataset"
	"brandlens/internal/model"
	"brandlens/internal/util"
)

const dateLayout = "2006-01-02"

// Window is an inclusive calendar date range. Both bounds sit at
// midnight UTC, so a timestamp later in the day of End falls outside.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseWindow parses YYYY-MM-DD bounds into a Window.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return Window{}, &dataset.ParseError{Field: "start", Value: start}
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return Window{}, &dataset.ParseError{Field: "end", Value: end}
	}
	return Window{Start: s.UTC(), End: e.UTC()}, nil
}

// Contains reports Start <= t <= End.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ByDate keeps posts taken inside the window. Order is preserved and
// the input slice is never mutated.
func ByDate(posts []model.Post, w Window) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if w.Contains(p.TakenAt) {
			out = append(out, p)
		}
	}
	return out
}

// ByBrand keeps posts whose caption contains at least one of the tags
// as a literal, case-sensitive substring. An empty tag set keeps
// nothing.
func ByBrand(posts []model.Post, tags []string) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if util.ContainsAny(p.CaptionText, tags) {
			out = append(out, p)
		}
	}
	return out
}
