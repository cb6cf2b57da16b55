package dataset

import (
	"io"
	"os"

	"brandlens/internal/model"
)

// Column names of the profiles table.
const (
	colUserID    = "id"
	colUsername  = "ig_username"
	colFollowers = "ig_num_followers"
)

var userRequired = []string{colUserID, colUsername, colFollowers}

// LoadUsers reads the profiles CSV at path. Every column is required
// on every row; a single empty cell rejects the whole load.
func LoadUsers(path string) ([]model.User, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadUsers(f)
}

// ReadUsers parses user records from r.
func ReadUsers(r io.Reader) ([]model.User, error) {
	rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		n := i + 1
		for _, col := range userRequired {
			if row[col] == "" {
				return nil, &ValidationError{Field: col, Row: n}
			}
		}
		id := row[colUserID]
		if _, dup := seen[id]; dup {
			return nil, &ValidationError{Field: colUserID, Row: n, Msg: "duplicates an earlier id"}
		}
		seen[id] = struct{}{}
		followers, err := parseCount(colFollowers, row[colFollowers], n)
		if err != nil {
			return nil, err
		}
		if followers < 0 {
			return nil, &ValidationError{Field: colFollowers, Row: n, Msg: "must be non-negative"}
		}
		users = append(users, model.User{ID: id, Username: row[colUsername], Followers: followers})
	}
	return users, nil
}
