package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestReadUsersAllFieldsPresent(t *testing.T) {
	in := "id,ig_username,ig_num_followers\n1,alice,100\n2,bob,50\n"
	users, err := ReadUsers(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || users[0].Followers != 100 {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
}

func TestReadUsersRejectsNullRequiredField(t *testing.T) {
	cases := []string{
		"id,ig_username,ig_num_followers\n,alice,100\n",
		"id,ig_username,ig_num_followers\n1,,100\n",
		"id,ig_username,ig_num_followers\n1,alice,\n",
	}
	for _, in := range cases {
		_, err := ReadUsers(strings.NewReader(in))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %q, got %v", in, err)
		}
	}
}

func TestReadUsersRejectsDuplicateID(t *testing.T) {
	in := "id,ig_username,ig_num_followers\n1,alice,100\n1,bob,50\n"
	_, err := ReadUsers(strings.NewReader(in))
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "id" {
		t.Fatalf("expected duplicate id ValidationError, got %v", err)
	}
}

func TestReadUsersRejectsNonNumericFollowers(t *testing.T) {
	in := "id,ig_username,ig_num_followers\n1,alice,lots\n"
	_, err := ReadUsers(strings.NewReader(in))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Field != "ig_num_followers" {
		t.Fatalf("expected ParseError on followers, got %v", err)
	}
}
