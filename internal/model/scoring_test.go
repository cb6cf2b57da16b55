package model

import "testing"

func TestEngagementRateRoundsToTwoDecimals(t *testing.T) {
	// (10+5)/300*100 = 5.0 exactly
	if got := EngagementRate(10, 5, 300); got != 5.0 {
		t.Fatalf("expected 5.0, got %v", got)
	}
	// (1+0)/3*100 = 33.333... -> 33.33
	if got := EngagementRate(1, 0, 3); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
	// (20+10)/100*100 = 30.0
	if got := EngagementRate(20, 10, 100); got != 30.0 {
		t.Fatalf("expected 30.0, got %v", got)
	}
}

func TestCompositeScoreSumsCounts(t *testing.T) {
	a := AuthorAggregate{Posts: 2, Mentions: 2, Hashtags: 0}
	if got := CompositeScore(a); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}
