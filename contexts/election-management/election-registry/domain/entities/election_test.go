package entities

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusCreated, StatusOpened, true},
		{StatusCreated, StatusClosed, false},
		{StatusOpened, StatusClosed, true},
		{StatusOpened, StatusCreated, false},
		{StatusOpened, StatusOpened, false},
		{StatusClosed, StatusOpened, false},
		{StatusClosed, StatusCreated, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestEditKeepsEmptyFields(t *testing.T) {
	election := Election{Title: "Club Leader Election", Description: "Choose the club leader"}
	if election.Edit("", "") {
		t.Fatal("expected no change for empty edit")
	}
	if !election.Edit("Club Captain Election", "") {
		t.Fatal("expected title change")
	}
	if election.Description != "Choose the club leader" {
		t.Fatalf("description changed to %q", election.Description)
	}
}
