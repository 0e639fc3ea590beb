package entities

import (
	"slices"
	"time"
)

// Status is the election lifecycle state. The string values are the labels
// shown to users.
type Status string

const (
	StatusCreated Status = "Created"
	StatusOpened  Status = "Opened"
	StatusClosed  Status = "Closed"
)

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo allows only the single forward steps Created -> Opened and
// Opened -> Closed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusCreated:
		return next == StatusOpened
	case StatusOpened:
		return next == StatusClosed
	default:
		return false
	}
}

type Election struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	Candidates  []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Election) IsOpen() bool {
	return e.Status == StatusOpened
}

func (e Election) HasCandidate(candidateID int64) bool {
	return slices.Contains(e.Candidates, candidateID)
}

// Clone detaches the roster slice so callers cannot mutate registry state.
func (e Election) Clone() Election {
	e.Candidates = slices.Clone(e.Candidates)
	return e
}

// Edit applies the keep-when-empty policy: an empty title or description
// leaves the current value in place.
func (e *Election) Edit(title string, description string) bool {
	changed := false
	if title != "" && title != e.Title {
		e.Title = title
		changed = true
	}
	if description != "" && description != e.Description {
		e.Description = description
		changed = true
	}
	return changed
}

func (e *Election) AddCandidate(candidateID int64) bool {
	if e.HasCandidate(candidateID) {
		return false
	}
	e.Candidates = append(e.Candidates, candidateID)
	return true
}

// RemoveCandidate drops the first matching roster entry.
func (e *Election) RemoveCandidate(candidateID int64) bool {
	index := slices.Index(e.Candidates, candidateID)
	if index < 0 {
		return false
	}
	e.Candidates = slices.Delete(e.Candidates, index, index+1)
	return true
}
