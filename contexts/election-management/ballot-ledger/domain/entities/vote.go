package entities

import "time"

// Vote is immutable once appended.
type Vote struct {
	ID          int64
	ElectionID  int64
	VoterID     int64
	CandidateID int64
	CastAt      time.Time
}

type TallyEntry struct {
	CandidateID int64
	Votes       int
}

// Tally lists vote counts in roster order. Ranking by count is left to the
// caller.
type Tally struct {
	ElectionID int64
	Entries    []TallyEntry
}

func (t Tally) Counts() map[int64]int {
	counts := make(map[int64]int, len(t.Entries))
	for _, entry := range t.Entries {
		counts[entry.CandidateID] = entry.Votes
	}
	return counts
}

func (t Tally) Total() int {
	total := 0
	for _, entry := range t.Entries {
		total += entry.Votes
	}
	return total
}

// VotesFor returns the count recorded for candidateID, zero when absent.
func (t Tally) VotesFor(candidateID int64) int {
	for _, entry := range t.Entries {
		if entry.CandidateID == candidateID {
			return entry.Votes
		}
	}
	return 0
}
