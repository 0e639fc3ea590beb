package queries

import (
	"context"
	"sort"
	"strconv"

	"votingsystem/contexts/election-management/ballot-ledger/domain/entities"
	domainerrors "votingsystem/contexts/election-management/ballot-ledger/domain/errors"
	"votingsystem/contexts/election-management/ballot-ledger/ports"
	"votingsystem/contracts/faults"
)

type LedgerUseCase struct {
	Votes     ports.VoteRepository
	Elections ports.ElectionDirectory
}

func (uc LedgerUseCase) HasVoted(ctx context.Context, electionID int64, voterID int64) (bool, error) {
	_, found, err := uc.Votes.FindVote(ctx, electionID, voterID)
	return found, err
}

// CountForVoter is always 0 or 1 while the one-vote invariant holds.
func (uc LedgerUseCase) CountForVoter(ctx context.Context, electionID int64, voterID int64) (int, error) {
	votes, err := uc.Votes.ListVotesByElection(ctx, electionID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, vote := range votes {
		if vote.VoterID == voterID {
			count++
		}
	}
	return count, nil
}

// Tally groups the election's votes by candidate. Roster candidates come
// first in roster order, zero-vote candidates included; candidates that were
// removed from the roster after receiving votes follow by ascending id.
func (uc LedgerUseCase) Tally(ctx context.Context, electionID int64) (entities.Tally, error) {
	election, found, err := uc.Elections.GetElection(ctx, electionID)
	if err != nil {
		return entities.Tally{}, err
	}
	if !found {
		return entities.Tally{}, faults.Wrap(domainerrors.ErrElectionNotFound, "election_id", strconv.FormatInt(electionID, 10))
	}
	votes, err := uc.Votes.ListVotesByElection(ctx, electionID)
	if err != nil {
		return entities.Tally{}, err
	}

	counts := make(map[int64]int, len(election.Candidates))
	for _, vote := range votes {
		counts[vote.CandidateID]++
	}

	entries := make([]entities.TallyEntry, 0, len(election.Candidates))
	seen := make(map[int64]struct{}, len(election.Candidates))
	for _, candidateID := range election.Candidates {
		seen[candidateID] = struct{}{}
		entries = append(entries, entities.TallyEntry{CandidateID: candidateID, Votes: counts[candidateID]})
	}
	extra := make([]int64, 0)
	for candidateID := range counts {
		if _, ok := seen[candidateID]; !ok {
			extra = append(extra, candidateID)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, candidateID := range extra {
		entries = append(entries, entities.TallyEntry{CandidateID: candidateID, Votes: counts[candidateID]})
	}

	return entities.Tally{ElectionID: electionID, Entries: entries}, nil
}

// VotesForCandidate counts the votes one candidate received in one election.
func (uc LedgerUseCase) VotesForCandidate(ctx context.Context, electionID int64, candidateID int64) (int, error) {
	tally, err := uc.Tally(ctx, electionID)
	if err != nil {
		return 0, err
	}
	return tally.VotesFor(candidateID), nil
}

func (uc LedgerUseCase) Size(ctx context.Context) (int, error) {
	return uc.Votes.CountVotes(ctx)
}

func (uc LedgerUseCase) Rules() []string {
	return entities.VotingRules()
}
