package electionregistry

import (
	"context"
	"errors"
	"testing"

	"votingsystem/contexts/election-management/election-registry/application/commands"
	"votingsystem/contexts/election-management/election-registry/domain/entities"
	domainerrors "votingsystem/contexts/election-management/election-registry/domain/errors"
	"votingsystem/contexts/election-management/election-registry/ports"
	"votingsystem/contracts/faults"
)

type fakeDirectory map[int64]ports.ActorProjection

func (d fakeDirectory) GetActor(_ context.Context, actorID int64) (ports.ActorProjection, bool, error) {
	actor, ok := d[actorID]
	return actor, ok, nil
}

func newTestModule() (Module, fakeDirectory) {
	directory := fakeDirectory{
		101: {ActorID: 101, Username: "cand1", Role: "Candidate", Profile: "Profile 1"},
		102: {ActorID: 102, Username: "cand2", Role: "Candidate", Profile: "Profile 2"},
		1:   {ActorID: 1, Username: "voter1", Role: "Voter"},
	}
	return NewInMemoryModule(directory, nil), directory
}

func createElection(t *testing.T, module Module, id int64) entities.Election {
	t.Helper()
	election, err := module.Create.Execute(context.Background(), commands.CreateElectionCommand{
		ElectionID:  id,
		Title:       "Student Union Election",
		Description: "Choose the student union president",
	})
	if err != nil {
		t.Fatalf("create election failed: %v", err)
	}
	return election
}

func TestCreateElectionStartsCreated(t *testing.T) {
	module, _ := newTestModule()
	election := createElection(t, module, 1)
	if election.Status != entities.StatusCreated {
		t.Fatalf("expected Created, got %s", election.Status)
	}

	_, err := module.Create.Execute(context.Background(), commands.CreateElectionCommand{ElectionID: 1, Title: "Again"})
	if !errors.Is(err, domainerrors.ErrDuplicateElectionID) {
		t.Fatalf("expected duplicate election id, got %v", err)
	}
	_, err = module.Create.Execute(context.Background(), commands.CreateElectionCommand{ElectionID: 2, Title: "  "})
	if !errors.Is(err, domainerrors.ErrEmptyTitle) {
		t.Fatalf("expected empty title, got %v", err)
	}
}

func TestUpdateWithEmptyFieldsKeepsValues(t *testing.T) {
	module, _ := newTestModule()
	created := createElection(t, module, 1)
	ctx := context.Background()

	updated, err := module.Update.Execute(ctx, commands.UpdateElectionCommand{ElectionID: 1})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != created.Title || updated.Description != created.Description {
		t.Fatalf("expected unchanged election, got %+v", updated)
	}

	updated, err = module.Update.Execute(ctx, commands.UpdateElectionCommand{ElectionID: 1, Description: "New description"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != created.Title || updated.Description != "New description" {
		t.Fatalf("expected description-only edit, got %+v", updated)
	}

	_, err = module.Update.Execute(ctx, commands.UpdateElectionCommand{ElectionID: 9, Title: "x"})
	if !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected election not found, got %v", err)
	}
}

func TestLifecycleIsForwardOnly(t *testing.T) {
	module, _ := newTestModule()
	createElection(t, module, 1)
	ctx := context.Background()

	assertRefused := func(step string, err error, current entities.Status) {
		t.Helper()
		if !errors.Is(err, domainerrors.ErrInvalidTransition) {
			t.Fatalf("%s: expected invalid transition, got %v", step, err)
		}
		var transitionErr *domainerrors.TransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("%s: expected TransitionError, got %T", step, err)
		}
		if transitionErr.Current != current {
			t.Fatalf("%s: expected current status %s, got %s", step, current, transitionErr.Current)
		}
		if faults.KindOf(err) != faults.KindInvalidTransition {
			t.Fatalf("%s: expected invalid_transition kind, got %s", step, faults.KindOf(err))
		}
		election, _ := module.Elections.Get(ctx, 1)
		if election.Status != current {
			t.Fatalf("%s: status changed to %s", step, election.Status)
		}
	}

	_, err := module.Lifecycle.Close(ctx, 1)
	assertRefused("close created", err, entities.StatusCreated)

	opened, err := module.Lifecycle.Open(ctx, 1)
	if err != nil || opened.Status != entities.StatusOpened {
		t.Fatalf("open failed: %v (%s)", err, opened.Status)
	}
	_, err = module.Lifecycle.Open(ctx, 1)
	assertRefused("open opened", err, entities.StatusOpened)

	closed, err := module.Lifecycle.Close(ctx, 1)
	if err != nil || closed.Status != entities.StatusClosed {
		t.Fatalf("close failed: %v (%s)", err, closed.Status)
	}
	_, err = module.Lifecycle.Open(ctx, 1)
	assertRefused("open closed", err, entities.StatusClosed)
	_, err = module.Lifecycle.Close(ctx, 1)
	assertRefused("close closed", err, entities.StatusClosed)
}

func TestOpenUnknownElectionCreatesNothing(t *testing.T) {
	module, _ := newTestModule()
	ctx := context.Background()
	_, err := module.Lifecycle.Open(ctx, 404)
	if !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected election not found, got %v", err)
	}
	if faults.MetadataOf(err)["election_id"] != "404" {
		t.Fatalf("expected election_id metadata, got %v", faults.MetadataOf(err))
	}
	elections, _ := module.Elections.List(ctx)
	if len(elections) != 0 {
		t.Fatalf("expected no elections, got %d", len(elections))
	}
}

func TestRosterRejectsDuplicatesAndNonCandidates(t *testing.T) {
	module, _ := newTestModule()
	createElection(t, module, 1)
	ctx := context.Background()

	if _, err := module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: 101}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	_, err := module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: 101})
	if !errors.Is(err, domainerrors.ErrAlreadyOnRoster) {
		t.Fatalf("expected already on roster, got %v", err)
	}
	election, _ := module.Elections.Get(ctx, 1)
	if len(election.Candidates) != 1 {
		t.Fatalf("expected roster length 1, got %d", len(election.Candidates))
	}

	for _, id := range []int64{1, 777} {
		_, err = module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: id})
		if !errors.Is(err, domainerrors.ErrNotACandidate) {
			t.Fatalf("expected not a candidate for %d, got %v", id, err)
		}
	}
	_, err = module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 2, CandidateID: 101})
	if !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected election not found, got %v", err)
	}
}

func TestRemoveCandidate(t *testing.T) {
	module, _ := newTestModule()
	createElection(t, module, 1)
	ctx := context.Background()
	for _, id := range []int64{101, 102} {
		if _, err := module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: id}); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}

	election, err := module.Roster.RemoveCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: 101})
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(election.Candidates) != 1 || election.Candidates[0] != 102 {
		t.Fatalf("expected roster [102], got %v", election.Candidates)
	}
	_, err = module.Roster.RemoveCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: 101})
	if !errors.Is(err, domainerrors.ErrNotOnRoster) {
		t.Fatalf("expected not on roster, got %v", err)
	}
}

func TestListCandidatesSkipsUnresolvedEntries(t *testing.T) {
	module, directory := newTestModule()
	createElection(t, module, 1)
	ctx := context.Background()
	for _, id := range []int64{101, 102} {
		if _, err := module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: id}); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}
	delete(directory, 101)

	candidates, err := module.Elections.ListCandidates(ctx, 1)
	if err != nil {
		t.Fatalf("list candidates failed: %v", err)
	}
	if len(candidates) != 1 || candidates[0].ActorID != 102 {
		t.Fatalf("expected only candidate 102, got %+v", candidates)
	}
	if _, err := module.Elections.ListCandidates(ctx, 5); !errors.Is(err, domainerrors.ErrElectionNotFound) {
		t.Fatalf("expected election not found, got %v", err)
	}
}

func TestReturnedElectionsAreDetached(t *testing.T) {
	module, _ := newTestModule()
	createElection(t, module, 1)
	ctx := context.Background()
	if _, err := module.Roster.AddCandidate(ctx, commands.RosterCommand{ElectionID: 1, CandidateID: 101}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	election, _ := module.Elections.Get(ctx, 1)
	election.Candidates[0] = 999
	election.Candidates = append(election.Candidates, 101)

	stored, _ := module.Elections.Get(ctx, 1)
	if len(stored.Candidates) != 1 || stored.Candidates[0] != 101 {
		t.Fatalf("expected stored roster untouched, got %v", stored.Candidates)
	}

	mine, err := module.Elections.ForCandidate(ctx, 101)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected one election for candidate 101, got %d (%v)", len(mine), err)
	}
}
