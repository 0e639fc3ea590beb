package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ledgercommands "votingsystem/contexts/election-management/ballot-ledger/application/commands"
	ledgererrors "votingsystem/contexts/election-management/ballot-ledger/domain/errors"
	"votingsystem/internal/app/bootstrap"
	"votingsystem/internal/app/seed"
	"votingsystem/internal/platform/config"
)

func emptyApp(t *testing.T) *bootstrap.App {
	t.Helper()
	app, err := bootstrap.Build(context.Background(), config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return app
}

func TestBaselineDocument(t *testing.T) {
	doc, err := seed.Baseline()
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	roles := map[string]int{}
	for _, actor := range doc.Actors {
		roles[actor.Role]++
	}
	if roles["Candidate"] != 5 || roles["Voter"] != 10 || roles["Admin"] != 10 {
		t.Fatalf("unexpected role counts %v", roles)
	}
	if len(doc.Elections) != 2 || len(doc.Votes) != 5 {
		t.Fatalf("expected 2 elections and 5 votes, got %d and %d", len(doc.Elections), len(doc.Votes))
	}
}

func TestApplyBaseline(t *testing.T) {
	ctx := context.Background()
	app := emptyApp(t)
	doc, err := seed.Baseline()
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}

	summary, err := seed.Apply(ctx, app.SeedTargets(), doc, nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if summary != (seed.Summary{Actors: 25, Elections: 2, Votes: 5}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
	tally, err := app.Ledger.Ledger.Tally(ctx, 2)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if tally.Total() != 3 || tally.VotesFor(104) != 1 {
		t.Fatalf("unexpected tally %+v", tally)
	}

	// Applying twice goes through the same public operations and is rejected.
	if _, err := seed.Apply(ctx, app.SeedTargets(), doc, nil); err == nil {
		t.Fatal("expected duplicate seed to fail")
	}
}

func TestApplyClosedElection(t *testing.T) {
	ctx := context.Background()
	app := emptyApp(t)
	doc, err := seed.Parse([]byte(`
actors:
  - {id: 101, username: cand1, email: c1@mail.com, password: "123", role: Candidate, profile: Profile 1}
  - {id: 1, username: voter1, email: v1@mail.com, password: "123", role: Voter}
  - {id: 2, username: voter2, email: v2@mail.com, password: "123", role: Voter}
elections:
  - {id: 9, title: Past Election, candidates: [101], status: Closed}
votes:
  - {election: 9, voter: 1, candidate: 101}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := seed.Apply(ctx, app.SeedTargets(), doc, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}

	election, err := app.Registry.Elections.Get(ctx, 9)
	if err != nil || election.Status.String() != "Closed" {
		t.Fatalf("expected closed election, got %+v err=%v", election, err)
	}
	count, _ := app.Ledger.Ledger.VotesForCandidate(ctx, 9, 101)
	if count != 1 {
		t.Fatalf("expected 1 vote, got %d", count)
	}
	_, err = app.Ledger.Cast.Execute(ctx, castCommand(9, 2, 101))
	if !errors.Is(err, ledgererrors.ErrElectionNotOpen) {
		t.Fatalf("expected closed election to refuse votes, got %v", err)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := seed.Parse([]byte("elections:\n  - id: 1\n    colour: red\n")); err == nil {
		t.Fatal("expected unknown field error")
	}
	_, err := seed.Parse([]byte("actors:\n  - id: 1\n    role: Guest\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown role") {
		t.Fatalf("expected unknown role error, got %v", err)
	}
	_, err = seed.Parse([]byte("elections:\n  - id: 1\n    status: Paused\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown status") {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("elections:\n  - {id: 4, title: Board}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := seed.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Elections) != 1 || doc.Elections[0].Title != "Board" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if _, err := seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file error")
	}
}

func castCommand(electionID int64, voterID int64, candidateID int64) ledgercommands.CastVoteCommand {
	return ledgercommands.CastVoteCommand{ElectionID: electionID, VoterID: voterID, CandidateID: candidateID}
}
