// Package seed loads the baseline dataset into the owning contexts through
// their public use cases.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ballotledger "votingsystem/contexts/election-management/ballot-ledger"
	ledgercommands "votingsystem/contexts/election-management/ballot-ledger/application/commands"
	electionregistry "votingsystem/contexts/election-management/election-registry"
	registrycommands "votingsystem/contexts/election-management/election-registry/application/commands"
	identitydirectory "votingsystem/contexts/identity-access/identity-directory"
	directorycommands "votingsystem/contexts/identity-access/identity-directory/application/commands"
	directoryentities "votingsystem/contexts/identity-access/identity-directory/domain/entities"
)

//go:embed baseline.yaml
var baseline []byte

type Document struct {
	Actors    []Actor    `yaml:"actors"`
	Elections []Election `yaml:"elections"`
	Votes     []Vote     `yaml:"votes"`
}

type Actor struct {
	ID       int64  `yaml:"id"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Profile  string `yaml:"profile"`
}

// Election.Status is the status the election ends in after seeding. Votes
// are cast while it is Opened; a Closed election is closed afterwards.
type Election struct {
	ID          int64   `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Candidates  []int64 `yaml:"candidates"`
	Status      string  `yaml:"status"`
}

type Vote struct {
	Election  int64 `yaml:"election"`
	Voter     int64 `yaml:"voter"`
	Candidate int64 `yaml:"candidate"`
}

// Summary counts what Apply created.
type Summary struct {
	Actors    int
	Elections int
	Votes     int
}

// Targets are the modules the seed writes into.
type Targets struct {
	Directory *identitydirectory.Module
	Registry  *electionregistry.Module
	Ledger    *ballotledger.Module
}

// Baseline returns the embedded reference dataset.
func Baseline() (Document, error) {
	return Parse(baseline)
}

func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (d Document) Validate() error {
	for _, actor := range d.Actors {
		if _, ok := directoryentities.ParseRole(actor.Role); !ok {
			return fmt.Errorf("seed actor %d: unknown role %q", actor.ID, actor.Role)
		}
	}
	for _, election := range d.Elections {
		switch election.Status {
		case "", "Created", "Opened", "Closed":
		default:
			return fmt.Errorf("seed election %d: unknown status %q", election.ID, election.Status)
		}
	}
	return nil
}

// Apply registers actors, creates elections with their rosters, opens them,
// casts the votes and finally closes the elections marked Closed. It stops
// at the first rejected operation.
func Apply(ctx context.Context, targets Targets, doc Document, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var summary Summary

	for _, actor := range doc.Actors {
		role, _ := directoryentities.ParseRole(actor.Role)
		if _, err := targets.Directory.Register.Execute(ctx, directorycommands.RegisterCommand{
			Registration: directoryentities.Registration{
				ID:       actor.ID,
				Username: actor.Username,
				Email:    actor.Email,
				Password: actor.Password,
				Profile:  actor.Profile,
				Role:     role,
			},
		}); err != nil {
			return summary, fmt.Errorf("seed actor %d: %w", actor.ID, err)
		}
		summary.Actors++
	}

	for _, election := range doc.Elections {
		if _, err := targets.Registry.Create.Execute(ctx, registrycommands.CreateElectionCommand{
			ElectionID:  election.ID,
			Title:       election.Title,
			Description: election.Description,
		}); err != nil {
			return summary, fmt.Errorf("seed election %d: %w", election.ID, err)
		}
		for _, candidateID := range election.Candidates {
			if _, err := targets.Registry.Roster.AddCandidate(ctx, registrycommands.RosterCommand{
				ElectionID:  election.ID,
				CandidateID: candidateID,
			}); err != nil {
				return summary, fmt.Errorf("seed roster %d/%d: %w", election.ID, candidateID, err)
			}
		}
		if election.Status == "Opened" || election.Status == "Closed" {
			if _, err := targets.Registry.Lifecycle.Open(ctx, election.ID); err != nil {
				return summary, fmt.Errorf("seed open %d: %w", election.ID, err)
			}
		}
		summary.Elections++
	}

	for _, vote := range doc.Votes {
		if _, err := targets.Ledger.Cast.Execute(ctx, ledgercommands.CastVoteCommand{
			ElectionID:  vote.Election,
			VoterID:     vote.Voter,
			CandidateID: vote.Candidate,
		}); err != nil {
			return summary, fmt.Errorf("seed vote %d/%d: %w", vote.Election, vote.Voter, err)
		}
		summary.Votes++
	}

	for _, election := range doc.Elections {
		if election.Status != "Closed" {
			continue
		}
		if _, err := targets.Registry.Lifecycle.Close(ctx, election.ID); err != nil {
			return summary, fmt.Errorf("seed close %d: %w", election.ID, err)
		}
	}

	logger.Info("seed applied",
		"event", "seed_applied",
		"module", "internal/app/seed",
		"layer", "platform",
		"actors", summary.Actors,
		"elections", summary.Elections,
		"votes", summary.Votes,
	)
	return summary, nil
}
