// Package walkthrough drives the reference session against a built app: a
// guest browses, a seeded candidate logs in and out, and a blank candidate
// registration is refused.
package walkthrough

import (
	"context"
	"fmt"
	"log/slog"

	accessentities "votingsystem/contexts/identity-access/access-control/domain/entities"
	accessports "votingsystem/contexts/identity-access/access-control/ports"
	directoryentities "votingsystem/contexts/identity-access/identity-directory/domain/entities"
	"votingsystem/contracts/faults"
	"votingsystem/internal/app/bootstrap"
)

// Step is one scripted action and its outcome. Expected marks steps that
// are supposed to be rejected.
type Step struct {
	Name     string
	Expected bool
	Err      error
}

func (s Step) Passed() bool {
	return (s.Err != nil) == s.Expected
}

type Report struct {
	Steps []Step
}

func (r Report) Failed() []Step {
	var failed []Step
	for _, step := range r.Steps {
		if !step.Passed() {
			failed = append(failed, step)
		}
	}
	return failed
}

type runner struct {
	app    *bootstrap.App
	logger *slog.Logger
	report Report
}

// Run executes the walk-through. It returns an error when any step ends
// differently than scripted.
func Run(ctx context.Context, app *bootstrap.App, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &runner{app: app, logger: logger}
	guest := accessentities.Guest()

	r.step("guest views elections", false, func() error {
		elections, err := app.Access.Catalog.ListElections(ctx, guest)
		for _, election := range elections {
			r.election(election)
		}
		return err
	})
	r.step("guest views election 1", false, func() error {
		election, err := app.Access.Catalog.ElectionDetail(ctx, guest, 1)
		if err != nil {
			return err
		}
		r.election(election)
		candidates, err := app.Access.Catalog.ListCandidates(ctx, guest, 1)
		for _, candidate := range candidates {
			r.actor(candidate)
		}
		return err
	})
	r.step("guest views election 999", true, func() error {
		_, err := app.Access.Catalog.ElectionDetail(ctx, guest, 999)
		return err
	})
	r.step("guest reads voting rules", false, func() error {
		rules, err := app.Access.Catalog.Rules(ctx, guest)
		for i, rule := range rules {
			r.logger.Info("voting rule", "event", "walkthrough_rule", "index", i+1, "rule", rule)
		}
		return err
	})
	r.step("list registered actors", false, func() error {
		for _, role := range []directoryentities.Role{
			directoryentities.RoleCandidate,
			directoryentities.RoleVoter,
			directoryentities.RoleAdmin,
		} {
			for actor := range app.Directory.Lookup.ByRole(ctx, role) {
				r.logger.Info("actor",
					"event", "walkthrough_actor",
					"actor_id", actor.ID,
					"username", actor.Username,
					"email", actor.Email,
					"role", string(actor.Role),
					"banned", actor.Banned,
				)
			}
		}
		return nil
	})

	var candidate directoryentities.Actor
	for actor := range app.Directory.Lookup.ByRole(ctx, directoryentities.RoleCandidate) {
		candidate = actor
		break
	}
	if candidate.ID != 0 {
		r.candidateSession(ctx, candidate)
	}

	blank := accessports.RegistrationInput{ActorID: 999, Role: accessentities.RoleCandidate}
	r.step("register blank candidate", true, func() error {
		_, err := app.Access.Accounts.Register(ctx, blank)
		return err
	})
	r.step("login after blank registration", true, func() error {
		_, err := app.Access.Accounts.Login(ctx, blank.Username, blank.Password)
		return err
	})

	failed := r.report.Failed()
	logger.Info("walkthrough complete",
		"event", "walkthrough_complete",
		"steps", len(r.report.Steps),
		"failed", len(failed),
	)
	if len(failed) > 0 {
		return r.report, fmt.Errorf("walkthrough: %d of %d steps ended unexpectedly, first %q",
			len(failed), len(r.report.Steps), failed[0].Name)
	}
	return r.report, nil
}

// candidateSession logs in as a seeded candidate with its stored credentials.
func (r *runner) candidateSession(ctx context.Context, candidate directoryentities.Actor) {
	access := r.app.Access
	var session accessentities.Session
	r.step("candidate logs in", false, func() error {
		var err error
		session, err = access.Accounts.Login(ctx, candidate.Username, candidate.Password)
		return err
	})
	if session.Token == "" {
		return
	}
	r.step("candidate views own elections", false, func() error {
		principal, err := access.Sessions.Resolve(ctx, session.Token)
		if err != nil {
			return err
		}
		elections, err := access.Participation.MyElections(ctx, principal)
		if err != nil {
			return err
		}
		for _, election := range elections {
			votes, err := access.Participation.MyTally(ctx, principal, election.ElectionID)
			if err != nil {
				return err
			}
			r.logger.Info("candidate tally",
				"event", "walkthrough_candidate_tally",
				"candidate_id", principal.ActorID,
				"election_id", election.ElectionID,
				"votes", votes,
			)
		}
		return nil
	})
	r.step("candidate logs out", false, func() error {
		return access.Accounts.Logout(ctx, session.Token)
	})
}

func (r *runner) step(name string, expectRejection bool, run func() error) {
	err := run()
	step := Step{Name: name, Expected: expectRejection, Err: err}
	r.report.Steps = append(r.report.Steps, step)
	switch {
	case err == nil:
		r.logger.Info(name, "event", "walkthrough_step", "outcome", "ok")
	case expectRejection:
		r.logger.Info(name,
			"event", "walkthrough_step",
			"outcome", "rejected",
			"kind", string(faults.KindOf(err)),
			"error", err.Error(),
		)
	default:
		r.logger.Error(name,
			"event", "walkthrough_step",
			"outcome", "failed",
			"kind", string(faults.KindOf(err)),
			"error", err.Error(),
		)
	}
}

func (r *runner) election(election accessports.ElectionView) {
	r.logger.Info("election",
		"event", "walkthrough_election",
		"election_id", election.ElectionID,
		"title", election.Title,
		"description", election.Description,
		"status", election.Status,
		"candidates", len(election.Candidates),
	)
}

func (r *runner) actor(actor accessports.ActorView) {
	r.logger.Info("actor",
		"event", "walkthrough_actor",
		"actor_id", actor.ActorID,
		"username", actor.Username,
		"email", actor.Email,
		"role", string(actor.Role),
		"banned", actor.Banned,
	)
}
