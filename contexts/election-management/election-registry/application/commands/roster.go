package commands

import (
	"context"
	"log/slog"

	"votingsystem/contexts/election-management/election-registry/application"
	"votingsystem/contexts/election-management/election-registry/domain/entities"
	domainerrors "votingsystem/contexts/election-management/election-registry/domain/errors"
	"votingsystem/contexts/election-management/election-registry/ports"
	"votingsystem/contracts/faults"
)

type RosterCommand struct {
	ElectionID  int64
	CandidateID int64
}

// RosterUseCase edits candidate rosters. Rosters stay duplicate-free: a
// repeated add is rejected, not ignored.
type RosterUseCase struct {
	Elections  ports.ElectionRepository
	Candidates ports.CandidateDirectory
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc RosterUseCase) AddCandidate(ctx context.Context, cmd RosterCommand) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)
	keys := []string{"election_id", idString(cmd.ElectionID), "candidate_id", idString(cmd.CandidateID)}

	if _, err := uc.Elections.GetElection(ctx, cmd.ElectionID); err != nil {
		return entities.Election{}, faults.Wrap(err, keys...)
	}
	actor, found, err := uc.Candidates.GetActor(ctx, cmd.CandidateID)
	if err != nil {
		logger.Error("candidate lookup failed",
			"event", "registry_roster_lookup_failed",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"candidate_id", cmd.CandidateID,
			"error", err.Error(),
		)
		return entities.Election{}, err
	}
	if !found || !actor.IsCandidate() {
		logger.Warn("roster add rejected",
			"event", "registry_roster_not_a_candidate",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"candidate_id", cmd.CandidateID,
		)
		return entities.Election{}, faults.Wrap(domainerrors.ErrNotACandidate, keys...)
	}

	var status entities.Status
	election, err := uc.Elections.MutateElection(ctx, cmd.ElectionID, func(e *entities.Election) error {
		status = e.Status
		if !e.AddCandidate(cmd.CandidateID) {
			return domainerrors.ErrAlreadyOnRoster
		}
		e.UpdatedAt = now(uc.Clock)
		return nil
	})
	if err != nil {
		logger.Warn("roster add rejected",
			"event", "registry_roster_add_rejected",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"candidate_id", cmd.CandidateID,
			"error", err.Error(),
		)
		return entities.Election{}, faults.Wrap(err, keys...)
	}
	uc.warnIfNotCreated(logger, election.ID, status)

	logger.Info("candidate added to roster",
		"event", "registry_roster_candidate_added",
		"module", "election-management/election-registry",
		"layer", "application",
		"election_id", election.ID,
		"candidate_id", cmd.CandidateID,
		"roster_size", len(election.Candidates),
	)
	return election, nil
}

func (uc RosterUseCase) RemoveCandidate(ctx context.Context, cmd RosterCommand) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)
	keys := []string{"election_id", idString(cmd.ElectionID), "candidate_id", idString(cmd.CandidateID)}

	var status entities.Status
	election, err := uc.Elections.MutateElection(ctx, cmd.ElectionID, func(e *entities.Election) error {
		status = e.Status
		if !e.RemoveCandidate(cmd.CandidateID) {
			return domainerrors.ErrNotOnRoster
		}
		e.UpdatedAt = now(uc.Clock)
		return nil
	})
	if err != nil {
		logger.Warn("roster remove rejected",
			"event", "registry_roster_remove_rejected",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"candidate_id", cmd.CandidateID,
			"error", err.Error(),
		)
		return entities.Election{}, faults.Wrap(err, keys...)
	}
	uc.warnIfNotCreated(logger, election.ID, status)

	logger.Info("candidate removed from roster",
		"event", "registry_roster_candidate_removed",
		"module", "election-management/election-registry",
		"layer", "application",
		"election_id", election.ID,
		"candidate_id", cmd.CandidateID,
		"roster_size", len(election.Candidates),
	)
	return election, nil
}

func (uc RosterUseCase) warnIfNotCreated(logger *slog.Logger, electionID int64, status entities.Status) {
	if status == entities.StatusCreated {
		return
	}
	logger.Warn("roster edited outside Created status",
		"event", "registry_roster_edited_late",
		"module", "election-management/election-registry",
		"layer", "application",
		"election_id", electionID,
		"status", string(status),
	)
}
