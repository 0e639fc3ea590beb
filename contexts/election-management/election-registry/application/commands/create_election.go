package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"votingsystem/contexts/election-management/election-registry/application"
	"votingsystem/contexts/election-management/election-registry/domain/entities"
	domainerrors "votingsystem/contexts/election-management/election-registry/domain/errors"
	"votingsystem/contexts/election-management/election-registry/ports"
	"votingsystem/contracts/faults"
)

type CreateElectionCommand struct {
	ElectionID  int64
	Title       string
	Description string
}

type CreateElectionUseCase struct {
	Elections ports.ElectionRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Execute registers a new election in status Created.
func (uc CreateElectionUseCase) Execute(ctx context.Context, cmd CreateElectionCommand) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)
	title := strings.TrimSpace(cmd.Title)
	if cmd.ElectionID <= 0 {
		return entities.Election{}, faults.Wrap(domainerrors.ErrInvalidElectionID, "election_id", idString(cmd.ElectionID))
	}
	if title == "" {
		return entities.Election{}, faults.Wrap(domainerrors.ErrEmptyTitle, "election_id", idString(cmd.ElectionID))
	}

	now := now(uc.Clock)
	election := entities.Election{
		ID:          cmd.ElectionID,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Status:      entities.StatusCreated,
		Candidates:  []int64{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.Elections.InsertElection(ctx, election); err != nil {
		logger.Warn("election create rejected",
			"event", "registry_election_create_rejected",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"error", err.Error(),
		)
		return entities.Election{}, faults.Wrap(err, "election_id", idString(cmd.ElectionID))
	}

	logger.Info("election created",
		"event", "registry_election_created",
		"module", "election-management/election-registry",
		"layer", "application",
		"election_id", election.ID,
		"title", election.Title,
	)
	return election.Clone(), nil
}

func now(clock ports.Clock) time.Time {
	if clock != nil {
		return clock.Now().UTC()
	}
	return time.Now().UTC()
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
