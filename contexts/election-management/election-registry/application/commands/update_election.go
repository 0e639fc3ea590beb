package commands

import (
	"context"
	"log/slog"
	"strings"

	"votingsystem/contexts/election-management/election-registry/application"
	"votingsystem/contexts/election-management/election-registry/domain/entities"
	"votingsystem/contexts/election-management/election-registry/ports"
	"votingsystem/contracts/faults"
)

// UpdateElectionCommand carries a partial edit. Empty fields keep the current
// value, which lets callers change only one of title or description.
type UpdateElectionCommand struct {
	ElectionID  int64
	Title       string
	Description string
}

type UpdateElectionUseCase struct {
	Elections ports.ElectionRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateElectionUseCase) Execute(ctx context.Context, cmd UpdateElectionCommand) (entities.Election, error) {
	logger := application.ResolveLogger(uc.Logger)
	title := strings.TrimSpace(cmd.Title)
	description := strings.TrimSpace(cmd.Description)

	changed := false
	election, err := uc.Elections.MutateElection(ctx, cmd.ElectionID, func(e *entities.Election) error {
		changed = e.Edit(title, description)
		if changed {
			e.UpdatedAt = now(uc.Clock)
		}
		return nil
	})
	if err != nil {
		logger.Warn("election update rejected",
			"event", "registry_election_update_rejected",
			"module", "election-management/election-registry",
			"layer", "application",
			"election_id", cmd.ElectionID,
			"error", err.Error(),
		)
		return entities.Election{}, faults.Wrap(err, "election_id", idString(cmd.ElectionID))
	}

	logger.Info("election updated",
		"event", "registry_election_updated",
		"module", "election-management/election-registry",
		"layer", "application",
		"election_id", election.ID,
		"changed", changed,
	)
	return election, nil
}
