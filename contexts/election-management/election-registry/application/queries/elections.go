package queries

import (
	"context"
	"log/slog"
	"strconv"

	"votingsystem/contexts/election-management/election-registry/application"
	"votingsystem/contexts/election-management/election-registry/domain/entities"
	"votingsystem/contexts/election-management/election-registry/ports"
	"votingsystem/contracts/faults"
)

type ElectionsUseCase struct {
	Elections  ports.ElectionRepository
	Candidates ports.CandidateDirectory
	Logger     *slog.Logger
}

func (uc ElectionsUseCase) Get(ctx context.Context, electionID int64) (entities.Election, error) {
	election, err := uc.Elections.GetElection(ctx, electionID)
	if err != nil {
		return entities.Election{}, faults.Wrap(err, "election_id", strconv.FormatInt(electionID, 10))
	}
	return election, nil
}

// List returns every election ordered by id.
func (uc ElectionsUseCase) List(ctx context.Context) ([]entities.Election, error) {
	return uc.Elections.ListElections(ctx)
}

// ForCandidate returns the elections whose roster contains candidateID.
func (uc ElectionsUseCase) ForCandidate(ctx context.Context, candidateID int64) ([]entities.Election, error) {
	elections, err := uc.Elections.ListElections(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Election, 0)
	for _, election := range elections {
		if election.HasCandidate(candidateID) {
			items = append(items, election)
		}
	}
	return items, nil
}

// ListCandidates joins the roster with the directory in roster order. Ids
// that no longer resolve to a candidate are skipped.
func (uc ElectionsUseCase) ListCandidates(ctx context.Context, electionID int64) ([]ports.ActorProjection, error) {
	logger := application.ResolveLogger(uc.Logger)
	election, err := uc.Get(ctx, electionID)
	if err != nil {
		return nil, err
	}
	items := make([]ports.ActorProjection, 0, len(election.Candidates))
	for _, candidateID := range election.Candidates {
		actor, found, err := uc.Candidates.GetActor(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		if !found || !actor.IsCandidate() {
			logger.Warn("roster entry skipped",
				"event", "registry_roster_entry_unresolved",
				"module", "election-management/election-registry",
				"layer", "application",
				"election_id", electionID,
				"candidate_id", candidateID,
			)
			continue
		}
		items = append(items, actor)
	}
	return items, nil
}
