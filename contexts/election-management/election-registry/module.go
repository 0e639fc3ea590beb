package electionregistry

import (
	"log/slog"

	"votingsystem/contexts/election-management/election-registry/adapters/memory"
	"votingsystem/contexts/election-management/election-registry/application/commands"
	"votingsystem/contexts/election-management/election-registry/application/queries"
	"votingsystem/contexts/election-management/election-registry/ports"
)

type Module struct {
	Create    commands.CreateElectionUseCase
	Update    commands.UpdateElectionUseCase
	Lifecycle commands.LifecycleUseCase
	Roster    commands.RosterUseCase
	Elections queries.ElectionsUseCase
}

type Dependencies struct {
	Elections  ports.ElectionRepository
	Candidates ports.CandidateDirectory
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Create: commands.CreateElectionUseCase{
			Elections: deps.Elections,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
		Update: commands.UpdateElectionUseCase{
			Elections: deps.Elections,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
		Lifecycle: commands.LifecycleUseCase{
			Elections: deps.Elections,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
		Roster: commands.RosterUseCase{
			Elections:  deps.Elections,
			Candidates: deps.Candidates,
			Clock:      deps.Clock,
			Logger:     deps.Logger,
		},
		Elections: queries.ElectionsUseCase{
			Elections:  deps.Elections,
			Candidates: deps.Candidates,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule wires the registry over a memory store. The candidate
// directory is supplied by the caller because actors live in another context.
func NewInMemoryModule(candidates ports.CandidateDirectory, logger *slog.Logger) Module {
	store := memory.NewStore(nil)
	return NewModule(Dependencies{
		Elections:  store,
		Candidates: candidates,
		Clock:      store,
		Logger:     logger,
	})
}
