package ballotledger

import (
	"log/slog"

	"votingsystem/contexts/election-management/ballot-ledger/adapters/memory"
	"votingsystem/contexts/election-management/ballot-ledger/application/commands"
	"votingsystem/contexts/election-management/ballot-ledger/application/queries"
	"votingsystem/contexts/election-management/ballot-ledger/ports"
)

type Module struct {
	Cast   commands.CastVoteUseCase
	Ledger queries.LedgerUseCase
}

type Dependencies struct {
	Votes     ports.VoteRepository
	Elections ports.ElectionDirectory
	Voters    ports.VoterDirectory
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Cast: commands.CastVoteUseCase{
			Votes:     deps.Votes,
			Elections: deps.Elections,
			Voters:    deps.Voters,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
		Ledger: queries.LedgerUseCase{
			Votes:     deps.Votes,
			Elections: deps.Elections,
		},
	}
}

func NewInMemoryModule(elections ports.ElectionDirectory, voters ports.VoterDirectory, logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		Votes:     store,
		Elections: elections,
		Voters:    voters,
		Clock:     store,
		Logger:    logger,
	})
}
