package identitydirectory

import (
	"log/slog"

	"votingsystem/contexts/identity-access/identity-directory/adapters/memory"
	"votingsystem/contexts/identity-access/identity-directory/application/commands"
	"votingsystem/contexts/identity-access/identity-directory/application/queries"
	"votingsystem/contexts/identity-access/identity-directory/ports"
)

// Module is the identity-directory surface exposed to runtime wiring.
type Module struct {
	Register     commands.RegisterUseCase
	Ban          commands.BanUseCase
	Authenticate queries.AuthenticateUseCase
	Lookup       queries.LookupUseCase
}

type Dependencies struct {
	Actors ports.ActorRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Register: commands.RegisterUseCase{
			Actors: deps.Actors,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
		Ban: commands.BanUseCase{
			Actors: deps.Actors,
			Logger: deps.Logger,
		},
		Authenticate: queries.AuthenticateUseCase{
			Actors: deps.Actors,
			Logger: deps.Logger,
		},
		Lookup: queries.LookupUseCase{
			Actors: deps.Actors,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		Actors: store,
		Clock:  store,
		Logger: logger,
	})
}
