package accesscontrol

import (
	"log/slog"
	"time"

	"votingsystem/contexts/identity-access/access-control/adapters/memory"
	"votingsystem/contexts/identity-access/access-control/adapters/system"
	"votingsystem/contexts/identity-access/access-control/application"
	"votingsystem/contexts/identity-access/access-control/application/commands"
	"votingsystem/contexts/identity-access/access-control/application/queries"
	"votingsystem/contexts/identity-access/access-control/ports"
)

// Module is the gated surface every caller goes through.
type Module struct {
	Accounts      commands.AccountUseCase
	ElectionAdmin commands.ElectionAdminUseCase
	Moderation    commands.ModerationUseCase
	Voting        commands.VotingUseCase
	Catalog       queries.CatalogUseCase
	Participation queries.ParticipationUseCase
	Oversight     queries.OversightUseCase
	Sessions      queries.SessionUseCase
	Store         *memory.SessionStore
}

type Dependencies struct {
	Directory  ports.Directory
	Registry   ports.Registry
	Ledger     ports.Ledger
	Sessions   ports.SessionStore
	Tokens     ports.TokenGenerator
	Clock      ports.Clock
	SessionTTL time.Duration
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	guard := application.Guard{
		Directory: deps.Directory,
		Logger:    deps.Logger,
	}
	return Module{
		Accounts: commands.AccountUseCase{
			Guard:      guard,
			Directory:  deps.Directory,
			Sessions:   deps.Sessions,
			Tokens:     deps.Tokens,
			Clock:      deps.Clock,
			SessionTTL: deps.SessionTTL,
			Logger:     deps.Logger,
		},
		ElectionAdmin: commands.ElectionAdminUseCase{
			Guard:    guard,
			Registry: deps.Registry,
			Logger:   deps.Logger,
		},
		Moderation: commands.ModerationUseCase{
			Guard:     guard,
			Directory: deps.Directory,
			Logger:    deps.Logger,
		},
		Voting: commands.VotingUseCase{
			Guard:  guard,
			Ledger: deps.Ledger,
			Logger: deps.Logger,
		},
		Catalog: queries.CatalogUseCase{
			Guard:    guard,
			Registry: deps.Registry,
			Ledger:   deps.Ledger,
		},
		Participation: queries.ParticipationUseCase{
			Guard:    guard,
			Registry: deps.Registry,
			Ledger:   deps.Ledger,
		},
		Oversight: queries.OversightUseCase{
			Guard:     guard,
			Directory: deps.Directory,
			Ledger:    deps.Ledger,
		},
		Sessions: queries.SessionUseCase{
			Guard:    guard,
			Sessions: deps.Sessions,
			Clock:    deps.Clock,
		},
	}
}

// NewInMemoryModule wires an in-memory session store with UUID tokens and
// the system clock.
func NewInMemoryModule(
	directory ports.Directory,
	registry ports.Registry,
	ledger ports.Ledger,
	sessionTTL time.Duration,
	logger *slog.Logger,
) Module {
	store := memory.NewSessionStore()
	module := NewModule(Dependencies{
		Directory:  directory,
		Registry:   registry,
		Ledger:     ledger,
		Sessions:   store,
		Tokens:     system.UUIDTokenGenerator{},
		Clock:      system.SystemClock{},
		SessionTTL: sessionTTL,
		Logger:     logger,
	})
	module.Store = store
	return module
}
