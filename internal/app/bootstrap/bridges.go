package bootstrap

import (
	"context"
	"errors"
	"iter"

	ballotledger "votingsystem/contexts/election-management/ballot-ledger"
	ledgercommands "votingsystem/contexts/election-management/ballot-ledger/application/commands"
	ledgerports "votingsystem/contexts/election-management/ballot-ledger/ports"
	electionregistry "votingsystem/contexts/election-management/election-registry"
	registrycommands "votingsystem/contexts/election-management/election-registry/application/commands"
	registryentities "votingsystem/contexts/election-management/election-registry/domain/entities"
	registryerrors "votingsystem/contexts/election-management/election-registry/domain/errors"
	registryports "votingsystem/contexts/election-management/election-registry/ports"
	accessentities "votingsystem/contexts/identity-access/access-control/domain/entities"
	accessports "votingsystem/contexts/identity-access/access-control/ports"
	identitydirectory "votingsystem/contexts/identity-access/identity-directory"
	directorycommands "votingsystem/contexts/identity-access/identity-directory/application/commands"
	directoryentities "votingsystem/contexts/identity-access/identity-directory/domain/entities"
)

// Bridges implement one context's ports on top of another context's public
// use cases. They translate types only and never add rules.

type candidateDirectoryBridge struct {
	directory *identitydirectory.Module
}

var _ registryports.CandidateDirectory = candidateDirectoryBridge{}

func (b candidateDirectoryBridge) GetActor(ctx context.Context, actorID int64) (registryports.ActorProjection, bool, error) {
	actor, found, err := b.directory.Lookup.FindByID(ctx, actorID)
	if err != nil || !found {
		return registryports.ActorProjection{}, found, err
	}
	return registryports.ActorProjection{
		ActorID:  actor.ID,
		Username: actor.Username,
		Email:    actor.Email,
		Profile:  actor.Profile,
		Role:     string(actor.Role),
		Banned:   actor.Banned,
	}, true, nil
}

type voterDirectoryBridge struct {
	directory *identitydirectory.Module
}

var _ ledgerports.VoterDirectory = voterDirectoryBridge{}

func (b voterDirectoryBridge) GetVoter(ctx context.Context, voterID int64) (ledgerports.VoterProjection, bool, error) {
	actor, found, err := b.directory.Lookup.FindByID(ctx, voterID)
	if err != nil || !found {
		return ledgerports.VoterProjection{}, found, err
	}
	return ledgerports.VoterProjection{
		ActorID: actor.ID,
		Role:    string(actor.Role),
		Banned:  actor.Banned,
	}, true, nil
}

type electionDirectoryBridge struct {
	registry *electionregistry.Module
}

var _ ledgerports.ElectionDirectory = electionDirectoryBridge{}

func (b electionDirectoryBridge) GetElection(ctx context.Context, electionID int64) (ledgerports.ElectionProjection, bool, error) {
	election, err := b.registry.Elections.Get(ctx, electionID)
	if errors.Is(err, registryerrors.ErrElectionNotFound) {
		return ledgerports.ElectionProjection{}, false, nil
	}
	if err != nil {
		return ledgerports.ElectionProjection{}, false, err
	}
	return ledgerports.ElectionProjection{
		ElectionID: election.ID,
		Status:     election.Status.String(),
		Candidates: election.Candidates,
	}, true, nil
}

type accessDirectoryBridge struct {
	directory *identitydirectory.Module
}

var _ accessports.Directory = accessDirectoryBridge{}

func (b accessDirectoryBridge) GetActor(ctx context.Context, actorID int64) (accessports.ActorView, bool, error) {
	actor, found, err := b.directory.Lookup.FindByID(ctx, actorID)
	if err != nil || !found {
		return accessports.ActorView{}, found, err
	}
	return actorView(actor), true, nil
}

func (b accessDirectoryBridge) Register(ctx context.Context, input accessports.RegistrationInput) (accessports.ActorView, error) {
	actor, err := b.directory.Register.Execute(ctx, directorycommands.RegisterCommand{
		Registration: directoryentities.Registration{
			ID:       input.ActorID,
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Profile:  input.Profile,
			Role:     directoryentities.Role(input.Role),
		},
	})
	if err != nil {
		return accessports.ActorView{}, err
	}
	return actorView(actor), nil
}

func (b accessDirectoryBridge) Authenticate(ctx context.Context, username string, password string) (accessports.ActorView, error) {
	actor, err := b.directory.Authenticate.Execute(ctx, username, password)
	if err != nil {
		return accessports.ActorView{}, err
	}
	return actorView(actor), nil
}

func (b accessDirectoryBridge) Ban(ctx context.Context, actorID int64) (accessports.ActorView, error) {
	actor, err := b.directory.Ban.Execute(ctx, directorycommands.BanCommand{ActorID: actorID})
	if err != nil {
		return accessports.ActorView{}, err
	}
	return actorView(actor), nil
}

func (b accessDirectoryBridge) ActorsByRole(ctx context.Context, role accessentities.Role) iter.Seq[accessports.ActorView] {
	actors := b.directory.Lookup.ByRole(ctx, directoryentities.Role(role))
	return func(yield func(accessports.ActorView) bool) {
		for actor := range actors {
			if !yield(actorView(actor)) {
				return
			}
		}
	}
}

func actorView(actor directoryentities.Actor) accessports.ActorView {
	return accessports.ActorView{
		ActorID:      actor.ID,
		Username:     actor.Username,
		Email:        actor.Email,
		Profile:      actor.Profile,
		Role:         accessentities.Role(actor.Role),
		Banned:       actor.Banned,
		RegisteredAt: actor.RegisteredAt,
	}
}

type accessRegistryBridge struct {
	registry *electionregistry.Module
}

var _ accessports.Registry = accessRegistryBridge{}

func (b accessRegistryBridge) CreateElection(ctx context.Context, input accessports.ElectionInput) (accessports.ElectionView, error) {
	return electionView(b.registry.Create.Execute(ctx, registrycommands.CreateElectionCommand{
		ElectionID:  input.ElectionID,
		Title:       input.Title,
		Description: input.Description,
	}))
}

func (b accessRegistryBridge) UpdateElection(ctx context.Context, input accessports.ElectionInput) (accessports.ElectionView, error) {
	return electionView(b.registry.Update.Execute(ctx, registrycommands.UpdateElectionCommand{
		ElectionID:  input.ElectionID,
		Title:       input.Title,
		Description: input.Description,
	}))
}

func (b accessRegistryBridge) OpenElection(ctx context.Context, electionID int64) (accessports.ElectionView, error) {
	return electionView(b.registry.Lifecycle.Open(ctx, electionID))
}

func (b accessRegistryBridge) CloseElection(ctx context.Context, electionID int64) (accessports.ElectionView, error) {
	return electionView(b.registry.Lifecycle.Close(ctx, electionID))
}

func (b accessRegistryBridge) AddCandidate(ctx context.Context, electionID int64, candidateID int64) (accessports.ElectionView, error) {
	return electionView(b.registry.Roster.AddCandidate(ctx, registrycommands.RosterCommand{
		ElectionID:  electionID,
		CandidateID: candidateID,
	}))
}

func (b accessRegistryBridge) RemoveCandidate(ctx context.Context, electionID int64, candidateID int64) (accessports.ElectionView, error) {
	return electionView(b.registry.Roster.RemoveCandidate(ctx, registrycommands.RosterCommand{
		ElectionID:  electionID,
		CandidateID: candidateID,
	}))
}

func (b accessRegistryBridge) GetElection(ctx context.Context, electionID int64) (accessports.ElectionView, error) {
	return electionView(b.registry.Elections.Get(ctx, electionID))
}

func (b accessRegistryBridge) ListElections(ctx context.Context) ([]accessports.ElectionView, error) {
	return electionViews(b.registry.Elections.List(ctx))
}

func (b accessRegistryBridge) ElectionsForCandidate(ctx context.Context, candidateID int64) ([]accessports.ElectionView, error) {
	return electionViews(b.registry.Elections.ForCandidate(ctx, candidateID))
}

func (b accessRegistryBridge) ListCandidates(ctx context.Context, electionID int64) ([]accessports.ActorView, error) {
	candidates, err := b.registry.Elections.ListCandidates(ctx, electionID)
	if err != nil {
		return nil, err
	}
	items := make([]accessports.ActorView, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, accessports.ActorView{
			ActorID:  candidate.ActorID,
			Username: candidate.Username,
			Email:    candidate.Email,
			Profile:  candidate.Profile,
			Role:     accessentities.Role(candidate.Role),
			Banned:   candidate.Banned,
		})
	}
	return items, nil
}

func electionView(election registryentities.Election, err error) (accessports.ElectionView, error) {
	if err != nil {
		return accessports.ElectionView{}, err
	}
	return accessports.ElectionView{
		ElectionID:  election.ID,
		Title:       election.Title,
		Description: election.Description,
		Status:      election.Status.String(),
		Candidates:  append([]int64(nil), election.Candidates...),
		CreatedAt:   election.CreatedAt,
		UpdatedAt:   election.UpdatedAt,
	}, nil
}

func electionViews(elections []registryentities.Election, err error) ([]accessports.ElectionView, error) {
	if err != nil {
		return nil, err
	}
	items := make([]accessports.ElectionView, 0, len(elections))
	for _, election := range elections {
		view, _ := electionView(election, nil)
		items = append(items, view)
	}
	return items, nil
}

type accessLedgerBridge struct {
	ledger *ballotledger.Module
}

var _ accessports.Ledger = accessLedgerBridge{}

func (b accessLedgerBridge) CastVote(ctx context.Context, electionID int64, voterID int64, candidateID int64) (accessports.VoteView, error) {
	vote, err := b.ledger.Cast.Execute(ctx, ledgercommands.CastVoteCommand{
		ElectionID:  electionID,
		VoterID:     voterID,
		CandidateID: candidateID,
	})
	if err != nil {
		return accessports.VoteView{}, err
	}
	return accessports.VoteView{
		VoteID:      vote.ID,
		ElectionID:  vote.ElectionID,
		VoterID:     vote.VoterID,
		CandidateID: vote.CandidateID,
		CastAt:      vote.CastAt,
	}, nil
}

func (b accessLedgerBridge) HasVoted(ctx context.Context, electionID int64, voterID int64) (bool, error) {
	return b.ledger.Ledger.HasVoted(ctx, electionID, voterID)
}

func (b accessLedgerBridge) Tally(ctx context.Context, electionID int64) (accessports.TallyView, error) {
	tally, err := b.ledger.Ledger.Tally(ctx, electionID)
	if err != nil {
		return accessports.TallyView{}, err
	}
	lines := make([]accessports.TallyLine, 0, len(tally.Entries))
	for _, entry := range tally.Entries {
		lines = append(lines, accessports.TallyLine{CandidateID: entry.CandidateID, Votes: entry.Votes})
	}
	return accessports.TallyView{ElectionID: tally.ElectionID, Lines: lines}, nil
}

func (b accessLedgerBridge) VotesForCandidate(ctx context.Context, electionID int64, candidateID int64) (int, error) {
	return b.ledger.Ledger.VotesForCandidate(ctx, electionID, candidateID)
}

func (b accessLedgerBridge) Rules(_ context.Context) []string {
	return b.ledger.Ledger.Rules()
}
