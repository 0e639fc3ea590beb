package entities

// Role is the principal's role tag. Guest is the role of every
// unauthenticated caller and never belongs to a registered actor.
type Role string

const (
	RoleGuest     Role = "Guest"
	RoleVoter     Role = "Voter"
	RoleCandidate Role = "Candidate"
	RoleAdmin     Role = "Admin"
)

// Capability names one gated operation.
type Capability string

const (
	CapabilityReadElections     Capability = "elections.read"
	CapabilityReadElection      Capability = "election.detail"
	CapabilityListCandidates    Capability = "candidates.list"
	CapabilityReadRules         Capability = "rules.read"
	CapabilityCastVote          Capability = "vote.cast"
	CapabilityVoteStatus        Capability = "vote.status"
	CapabilityRegister          Capability = "actor.register"
	CapabilityLogin             Capability = "session.login"
	CapabilityLogout            Capability = "session.logout"
	CapabilityCandidateElection Capability = "candidate.elections"
	CapabilityCandidateTally    Capability = "candidate.tally"
	CapabilityCreateElection    Capability = "election.create"
	CapabilityUpdateElection    Capability = "election.update"
	CapabilityOpenElection      Capability = "election.open"
	CapabilityCloseElection     Capability = "election.close"
	CapabilityAddCandidate      Capability = "roster.add"
	CapabilityRemoveCandidate   Capability = "roster.remove"
	CapabilityBanVoter          Capability = "voter.ban"
	CapabilityViewVoters        Capability = "voters.view"
	CapabilityViewResults       Capability = "results.view"
)

// Principal is the acting caller. ActorID is zero for guests.
type Principal struct {
	ActorID int64
	Role    Role
	Banned  bool
}

func Guest() Principal {
	return Principal{Role: RoleGuest}
}

// Actor builds an unresolved principal for a registered actor id. The role
// is filled in when the access layer resolves it against the directory.
func Actor(actorID int64) Principal {
	return Principal{ActorID: actorID}
}

func (p Principal) IsGuest() bool {
	return p.ActorID == 0
}
