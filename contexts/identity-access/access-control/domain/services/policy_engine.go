package services

import "votingsystem/contexts/identity-access/access-control/domain/entities"

var guestCapabilities = []entities.Capability{
	entities.CapabilityReadElections,
	entities.CapabilityReadElection,
	entities.CapabilityListCandidates,
	entities.CapabilityReadRules,
}

var sessionCapabilities = []entities.Capability{
	entities.CapabilityLogin,
	entities.CapabilityLogout,
}

var capabilityTable = map[entities.Role][]entities.Capability{
	entities.RoleGuest: guestCapabilities,
	entities.RoleVoter: concat(guestCapabilities, sessionCapabilities, []entities.Capability{
		entities.CapabilityCastVote,
		entities.CapabilityVoteStatus,
	}),
	entities.RoleCandidate: concat(guestCapabilities, sessionCapabilities, []entities.Capability{
		entities.CapabilityRegister,
		entities.CapabilityCandidateElection,
		entities.CapabilityCandidateTally,
	}),
	entities.RoleAdmin: concat(sessionCapabilities, []entities.Capability{
		entities.CapabilityCreateElection,
		entities.CapabilityUpdateElection,
		entities.CapabilityOpenElection,
		entities.CapabilityCloseElection,
		entities.CapabilityAddCandidate,
		entities.CapabilityRemoveCandidate,
		entities.CapabilityBanVoter,
		entities.CapabilityViewVoters,
		entities.CapabilityViewResults,
	}),
}

// Grants reports whether role carries capability. Unknown roles carry none.
func Grants(role entities.Role, capability entities.Capability) bool {
	for _, granted := range capabilityTable[role] {
		if granted == capability {
			return true
		}
	}
	return false
}

// CapabilitiesOf returns a copy of the role's capability set.
func CapabilitiesOf(role entities.Role) []entities.Capability {
	return append([]entities.Capability(nil), capabilityTable[role]...)
}

func concat(groups ...[]entities.Capability) []entities.Capability {
	var out []entities.Capability
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
