package services

import (
	"testing"

	"votingsystem/contexts/identity-access/access-control/domain/entities"
)

func TestGuestCapabilitiesAreReadOnly(t *testing.T) {
	for _, capability := range CapabilitiesOf(entities.RoleGuest) {
		switch capability {
		case entities.CapabilityReadElections,
			entities.CapabilityReadElection,
			entities.CapabilityListCandidates,
			entities.CapabilityReadRules:
		default:
			t.Fatalf("guest must not carry %s", capability)
		}
	}
}

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		role       entities.Role
		capability entities.Capability
		want       bool
	}{
		{entities.RoleVoter, entities.CapabilityCastVote, true},
		{entities.RoleVoter, entities.CapabilityReadRules, true},
		{entities.RoleVoter, entities.CapabilityRegister, false},
		{entities.RoleCandidate, entities.CapabilityCastVote, false},
		{entities.RoleCandidate, entities.CapabilityRegister, true},
		{entities.RoleCandidate, entities.CapabilityCandidateTally, true},
		{entities.RoleAdmin, entities.CapabilityOpenElection, true},
		{entities.RoleAdmin, entities.CapabilityBanVoter, true},
		{entities.RoleAdmin, entities.CapabilityCastVote, false},
		{entities.RoleGuest, entities.CapabilityCreateElection, false},
		{entities.Role("Auditor"), entities.CapabilityReadElections, false},
	}
	for _, tc := range cases {
		if got := Grants(tc.role, tc.capability); got != tc.want {
			t.Fatalf("Grants(%s, %s) = %v, want %v", tc.role, tc.capability, got, tc.want)
		}
	}
}

func TestCapabilitiesOfReturnsCopy(t *testing.T) {
	capabilities := CapabilitiesOf(entities.RoleVoter)
	capabilities[0] = entities.CapabilityBanVoter
	if Grants(entities.RoleVoter, entities.CapabilityBanVoter) {
		t.Fatal("mutating the returned slice must not change the table")
	}
}
