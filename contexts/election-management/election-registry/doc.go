// Package electionregistry implements the Election Registry inside the
// election-management context.
//
// The module owns elections, their Created -> Opened -> Closed lifecycle and
// their candidate rosters. Candidates are referenced by actor id and resolved
// through the CandidateDirectory port at read and write time; the registry
// never owns actor lifetime.
package electionregistry
