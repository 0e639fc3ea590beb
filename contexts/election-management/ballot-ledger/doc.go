// Package ballotledger implements the Ballot Ledger inside the
// election-management context.
//
// The ledger is an append-only record of cast votes. It enforces at most one
// vote per voter per election, checks cast preconditions in a fixed order
// (election exists, election opened, voter not banned, no prior vote,
// candidate on roster) and produces roster-ordered tallies.
package ballotledger
