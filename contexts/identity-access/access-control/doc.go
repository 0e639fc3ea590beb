// Package accesscontrol implements the access-controlled operations layer
// inside the identity-access context.
//
// Every call resolves the acting principal (a guest or a registered actor),
// checks the role's capability set and only then delegates to the identity
// directory, the election registry or the ballot ledger through ports. It
// also issues and revokes login sessions.
package accesscontrol
