// Package identitydirectory implements the Identity Directory inside the
// identity-access context.
//
// The module owns every registered actor (voters, candidates, administrators):
// registration with username/email uniqueness, credential resolution, role
// lookups and the one-way ban flag. Other contexts reference actors by id only
// and resolve them through ports wired in the composition root.
package identitydirectory
