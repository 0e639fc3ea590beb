package entities

import (
	"strings"
	"time"
)

// Role is the closed set of actor roles. Guests are not actors and have no
// role value.
type Role string

const (
	RoleVoter     Role = "Voter"
	RoleCandidate Role = "Candidate"
	RoleAdmin     Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleVoter, RoleCandidate, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole accepts role labels case-insensitively.
func ParseRole(value string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "voter":
		return RoleVoter, true
	case "candidate":
		return RoleCandidate, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Actor is a registered identity. Profile is only populated for candidates.
type Actor struct {
	ID           int64
	Username     string
	Email        string
	Password     string
	Banned       bool
	Role         Role
	Profile      string
	RegisteredAt time.Time
}

func (a Actor) IsCandidate() bool {
	return a.Role == RoleCandidate
}

// PasswordMatches compares the stored secret with an attempt. The secret is
// opaque: exact comparison only.
func (a Actor) PasswordMatches(attempt string) bool {
	return a.Password == attempt
}

// Registration is the input of a new actor. ID zero lets the directory pick
// the next free identifier.
type Registration struct {
	ID       int64
	Username string
	Email    string
	Password string
	Profile  string
	Role     Role
}

// Normalize trims surrounding whitespace from the identity fields. The
// password is kept verbatim.
func (r Registration) Normalize() Registration {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Profile = strings.TrimSpace(r.Profile)
	if r.Role != RoleCandidate {
		r.Profile = ""
	}
	return r
}

// MissingField returns the first required field left empty, or "".
func (r Registration) MissingField() string {
	switch {
	case r.Username == "":
		return "username"
	case r.Email == "":
		return "email"
	case strings.TrimSpace(r.Password) == "":
		return "password"
	case r.Role == RoleCandidate && r.Profile == "":
		return "profile"
	default:
		return ""
	}
}
