package entities

import "time"

// Session binds an opaque token to a logged-in actor.
type Session struct {
	Token     string
	ActorID   int64
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s Session) Principal() Principal {
	return Principal{ActorID: s.ActorID, Role: s.Role}
}
