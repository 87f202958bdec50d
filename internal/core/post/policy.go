package post

import "github.com/gofrs/uuid"

// Decision is the outcome of an authorization check.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// EditDecision reports whether actorID may change the post. Only the author may.
func (p *Post) EditDecision(actorID uuid.UUID) Decision {
	if actorID == uuid.Nil || p.UserID != actorID {
		return Denied
	}
	return Allowed
}
