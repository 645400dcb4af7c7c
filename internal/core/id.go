package core

import "github.com/google/uuid"

// ObjectID identifies one entity in a world for the lifetime of a run.
type ObjectID uuid.UUID

// NewObjectID returns a fresh random identifier.
func NewObjectID() ObjectID {
	return ObjectID(uuid.New())
}

// IsZero reports whether the id was never assigned.
func (id ObjectID) IsZero() bool {
	return id == ObjectID(uuid.Nil)
}

// String returns the canonical UUID text form.
func (id ObjectID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, for log lines.
func (id ObjectID) Short() string {
	return id.String()[:8]
}
