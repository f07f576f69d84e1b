package teams

import "context"

// Repository persists one assignment per match. Upsert overwrites
// unconditionally; concurrency between two organizers resaving the same match
// is resolved last-write-wins.
type Repository interface {
	GetByMatch(ctx context.Context, matchID string) (Assignment, bool, error)
	Upsert(ctx context.Context, item Assignment) error
	SetLocked(ctx context.Context, matchID string, locked bool) error
	UpdateResult(ctx context.Context, matchID string, goalsA, goalsB int, winner Winner) error
	DeleteByMatch(ctx context.Context, matchID string) error
}
