package vote

import "context"

// Repository stores immutable votes. Insert must enforce uniqueness of the
// (match, voter, target) triple and return ErrDuplicate on conflict.
type Repository interface {
	Insert(ctx context.Context, item Vote) error
	ListByMatch(ctx context.Context, matchID string) ([]Vote, error)
	ListByMatchAndVoter(ctx context.Context, matchID, voterID string) ([]Vote, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}
