package match

import "context"

type Repository interface {
	Insert(ctx context.Context, item Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	UpdateStatus(ctx context.Context, matchID string, status Status) error
	Delete(ctx context.Context, matchID string) error
}

type RegistrationRepository interface {
	Insert(ctx context.Context, item Registration) error
	Delete(ctx context.Context, matchID, playerID string) error
	GetByMatchAndPlayer(ctx context.Context, matchID, playerID string) (Registration, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Registration, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}
