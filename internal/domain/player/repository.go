package player

import "context"

// Repository describes player persistence needs from use cases. Accounts are
// created and deleted by the external registration subsystem; this service
// only reads them.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
}
