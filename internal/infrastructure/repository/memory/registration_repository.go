package memory

import (
	"context"
	"sync"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
)

type RegistrationRepository struct {
	mu      sync.RWMutex
	byMatch map[string][]match.Registration
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{byMatch: make(map[string][]match.Registration)}
}

func (r *RegistrationRepository) Insert(_ context.Context, item match.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byMatch[item.MatchID] = append(r.byMatch[item.MatchID], item)
	return nil
}

func (r *RegistrationRepository) Delete(_ context.Context, matchID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byMatch[matchID]
	for i, item := range items {
		if item.PlayerID == playerID {
			r.byMatch[matchID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *RegistrationRepository) GetByMatchAndPlayer(_ context.Context, matchID, playerID string) (match.Registration, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byMatch[matchID] {
		if item.PlayerID == playerID {
			return item, true, nil
		}
	}

	return match.Registration{}, false, nil
}

func (r *RegistrationRepository) ListByMatch(_ context.Context, matchID string) ([]match.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byMatch[matchID]
	out := make([]match.Registration, 0, len(items))
	out = append(out, items...)

	return out, nil
}

func (r *RegistrationRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byMatch, matchID)
	return nil
}
