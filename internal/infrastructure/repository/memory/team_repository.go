package memory

import (
	"context"
	"sync"

	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]teams.Assignment
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{items: make(map[string]teams.Assignment)}
}

func (r *TeamRepository) GetByMatch(_ context.Context, matchID string) (teams.Assignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok {
		return teams.Assignment{}, false, nil
	}

	return cloneAssignment(item), true, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item teams.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.MatchID] = cloneAssignment(item)
	return nil
}

func (r *TeamRepository) SetLocked(_ context.Context, matchID string, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[matchID]
	if !ok {
		return nil
	}
	item.Locked = locked
	r.items[matchID] = item
	return nil
}

func (r *TeamRepository) UpdateResult(_ context.Context, matchID string, goalsA, goalsB int, winner teams.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[matchID]
	if !ok {
		return nil
	}
	item.GoalsA = goalsA
	item.GoalsB = goalsB
	item.Winner = winner
	r.items[matchID] = item
	return nil
}

func (r *TeamRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, matchID)
	return nil
}

func cloneAssignment(item teams.Assignment) teams.Assignment {
	copied := item
	copied.TeamA = append([]string(nil), item.TeamA...)
	copied.TeamB = append([]string(nil), item.TeamB...)
	return copied
}
