package memory

import (
	"context"
	"sync"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	order []string
	index map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	order := make([]string, 0, len(players))
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		order = append(order, p.ID)
		index[p.ID] = clonePlayer(p)
	}

	return &PlayerRepository{order: order, index: index}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePlayer(r.index[id]))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		item, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, clonePlayer(item))
	}

	return out, nil
}

// Upsert is not part of the use-case contract; dev tooling and tests use it
// to grow the roster beyond the seed.
func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[item.ID]; !ok {
		r.order = append(r.order, item.ID)
	}
	r.index[item.ID] = clonePlayer(item)
	return nil
}

func clonePlayer(item player.Player) player.Player {
	copied := item
	copied.Positions = append([]player.Position(nil), item.Positions...)
	return copied
}
