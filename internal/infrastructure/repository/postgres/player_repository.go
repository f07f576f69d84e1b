package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

const playerBaseSelect = `
SELECT p.id,
       p.name,
       p.phone,
       p.is_goalkeeper,
       p.positions,
       p.avatar_url,
       s.velocidade,
       s.finalizacao,
       s.passe,
       s.drible,
       s.defesa,
       s.fisico,
       s.overall
FROM players p
LEFT JOIN player_stats s ON s.player_id = p.id`

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, playerBaseSelect+" ORDER BY p.name"); err != nil {
		return nil, crerr.Wrap(err, "list players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, playerBaseSelect+" WHERE p.id = $1", playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "get player")
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	var rows []playerTableModel
	query := playerBaseSelect + " WHERE p.id = ANY($1)"
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(playerIDs)); err != nil {
		return nil, crerr.Wrap(err, "get players by ids")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}
