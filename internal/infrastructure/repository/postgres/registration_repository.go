package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
)

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Insert(ctx context.Context, item match.Registration) error {
	const query = `
INSERT INTO match_registrations (match_id, player_id, status, created_at)
VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, item.MatchID, item.PlayerID, string(item.Status), item.CreatedAt); err != nil {
		return crerr.Wrap(err, "insert registration")
	}
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, matchID, playerID string) error {
	const query = `DELETE FROM match_registrations WHERE match_id = $1 AND player_id = $2`
	if _, err := r.db.ExecContext(ctx, query, matchID, playerID); err != nil {
		return crerr.Wrap(err, "delete registration")
	}
	return nil
}

func (r *RegistrationRepository) GetByMatchAndPlayer(ctx context.Context, matchID, playerID string) (match.Registration, bool, error) {
	const query = `SELECT * FROM match_registrations WHERE match_id = $1 AND player_id = $2`

	var row registrationTableModel
	if err := r.db.GetContext(ctx, &row, query, matchID, playerID); err != nil {
		if isNotFound(err) {
			return match.Registration{}, false, nil
		}
		return match.Registration{}, false, crerr.Wrap(err, "get registration")
	}

	return registrationFromRow(row), true, nil
}

func (r *RegistrationRepository) ListByMatch(ctx context.Context, matchID string) ([]match.Registration, error) {
	const query = `SELECT * FROM match_registrations WHERE match_id = $1 ORDER BY created_at`

	var rows []registrationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID); err != nil {
		return nil, crerr.Wrap(err, "list registrations")
	}

	out := make([]match.Registration, 0, len(rows))
	for _, row := range rows {
		out = append(out, registrationFromRow(row))
	}
	return out, nil
}

func (r *RegistrationRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM match_registrations WHERE match_id = $1`, matchID); err != nil {
		return crerr.Wrap(err, "delete registrations by match")
	}
	return nil
}
