package postgres

import (
	"context"
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) error {
	const query = `
INSERT INTO matches (id, date, status, created_by, created_at)
VALUES ($1, $2, $3, $4, $5)`

	createdBy := sql.NullString{String: item.CreatedBy, Valid: item.CreatedBy != ""}
	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Date, string(item.Status), createdBy, item.CreatedAt); err != nil {
		return crerr.Wrap(err, "insert match")
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM matches WHERE id = $1`, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrap(err, "get match")
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM matches ORDER BY date DESC`); err != nil {
		return nil, crerr.Wrap(err, "list matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID string, status match.Status) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE matches SET status = $2 WHERE id = $1`, matchID, string(status)); err != nil {
		return crerr.Wrap(err, "update match status")
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, matchID); err != nil {
		return crerr.Wrap(err, "delete match")
	}
	return nil
}
