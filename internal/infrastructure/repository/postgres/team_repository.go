package postgres

import (
	"context"
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByMatch(ctx context.Context, matchID string) (teams.Assignment, bool, error) {
	const query = `SELECT * FROM match_results WHERE match_id = $1`

	var row teamAssignmentTableModel
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return teams.Assignment{}, false, nil
		}
		return teams.Assignment{}, false, crerr.Wrap(err, "get team assignment")
	}

	return assignmentFromRow(row), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item teams.Assignment) error {
	const query = `
INSERT INTO match_results (match_id, players_team_a, players_team_b, goals_team_a, goals_team_b, winner, locked, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (match_id)
DO UPDATE SET
    players_team_a = EXCLUDED.players_team_a,
    players_team_b = EXCLUDED.players_team_b,
    goals_team_a = EXCLUDED.goals_team_a,
    goals_team_b = EXCLUDED.goals_team_b,
    winner = EXCLUDED.winner,
    locked = EXCLUDED.locked,
    updated_at = EXCLUDED.updated_at`

	winner := sql.NullString{String: string(item.Winner), Valid: item.Winner != teams.WinnerNone}
	_, err := r.db.ExecContext(ctx, query,
		item.MatchID,
		pq.StringArray(item.TeamA),
		pq.StringArray(item.TeamB),
		item.GoalsA,
		item.GoalsB,
		winner,
		item.Locked,
		item.UpdatedAt,
	)
	if err != nil {
		return crerr.Wrap(err, "upsert team assignment")
	}
	return nil
}

func (r *TeamRepository) SetLocked(ctx context.Context, matchID string, locked bool) error {
	const query = `UPDATE match_results SET locked = $2, updated_at = now() WHERE match_id = $1`
	if _, err := r.db.ExecContext(ctx, query, matchID, locked); err != nil {
		return crerr.Wrap(err, "set team assignment lock")
	}
	return nil
}

func (r *TeamRepository) UpdateResult(ctx context.Context, matchID string, goalsA, goalsB int, winner teams.Winner) error {
	const query = `
UPDATE match_results
SET goals_team_a = $2, goals_team_b = $3, winner = $4, updated_at = now()
WHERE match_id = $1`

	w := sql.NullString{String: string(winner), Valid: winner != teams.WinnerNone}
	if _, err := r.db.ExecContext(ctx, query, matchID, goalsA, goalsB, w); err != nil {
		return crerr.Wrap(err, "update match result")
	}
	return nil
}

func (r *TeamRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM match_results WHERE match_id = $1`, matchID); err != nil {
		return crerr.Wrap(err, "delete team assignment")
	}
	return nil
}
