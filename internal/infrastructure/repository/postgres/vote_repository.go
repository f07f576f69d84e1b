package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
)

type VoteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Insert relies on the unique index over (match_id, voter_id,
// target_player_id) to reject duplicate submissions atomically.
func (r *VoteRepository) Insert(ctx context.Context, item vote.Vote) error {
	const query = `
INSERT INTO player_votes (id, match_id, voter_id, target_player_id, velocidade, finalizacao, passe, drible, defesa, fisico, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.MatchID,
		item.VoterID,
		item.TargetID,
		item.Velocidade,
		item.Finalizacao,
		item.Passe,
		item.Drible,
		item.Defesa,
		item.Fisico,
		item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return vote.ErrDuplicate
		}
		return crerr.Wrap(err, "insert vote")
	}
	return nil
}

func (r *VoteRepository) ListByMatch(ctx context.Context, matchID string) ([]vote.Vote, error) {
	const query = `SELECT * FROM player_votes WHERE match_id = $1 ORDER BY created_at`

	var rows []voteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID); err != nil {
		return nil, crerr.Wrap(err, "list votes by match")
	}

	out := make([]vote.Vote, 0, len(rows))
	for _, row := range rows {
		out = append(out, voteFromRow(row))
	}
	return out, nil
}

func (r *VoteRepository) ListByMatchAndVoter(ctx context.Context, matchID, voterID string) ([]vote.Vote, error) {
	const query = `SELECT * FROM player_votes WHERE match_id = $1 AND voter_id = $2 ORDER BY created_at`

	var rows []voteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID, voterID); err != nil {
		return nil, crerr.Wrap(err, "list votes by voter")
	}

	out := make([]vote.Vote, 0, len(rows))
	for _, row := range rows {
		out = append(out, voteFromRow(row))
	}
	return out, nil
}

func (r *VoteRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_votes WHERE match_id = $1`, matchID); err != nil {
		return crerr.Wrap(err, "delete votes by match")
	}
	return nil
}
