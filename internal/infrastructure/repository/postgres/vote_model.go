package postgres

import (
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
)

type voteTableModel struct {
	ID          string    `db:"id"`
	MatchID     string    `db:"match_id"`
	VoterID     string    `db:"voter_id"`
	TargetID    string    `db:"target_player_id"`
	Velocidade  int       `db:"velocidade"`
	Finalizacao int       `db:"finalizacao"`
	Passe       int       `db:"passe"`
	Drible      int       `db:"drible"`
	Defesa      int       `db:"defesa"`
	Fisico      int       `db:"fisico"`
	CreatedAt   time.Time `db:"created_at"`
}

func voteFromRow(row voteTableModel) vote.Vote {
	return vote.Vote{
		ID:          row.ID,
		MatchID:     row.MatchID,
		VoterID:     row.VoterID,
		TargetID:    row.TargetID,
		Velocidade:  row.Velocidade,
		Finalizacao: row.Finalizacao,
		Passe:       row.Passe,
		Drible:      row.Drible,
		Defesa:      row.Defesa,
		Fisico:      row.Fisico,
		CreatedAt:   row.CreatedAt,
	}
}
