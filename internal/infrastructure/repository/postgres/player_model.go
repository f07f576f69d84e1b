package postgres

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

// playerTableModel joins players with their stats row. Accounts without a
// stats row yet read all attributes as zero.
type playerTableModel struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Phone        string          `db:"phone"`
	IsGoalkeeper bool            `db:"is_goalkeeper"`
	Positions    pq.StringArray  `db:"positions"`
	AvatarURL    sql.NullString  `db:"avatar_url"`
	Velocidade   sql.NullFloat64 `db:"velocidade"`
	Finalizacao  sql.NullFloat64 `db:"finalizacao"`
	Passe        sql.NullFloat64 `db:"passe"`
	Drible       sql.NullFloat64 `db:"drible"`
	Defesa       sql.NullFloat64 `db:"defesa"`
	Fisico       sql.NullFloat64 `db:"fisico"`
	Overall      sql.NullFloat64 `db:"overall"`
}

func playerFromRow(row playerTableModel) player.Player {
	positions := make([]player.Position, 0, len(row.Positions))
	for _, p := range row.Positions {
		positions = append(positions, player.Position(p))
	}

	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		Phone:        row.Phone,
		IsGoalkeeper: row.IsGoalkeeper,
		Positions:    positions,
		Attributes: player.Attributes{
			Velocidade:  row.Velocidade.Float64,
			Finalizacao: row.Finalizacao.Float64,
			Passe:       row.Passe.Float64,
			Drible:      row.Drible.Float64,
			Defesa:      row.Defesa.Float64,
			Fisico:      row.Fisico.Float64,
			Overall:     row.Overall.Float64,
		},
		Avatar: row.AvatarURL.String,
	}
}
