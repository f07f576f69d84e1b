package postgres

import (
	"database/sql"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
)

type matchTableModel struct {
	ID        string         `db:"id"`
	Date      time.Time      `db:"date"`
	Status    string         `db:"status"`
	CreatedBy sql.NullString `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:        row.ID,
		Date:      row.Date,
		Status:    match.Status(row.Status),
		CreatedBy: row.CreatedBy.String,
		CreatedAt: row.CreatedAt,
	}
}

type registrationTableModel struct {
	MatchID   string    `db:"match_id"`
	PlayerID  string    `db:"player_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func registrationFromRow(row registrationTableModel) match.Registration {
	return match.Registration{
		MatchID:   row.MatchID,
		PlayerID:  row.PlayerID,
		Status:    match.RegistrationStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}
}
