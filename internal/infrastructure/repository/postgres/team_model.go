package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
)

type teamAssignmentTableModel struct {
	MatchID   string         `db:"match_id"`
	TeamA     pq.StringArray `db:"players_team_a"`
	TeamB     pq.StringArray `db:"players_team_b"`
	GoalsA    int            `db:"goals_team_a"`
	GoalsB    int            `db:"goals_team_b"`
	Winner    sql.NullString `db:"winner"`
	Locked    bool           `db:"locked"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func assignmentFromRow(row teamAssignmentTableModel) teams.Assignment {
	return teams.Assignment{
		MatchID:   row.MatchID,
		TeamA:     append([]string(nil), row.TeamA...),
		TeamB:     append([]string(nil), row.TeamB...),
		GoalsA:    row.GoalsA,
		GoalsB:    row.GoalsB,
		Winner:    teams.Winner(row.Winner.String),
		Locked:    row.Locked,
		UpdatedAt: row.UpdatedAt,
	}
}
