package teams

import (
	"fmt"
	"time"
)

// Side identifies one of the two teams within an assignment.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Winner is recorded when the match is finished.
type Winner string

const (
	WinnerTeamA Winner = "A"
	WinnerTeamB Winner = "B"
	WinnerDraw  Winner = "draw"
	WinnerNone  Winner = ""
)

// Assignment is the authoritative split of a match roster into two teams.
// Once saved it is locked; edits require an explicit unlock followed by a
// resave, which locks it again.
type Assignment struct {
	MatchID   string
	TeamA     []string
	TeamB     []string
	GoalsA    int
	GoalsB    int
	Winner    Winner
	Locked    bool
	UpdatedAt time.Time
}

// IsPopulated reports whether the assignment actually holds a split. An
// assignment with an empty team A is treated identically to "never assigned"
// by every downstream consumer, so a zero-length legacy record cannot present
// a false lock state.
func (a Assignment) IsPopulated() bool {
	return len(a.TeamA) > 0
}

// SideOf returns which team holds playerID, or "" when the player is not part
// of the assignment.
func (a Assignment) SideOf(playerID string) Side {
	for _, id := range a.TeamA {
		if id == playerID {
			return SideA
		}
	}
	for _, id := range a.TeamB {
		if id == playerID {
			return SideB
		}
	}
	return ""
}

// Teammates returns the ids sharing playerID's team, excluding the player.
// Nil when the player is not in the assignment.
func (a Assignment) Teammates(playerID string) []string {
	var team []string
	switch a.SideOf(playerID) {
	case SideA:
		team = a.TeamA
	case SideB:
		team = a.TeamB
	default:
		return nil
	}

	out := make([]string, 0, len(team)-1)
	for _, id := range team {
		if id != playerID {
			out = append(out, id)
		}
	}
	return out
}

// AllPlayers returns team A followed by team B.
func (a Assignment) AllPlayers() []string {
	out := make([]string, 0, len(a.TeamA)+len(a.TeamB))
	out = append(out, a.TeamA...)
	out = append(out, a.TeamB...)
	return out
}

// Validate checks the structural invariants: no duplicate ids across the two
// teams and, when rosterIDs is non-nil, exact coverage of the roster.
func (a Assignment) Validate(rosterIDs []string) error {
	if a.MatchID == "" {
		return fmt.Errorf("assignment match id is required")
	}

	seen := make(map[string]struct{}, len(a.TeamA)+len(a.TeamB))
	for _, id := range a.AllPlayers() {
		if id == "" {
			return fmt.Errorf("assignment contains an empty player id")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("player %s appears twice in the assignment", id)
		}
		seen[id] = struct{}{}
	}

	if rosterIDs == nil {
		return nil
	}

	roster := make(map[string]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		roster[id] = struct{}{}
	}
	if len(seen) != len(roster) {
		return fmt.Errorf("assignment covers %d players, roster has %d", len(seen), len(roster))
	}
	for id := range seen {
		if _, ok := roster[id]; !ok {
			return fmt.Errorf("player %s is not part of the match roster", id)
		}
	}

	return nil
}

// Move returns a copy of the assignment with playerID switched to the other
// team. The input is never mutated; callers use this for pre-save edits.
func Move(a Assignment, playerID string) (Assignment, error) {
	side := a.SideOf(playerID)
	if side == "" {
		return Assignment{}, fmt.Errorf("player %s is not in the assignment", playerID)
	}

	out := a
	out.TeamA = append([]string(nil), a.TeamA...)
	out.TeamB = append([]string(nil), a.TeamB...)

	if side == SideA {
		out.TeamA = removeID(out.TeamA, playerID)
		out.TeamB = append(out.TeamB, playerID)
	} else {
		out.TeamB = removeID(out.TeamB, playerID)
		out.TeamA = append(out.TeamA, playerID)
	}

	return out, nil
}

func removeID(ids []string, playerID string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != playerID {
			out = append(out, id)
		}
	}
	return out
}
