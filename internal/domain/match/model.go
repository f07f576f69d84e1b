package match

import (
	"fmt"
	"time"
)

// Status follows a match through its life: open for registration, in progress
// once teams are fixed, finished after the score is recorded.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

var AllStatuses = map[Status]struct{}{
	StatusOpen:       {},
	StatusInProgress: {},
	StatusFinished:   {},
}

// Roster capacity enforced at registration time.
const (
	MaxPlayers      = 14
	MaxGoalkeepers  = 2
	MaxFieldPlayers = 12
)

type Match struct {
	ID        string
	Date      time.Time
	Status    Status
	CreatedBy string
	CreatedAt time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	return nil
}

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationWaiting   RegistrationStatus = "waiting"
)

// Registration records one player's spot in a match roster.
type Registration struct {
	MatchID   string
	PlayerID  string
	Status    RegistrationStatus
	CreatedAt time.Time
}
