package vote

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicate is returned by repositories when a vote for the same
// (match, voter, target) triple already exists. The uniqueness constraint at
// the store is the correctness backstop against racing submissions; an
// application-level read-then-write check alone would not be race-free.
var ErrDuplicate = errors.New("vote already recorded for this teammate")

const (
	RatingMin = 1
	RatingMax = 5

	// NeutralRating is the midpoint used by the administrative
	// force-complete path; a full neutral vote scores 60/100.
	NeutralRating = 3

	// scoreScale maps the 1–5 star scale onto 0–100.
	scoreScale = 20.0
)

// Vote is one immutable rating of a teammate for one match.
type Vote struct {
	ID          string
	MatchID     string
	VoterID     string
	TargetID    string
	Velocidade  int
	Finalizacao int
	Passe       int
	Drible      int
	Defesa      int
	Fisico      int
	CreatedAt   time.Time
}

func (v Vote) Validate() error {
	if v.MatchID == "" {
		return fmt.Errorf("vote match id is required")
	}
	if v.VoterID == "" {
		return fmt.Errorf("vote voter id is required")
	}
	if v.TargetID == "" {
		return fmt.Errorf("vote target id is required")
	}
	if v.VoterID == v.TargetID {
		return fmt.Errorf("player cannot vote on themselves")
	}
	for name, value := range map[string]int{
		"velocidade":  v.Velocidade,
		"finalizacao": v.Finalizacao,
		"passe":       v.Passe,
		"drible":      v.Drible,
		"defesa":      v.Defesa,
		"fisico":      v.Fisico,
	} {
		if value < RatingMin || value > RatingMax {
			return fmt.Errorf("rating %s must be between %d and %d", name, RatingMin, RatingMax)
		}
	}
	return nil
}

// Score reduces the vote to a 0–100 value. Goalkeepers are judged on
// distribution and shot-stopping only, so their score averages passe and
// defesa; the other four attributes stay recorded but never count. Zeroed
// attributes from legacy records are skipped rather than dragging the mean.
func (v Vote) Score(targetIsGoalkeeper bool) float64 {
	var attrs []int
	if targetIsGoalkeeper {
		attrs = []int{v.Passe, v.Defesa}
	} else {
		attrs = []int{v.Velocidade, v.Finalizacao, v.Passe, v.Drible, v.Defesa, v.Fisico}
	}

	sum, count := 0, 0
	for _, value := range attrs {
		if value > 0 {
			sum += value
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return float64(sum) / float64(count) * scoreScale
}

// Neutral builds the all-midpoint vote inserted by force-complete.
func Neutral(matchID, voterID, targetID string) Vote {
	return Vote{
		MatchID:     matchID,
		VoterID:     voterID,
		TargetID:    targetID,
		Velocidade:  NeutralRating,
		Finalizacao: NeutralRating,
		Passe:       NeutralRating,
		Drible:      NeutralRating,
		Defesa:      NeutralRating,
		Fisico:      NeutralRating,
	}
}
