package teams

import (
	"math/rand"
	"sort"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

// Ideal formation shape per team for the usual 7-a-side night: two attackers,
// one midfielder, two defenders, plus the goalkeeper.
const (
	idealAttackers   = 2
	idealMidfielders = 1
	idealDefenders   = 2
)

// Draw partitions a roster into two teams. Goalkeepers are parity-balanced
// first, then field players are distributed by position scarcity rather than
// raw overall, so skill spreads across both offense and defense instead of
// stacking on one side. The shuffle is the re-roll mechanism: every call with
// a fresh source may yield a different, equally valid split.
//
// Preconditions (enforced by registration, assumed here): 2–14 players, at
// most 2 goalkeepers. A roster with no goalkeeper is valid; a roster where
// everyone shares one position degenerates to greedy-by-overall.
func Draw(matchID string, roster []player.Player, rng *rand.Rand) Assignment {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	shuffled := append([]player.Player(nil), roster...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var goalkeepers, field []player.Player
	for _, p := range shuffled {
		if p.IsGoalkeeper {
			goalkeepers = append(goalkeepers, p)
		} else {
			field = append(field, p)
		}
	}

	var teamA, teamB []player.Player
	for i, gk := range goalkeepers {
		if i%2 == 0 {
			teamA = append(teamA, gk)
		} else {
			teamB = append(teamB, gk)
		}
	}

	pools := map[player.Position][]player.Player{}
	var unpositioned []player.Player
	for _, p := range field {
		if primary := p.PrimaryPosition(); primary != "" {
			pools[primary] = append(pools[primary], p)
		} else {
			unpositioned = append(unpositioned, p)
		}
	}

	for _, pos := range []player.Position{player.PositionAttack, player.PositionMidfield, player.PositionDefense} {
		pool := pools[pos]
		sortByOverallDesc(pool)
		for _, p := range pool {
			teamA, teamB = placeByScarcity(teamA, teamB, p, pos)
		}
	}

	sortByOverallDesc(unpositioned)
	for _, p := range unpositioned {
		teamA, teamB = placeByNeed(teamA, teamB, p)
	}

	return Assignment{
		MatchID: matchID,
		TeamA:   playerIDs(teamA),
		TeamB:   playerIDs(teamB),
	}
}

// placeByScarcity sends p to whichever team holds fewer players of pos; on an
// exact tie, to the team whose resulting position counts sit closer to the
// 2-1-2 ideal.
func placeByScarcity(teamA, teamB []player.Player, p player.Player, pos player.Position) ([]player.Player, []player.Player) {
	countA := countPosition(teamA, pos)
	countB := countPosition(teamB, pos)

	switch {
	case countA < countB:
		return append(teamA, p), teamB
	case countB < countA:
		return teamA, append(teamB, p)
	}

	distA := formationDistance(append(append([]player.Player(nil), teamA...), p))
	distB := formationDistance(append(append([]player.Player(nil), teamB...), p))
	if distA <= distB {
		return append(teamA, p), teamB
	}
	return teamA, append(teamB, p)
}

// placeByNeed sends a position-less player to the team with the larger unmet
// 2-1-2 need; ties go to the smaller team.
func placeByNeed(teamA, teamB []player.Player, p player.Player) ([]player.Player, []player.Player) {
	needA := unmetNeed(teamA)
	needB := unmetNeed(teamB)

	switch {
	case needA > needB:
		return append(teamA, p), teamB
	case needB > needA:
		return teamA, append(teamB, p)
	case len(teamA) <= len(teamB):
		return append(teamA, p), teamB
	default:
		return teamA, append(teamB, p)
	}
}

// countPosition counts team members declaring pos anywhere in their list, so
// a secondary midfielder still counts toward midfield coverage.
func countPosition(team []player.Player, pos player.Position) int {
	count := 0
	for _, p := range team {
		if p.HasPosition(pos) {
			count++
		}
	}
	return count
}

func formationDistance(team []player.Player) int {
	atk := countPosition(team, player.PositionAttack) - idealAttackers
	mid := countPosition(team, player.PositionMidfield) - idealMidfielders
	def := countPosition(team, player.PositionDefense) - idealDefenders
	return atk*atk + mid*mid + def*def
}

func unmetNeed(team []player.Player) int {
	need := 0
	need += max(0, idealAttackers-countPosition(team, player.PositionAttack))
	need += max(0, idealMidfielders-countPosition(team, player.PositionMidfield))
	need += max(0, idealDefenders-countPosition(team, player.PositionDefense))
	return need
}

// sortByOverallDesc keeps shuffle order on equal overalls so re-rolls stay
// varied among evenly rated players.
func sortByOverallDesc(pool []player.Player) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Attributes.Overall > pool[j].Attributes.Overall
	})
}

func playerIDs(team []player.Player) []string {
	ids := make([]string, 0, len(team))
	for _, p := range team {
		ids = append(ids, p.ID)
	}
	return ids
}
