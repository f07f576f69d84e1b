package player

import "fmt"

// Position represents the field sectors a player declares preference for.
// Goalkeepers hold no field positions; their implicit position is goal.
type Position string

const (
	PositionAttack   Position = "ATK"
	PositionMidfield Position = "MID"
	PositionDefense  Position = "DEF"
)

var AllPositions = map[Position]struct{}{
	PositionAttack:   {},
	PositionMidfield: {},
	PositionDefense:  {},
}

const MaxDeclaredPositions = 2

const (
	AttributeMin = 0.0
	AttributeMax = 5.0
)

// Attributes are the six rated skills plus the externally computed overall.
// Overall is an opaque input here; the weighting formula lives outside this
// service and its value is stored as received.
type Attributes struct {
	Velocidade  float64
	Finalizacao float64
	Passe       float64
	Drible      float64
	Defesa      float64
	Fisico      float64
	Overall     float64
}

// Player is a registered account that can join matches and be rated.
type Player struct {
	ID           string
	Name         string
	Phone        string
	IsGoalkeeper bool
	Positions    []Position
	Attributes   Attributes
	Avatar       string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.IsGoalkeeper && len(p.Positions) > 0 {
		return fmt.Errorf("goalkeeper cannot declare field positions")
	}
	if len(p.Positions) > MaxDeclaredPositions {
		return fmt.Errorf("player may declare at most %d positions", MaxDeclaredPositions)
	}
	seen := make(map[Position]struct{}, len(p.Positions))
	for _, pos := range p.Positions {
		if _, ok := AllPositions[pos]; !ok {
			return fmt.Errorf("invalid player position: %s", pos)
		}
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("duplicate player position: %s", pos)
		}
		seen[pos] = struct{}{}
	}
	for name, value := range map[string]float64{
		"velocidade":  p.Attributes.Velocidade,
		"finalizacao": p.Attributes.Finalizacao,
		"passe":       p.Attributes.Passe,
		"drible":      p.Attributes.Drible,
		"defesa":      p.Attributes.Defesa,
		"fisico":      p.Attributes.Fisico,
		"overall":     p.Attributes.Overall,
	} {
		if value < AttributeMin || value > AttributeMax {
			return fmt.Errorf("attribute %s out of range [%v,%v]: %v", name, AttributeMin, AttributeMax, value)
		}
	}

	return nil
}

// PrimaryPosition returns the first declared position, or "" when the player
// has none (goalkeepers included).
func (p Player) PrimaryPosition() Position {
	if len(p.Positions) == 0 {
		return ""
	}
	return p.Positions[0]
}

// HasPosition reports whether pos appears anywhere in the declared list,
// secondary positions included.
func (p Player) HasPosition(pos Position) bool {
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
	}
	return false
}
