package user

// Role is an explicit capability level carried with every privileged call.
// Privilege is data supplied by the upstream identity layer, never a list of
// ids baked into this service.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
	RoleSuper  Role = "super"
)

// Principal identifies the caller on authorized routes. Authentication itself
// happens upstream; the gateway forwards the verified identity.
type Principal struct {
	PlayerID string
	Role     Role
}

// IsAdmin covers both organizer and super capabilities.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuper
}

// CanSeeVoterIdentity restricts de-anonymized vote detail to super viewers;
// ordinary viewers never learn who cast which vote.
func (p Principal) CanSeeVoterIdentity() bool {
	return p.Role == RoleSuper
}

// CanSeeRatingsEarly lets privileged viewers read aggregated ratings before
// every participant has voted.
func (p Principal) CanSeeRatingsEarly() bool {
	return p.IsAdmin()
}
