package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
)

// TeamService drives the draw/save/unlock cycle for a match's team split.
// Draw returns a preview; nothing is authoritative until Save persists and
// locks it. Re-rolling is just calling Draw again: the shuffle inside the
// balancer produces a fresh valid split each time.
type TeamService struct {
	matchRepo    match.Repository
	teamRepo     teams.Repository
	registration *RegistrationService
	newRand      func() *rand.Rand
	now          func() time.Time
}

func NewTeamService(
	matchRepo match.Repository,
	teamRepo teams.Repository,
	registration *RegistrationService,
) *TeamService {
	return &TeamService{
		matchRepo:    matchRepo,
		teamRepo:     teamRepo,
		registration: registration,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

// SetRandFactory pins the balancer's randomness, used by tests to make draws
// reproducible.
func (s *TeamService) SetRandFactory(factory func() *rand.Rand) {
	if factory != nil {
		s.newRand = factory
	}
}

// Draw assembles the confirmed roster and produces a balanced, unpersisted
// split.
func (s *TeamService) Draw(ctx context.Context, matchID string) (teams.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Draw")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return teams.Assignment{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return teams.Assignment{}, fmt.Errorf("get match by id: %w", err)
	} else if !exists {
		return teams.Assignment{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	roster, err := s.registration.Roster(ctx, matchID)
	if err != nil {
		return teams.Assignment{}, err
	}
	if len(roster) < 2 {
		return teams.Assignment{}, fmt.Errorf("%w: at least 2 confirmed players are required to draw teams, got %d", ErrInvalidInput, len(roster))
	}

	return teams.Draw(matchID, roster, s.newRand()), nil
}

// Save persists a split as the authoritative assignment for the match and
// locks it. The split must exactly cover the confirmed roster. While a
// populated assignment is locked, Save is rejected; unlock first. Goals are
// zeroed because the match has not been played against this split yet.
func (s *TeamService) Save(ctx context.Context, matchID string, teamA, teamB []string) (teams.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Save")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return teams.Assignment{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return teams.Assignment{}, fmt.Errorf("get match by id: %w", err)
	} else if !exists {
		return teams.Assignment{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	existing, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return teams.Assignment{}, fmt.Errorf("get assignment by match: %w", err)
	}
	if found && existing.IsPopulated() && existing.Locked {
		return teams.Assignment{}, fmt.Errorf("%w: assignment for match %s is locked, unlock before resaving", ErrInvalidInput, matchID)
	}

	roster, err := s.registration.Roster(ctx, matchID)
	if err != nil {
		return teams.Assignment{}, err
	}
	rosterIDs := make([]string, 0, len(roster))
	for _, p := range roster {
		rosterIDs = append(rosterIDs, p.ID)
	}

	item := teams.Assignment{
		MatchID:   matchID,
		TeamA:     append([]string(nil), teamA...),
		TeamB:     append([]string(nil), teamB...),
		Winner:    teams.WinnerNone,
		Locked:    true,
		UpdatedAt: s.now().UTC(),
	}
	if !item.IsPopulated() {
		return teams.Assignment{}, fmt.Errorf("%w: team A cannot be empty", ErrInvalidInput)
	}
	if err := item.Validate(rosterIDs); err != nil {
		return teams.Assignment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return teams.Assignment{}, fmt.Errorf("save assignment: %w", err)
	}

	return item, nil
}

// Unlock reopens a saved assignment for editing. It is the only path to
// mutating a persisted split.
func (s *TeamService) Unlock(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Unlock")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	existing, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !existing.IsPopulated() {
		return fmt.Errorf("%w: no assignment saved for match %s", ErrNotFound, matchID)
	}

	if err := s.teamRepo.SetLocked(ctx, matchID, false); err != nil {
		return fmt.Errorf("unlock assignment: %w", err)
	}
	return nil
}

// Get returns the saved assignment. Unpopulated records are reported as
// absent so stale empty rows never masquerade as a locked split.
func (s *TeamService) Get(ctx context.Context, matchID string) (teams.Assignment, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return teams.Assignment{}, false, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return teams.Assignment{}, false, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !item.IsPopulated() {
		return teams.Assignment{}, false, nil
	}
	return item, true, nil
}
