package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

// RegistrationService owns the match roster: who is in, and whether the
// goalkeeper/field caps still allow another spot. Team drawing assumes the
// roster it receives from here is already within capacity.
type RegistrationService struct {
	matchRepo        match.Repository
	registrationRepo match.RegistrationRepository
	playerRepo       player.Repository
	now              func() time.Time
}

func NewRegistrationService(
	matchRepo match.Repository,
	registrationRepo match.RegistrationRepository,
	playerRepo player.Repository,
) *RegistrationService {
	return &RegistrationService{
		matchRepo:        matchRepo,
		registrationRepo: registrationRepo,
		playerRepo:       playerRepo,
		now:              time.Now,
	}
}

func (s *RegistrationService) Register(ctx context.Context, matchID, playerID string) (match.Registration, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Register")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if matchID == "" || playerID == "" {
		return match.Registration{}, fmt.Errorf("%w: match_id and player_id are required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Registration{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Registration{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.Status != match.StatusOpen {
		return match.Registration{}, fmt.Errorf("%w: match %s is not open for registration", ErrInvalidInput, matchID)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return match.Registration{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return match.Registration{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if _, already, err := s.registrationRepo.GetByMatchAndPlayer(ctx, matchID, playerID); err != nil {
		return match.Registration{}, fmt.Errorf("check existing registration: %w", err)
	} else if already {
		return match.Registration{}, fmt.Errorf("%w: player %s is already registered", ErrInvalidInput, playerID)
	}

	roster, err := s.Roster(ctx, matchID)
	if err != nil {
		return match.Registration{}, err
	}

	goalkeepers := 0
	for _, existing := range roster {
		if existing.IsGoalkeeper {
			goalkeepers++
		}
	}
	fieldPlayers := len(roster) - goalkeepers

	switch {
	case len(roster) >= match.MaxPlayers:
		return match.Registration{}, fmt.Errorf("%w: match is full (%d/%d)", ErrCapacityExceeded, len(roster), match.MaxPlayers)
	case p.IsGoalkeeper && goalkeepers >= match.MaxGoalkeepers:
		return match.Registration{}, fmt.Errorf("%w: goalkeeper spots are taken (%d/%d)", ErrCapacityExceeded, goalkeepers, match.MaxGoalkeepers)
	case !p.IsGoalkeeper && fieldPlayers >= match.MaxFieldPlayers:
		return match.Registration{}, fmt.Errorf("%w: field spots are taken (%d/%d)", ErrCapacityExceeded, fieldPlayers, match.MaxFieldPlayers)
	}

	item := match.Registration{
		MatchID:   matchID,
		PlayerID:  playerID,
		Status:    match.RegistrationConfirmed,
		CreatedAt: s.now().UTC(),
	}
	if err := s.registrationRepo.Insert(ctx, item); err != nil {
		return match.Registration{}, fmt.Errorf("insert registration: %w", err)
	}

	return item, nil
}

func (s *RegistrationService) Withdraw(ctx context.Context, matchID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Withdraw")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if matchID == "" || playerID == "" {
		return fmt.Errorf("%w: match_id and player_id are required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.Status != match.StatusOpen {
		return fmt.Errorf("%w: cannot withdraw from a %s match", ErrInvalidInput, m.Status)
	}

	if _, registered, err := s.registrationRepo.GetByMatchAndPlayer(ctx, matchID, playerID); err != nil {
		return fmt.Errorf("check existing registration: %w", err)
	} else if !registered {
		return fmt.Errorf("%w: player %s is not registered for match %s", ErrNotFound, playerID, matchID)
	}

	if err := s.registrationRepo.Delete(ctx, matchID, playerID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

// Roster returns the confirmed players for a match, registration order
// preserved. Registrations whose account disappeared are silently skipped.
func (s *RegistrationService) Roster(ctx context.Context, matchID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Roster")
	defer span.End()

	regs, err := s.registrationRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by match: %w", err)
	}

	sort.SliceStable(regs, func(i, j int) bool { return regs[i].CreatedAt.Before(regs[j].CreatedAt) })

	ids := make([]string, 0, len(regs))
	for _, reg := range regs {
		if reg.Status == match.RegistrationConfirmed {
			ids = append(ids, reg.PlayerID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get roster players: %w", err)
	}

	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
