package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
	"github.com/gabrielsantos8/futclebs/internal/platform/id"
	"github.com/gabrielsantos8/futclebs/internal/platform/logging"
)

const listEnrichWorkers = 8

// MatchWithExtras decorates a match with the viewer-specific dashboard
// fields: roster size, whether the viewer is registered, and whether the
// viewer still owes votes for it.
type MatchWithExtras struct {
	match.Match
	PlayerCount     int
	IsRegistered    bool
	HasPendingVotes bool
}

// MatchService covers the match lifecycle around the core: creation, the
// dashboard listing, finishing with a score, and cascading deletion.
type MatchService struct {
	matchRepo        match.Repository
	registrationRepo match.RegistrationRepository
	teamRepo         teams.Repository
	voteRepo         vote.Repository
	status           *VotingStatusService
	idgen            id.Generator
	logger           *logging.Logger
	now              func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	registrationRepo match.RegistrationRepository,
	teamRepo teams.Repository,
	voteRepo vote.Repository,
	status *VotingStatusService,
	idgen id.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo:        matchRepo,
		registrationRepo: registrationRepo,
		teamRepo:         teamRepo,
		voteRepo:         voteRepo,
		status:           status,
		idgen:            idgen,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *MatchService) Create(ctx context.Context, date time.Time, createdBy string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if date.IsZero() {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}

	matchID, err := s.idgen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:        matchID,
		Date:      date,
		Status:    match.StatusOpen,
		CreatedBy: strings.TrimSpace(createdBy),
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Insert(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return item, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	item, exists, err := s.matchRepo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// List returns every match, newest first, enriched for the viewer. The
// per-match reads are independent, so they fan out over a small worker pool.
func (s *MatchService) List(ctx context.Context, viewerID string) ([]MatchWithExtras, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	viewerID = strings.TrimSpace(viewerID)

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	out := make([]MatchWithExtras, len(matches))

	pool, err := ants.NewPool(listEnrichWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, m := range matches {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.enrich(ctx, m, viewerID)
		}); err != nil {
			workers.Done()
			out[i] = MatchWithExtras{Match: m}
			s.logger.WarnContext(ctx, "match enrichment not scheduled", "match_id", m.ID, "error", err)
		}
	}
	workers.Wait()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return out, nil
}

func (s *MatchService) enrich(ctx context.Context, m match.Match, viewerID string) MatchWithExtras {
	item := MatchWithExtras{Match: m}

	regs, err := s.registrationRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "list registrations failed during enrichment", "match_id", m.ID, "error", err)
		return item
	}
	item.PlayerCount = len(regs)
	for _, reg := range regs {
		if reg.PlayerID == viewerID {
			item.IsRegistered = true
			break
		}
	}

	if m.Status == match.StatusFinished && item.IsRegistered && viewerID != "" {
		pending, err := s.status.HasPendingVotes(ctx, m.ID, viewerID)
		if err != nil {
			s.logger.WarnContext(ctx, "pending votes lookup failed during enrichment", "match_id", m.ID, "error", err)
		} else {
			item.HasPendingVotes = pending
		}
	}

	return item
}

// Finish records the score and closes the match. Teams must have been drawn
// and saved first; the winner falls out of the goals.
func (s *MatchService) Finish(ctx context.Context, matchID string, goalsA, goalsB int) (teams.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Finish")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return teams.Assignment{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}
	if goalsA < 0 || goalsB < 0 {
		return teams.Assignment{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return teams.Assignment{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return teams.Assignment{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.Status == match.StatusFinished {
		return teams.Assignment{}, fmt.Errorf("%w: match %s is already finished", ErrInvalidInput, matchID)
	}

	assignment, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return teams.Assignment{}, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() {
		return teams.Assignment{}, fmt.Errorf("%w: teams must be drawn before finishing match %s", ErrInvalidInput, matchID)
	}

	winner := teams.WinnerDraw
	switch {
	case goalsA > goalsB:
		winner = teams.WinnerTeamA
	case goalsB > goalsA:
		winner = teams.WinnerTeamB
	}

	if err := s.teamRepo.UpdateResult(ctx, matchID, goalsA, goalsB, winner); err != nil {
		return teams.Assignment{}, fmt.Errorf("update match result: %w", err)
	}
	if err := s.matchRepo.UpdateStatus(ctx, matchID, match.StatusFinished); err != nil {
		return teams.Assignment{}, fmt.Errorf("update match status: %w", err)
	}

	assignment.GoalsA = goalsA
	assignment.GoalsB = goalsB
	assignment.Winner = winner

	return assignment, nil
}

// Delete removes a match with all its dependents: votes, assignment,
// registrations, then the match itself.
func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return fmt.Errorf("get match by id: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	if err := s.voteRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete match votes: %w", err)
	}
	if err := s.teamRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete match assignment: %w", err)
	}
	if err := s.registrationRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete match registrations: %w", err)
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}
