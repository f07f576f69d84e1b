package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
	"github.com/gabrielsantos8/futclebs/internal/platform/id"
)

type SubmitVoteInput struct {
	MatchID     string
	VoterID     string
	TargetID    string
	Velocidade  int
	Finalizacao int
	Passe       int
	Drible      int
	Defesa      int
	Fisico      int
}

// VoteService accepts teammate ratings. Preconditions run in a fixed order
// and the first failure wins: teams drawn, same team, not self, not already
// voted. A duplicate is ultimately caught by the store's uniqueness
// constraint, so two racing submissions cannot both land.
type VoteService struct {
	teamRepo teams.Repository
	voteRepo vote.Repository
	status   *VotingStatusService
	idgen    id.Generator
	now      func() time.Time
}

func NewVoteService(
	teamRepo teams.Repository,
	voteRepo vote.Repository,
	status *VotingStatusService,
	idgen id.Generator,
) *VoteService {
	return &VoteService{
		teamRepo: teamRepo,
		voteRepo: voteRepo,
		status:   status,
		idgen:    idgen,
		now:      time.Now,
	}
}

func (s *VoteService) Submit(ctx context.Context, input SubmitVoteInput) (vote.Vote, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VoteService.Submit")
	defer span.End()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.VoterID = strings.TrimSpace(input.VoterID)
	input.TargetID = strings.TrimSpace(input.TargetID)
	if input.MatchID == "" || input.VoterID == "" || input.TargetID == "" {
		return vote.Vote{}, fmt.Errorf("%w: match_id, voter_id and target_id are required", ErrInvalidInput)
	}

	assignment, found, err := s.teamRepo.GetByMatch(ctx, input.MatchID)
	if err != nil {
		return vote.Vote{}, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() {
		return vote.Vote{}, fmt.Errorf("%w: teams have not been drawn for match %s", ErrInvalidInput, input.MatchID)
	}

	voterSide := assignment.SideOf(input.VoterID)
	targetSide := assignment.SideOf(input.TargetID)
	if voterSide == "" || targetSide == "" || voterSide != targetSide {
		return vote.Vote{}, fmt.Errorf("%w: voter %s and target %s are not teammates in match %s", ErrInvalidInput, input.VoterID, input.TargetID, input.MatchID)
	}

	if input.VoterID == input.TargetID {
		return vote.Vote{}, fmt.Errorf("%w: player cannot vote on themselves", ErrInvalidInput)
	}

	voteID, err := s.idgen.NewID()
	if err != nil {
		return vote.Vote{}, fmt.Errorf("generate vote id: %w", err)
	}

	item := vote.Vote{
		ID:          voteID,
		MatchID:     input.MatchID,
		VoterID:     input.VoterID,
		TargetID:    input.TargetID,
		Velocidade:  input.Velocidade,
		Finalizacao: input.Finalizacao,
		Passe:       input.Passe,
		Drible:      input.Drible,
		Defesa:      input.Defesa,
		Fisico:      input.Fisico,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return vote.Vote{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.voteRepo.Insert(ctx, item); err != nil {
		if errors.Is(err, vote.ErrDuplicate) {
			return vote.Vote{}, fmt.Errorf("%w: vote for target %s already recorded in match %s", ErrInvalidInput, input.TargetID, input.MatchID)
		}
		return vote.Vote{}, fmt.Errorf("insert vote: %w", err)
	}

	return item, nil
}

// ForceComplete inserts a neutral all-3s vote for every teammate the voter
// has not rated yet, unblocking a stalled match summary. Each insert runs
// through the full Submit precondition path. Authorization and the explicit
// confirmation step live at the transport layer; the operation itself is
// irreversible. Returns how many votes were inserted.
func (s *VoteService) ForceComplete(ctx context.Context, matchID, voterID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VoteService.ForceComplete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	voterID = strings.TrimSpace(voterID)
	if matchID == "" || voterID == "" {
		return 0, fmt.Errorf("%w: match_id and voter_id are required", ErrInvalidInput)
	}

	status, err := s.status.PlayerStatus(ctx, matchID, voterID)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, targetID := range status.MissingVotes {
		neutral := vote.Neutral(matchID, voterID, targetID)
		if _, err := s.Submit(ctx, SubmitVoteInput{
			MatchID:     neutral.MatchID,
			VoterID:     neutral.VoterID,
			TargetID:    neutral.TargetID,
			Velocidade:  neutral.Velocidade,
			Finalizacao: neutral.Finalizacao,
			Passe:       neutral.Passe,
			Drible:      neutral.Drible,
			Defesa:      neutral.Defesa,
			Fisico:      neutral.Fisico,
		}); err != nil {
			return inserted, fmt.Errorf("force-complete vote for target %s: %w", targetID, err)
		}
		inserted++
	}

	return inserted, nil
}
