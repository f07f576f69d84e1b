package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
)

// PlayerVotingStatus describes one participant's voting progress for a match.
type PlayerVotingStatus struct {
	PlayerID       string
	Name           string
	IsGoalkeeper   bool
	Team           teams.Side
	TotalTeammates int
	VotedCount     int
	MissingVotes   []string
	HasCompleted   bool
}

// MatchVotingStatus is the match-level view: the per-player list plus the
// single gate that controls whether aggregated ratings may be revealed.
type MatchVotingStatus struct {
	Players        []PlayerVotingStatus
	CompletedCount int
	AllVoted       bool
}

// VotingStatusService derives who still owes votes. Teammates whose account
// was deleted after the match are filtered out on every read so a vanished
// player can never block completion forever.
type VotingStatusService struct {
	teamRepo   teams.Repository
	voteRepo   vote.Repository
	playerRepo player.Repository
}

func NewVotingStatusService(
	teamRepo teams.Repository,
	voteRepo vote.Repository,
	playerRepo player.Repository,
) *VotingStatusService {
	return &VotingStatusService{
		teamRepo:   teamRepo,
		voteRepo:   voteRepo,
		playerRepo: playerRepo,
	}
}

func (s *VotingStatusService) PlayerStatus(ctx context.Context, matchID, playerID string) (PlayerVotingStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingStatusService.PlayerStatus")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if matchID == "" || playerID == "" {
		return PlayerVotingStatus{}, fmt.Errorf("%w: match_id and player_id are required", ErrInvalidInput)
	}

	assignment, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return PlayerVotingStatus{}, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() {
		return PlayerVotingStatus{}, fmt.Errorf("%w: no assignment saved for match %s", ErrNotFound, matchID)
	}

	participants, err := s.playerRepo.GetByIDs(ctx, assignment.AllPlayers())
	if err != nil {
		return PlayerVotingStatus{}, fmt.Errorf("get participants: %w", err)
	}
	existing := make(map[string]player.Player, len(participants))
	for _, p := range participants {
		existing[p.ID] = p
	}

	votes, err := s.voteRepo.ListByMatchAndVoter(ctx, matchID, playerID)
	if err != nil {
		return PlayerVotingStatus{}, fmt.Errorf("list votes by voter: %w", err)
	}

	return s.buildStatus(assignment, existing, playerID, votes), nil
}

func (s *VotingStatusService) MatchStatus(ctx context.Context, matchID string) (MatchVotingStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingStatusService.MatchStatus")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchVotingStatus{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	assignment, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return MatchVotingStatus{}, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() {
		return MatchVotingStatus{}, fmt.Errorf("%w: no assignment saved for match %s", ErrNotFound, matchID)
	}

	participants, err := s.playerRepo.GetByIDs(ctx, assignment.AllPlayers())
	if err != nil {
		return MatchVotingStatus{}, fmt.Errorf("get participants: %w", err)
	}
	existing := make(map[string]player.Player, len(participants))
	for _, p := range participants {
		existing[p.ID] = p
	}

	allVotes, err := s.voteRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchVotingStatus{}, fmt.Errorf("list votes by match: %w", err)
	}
	votesByVoter := make(map[string][]vote.Vote)
	for _, v := range allVotes {
		votesByVoter[v.VoterID] = append(votesByVoter[v.VoterID], v)
	}

	out := MatchVotingStatus{AllVoted: true}
	for _, p := range participants {
		status := s.buildStatus(assignment, existing, p.ID, votesByVoter[p.ID])
		if status.HasCompleted {
			out.CompletedCount++
		} else {
			out.AllVoted = false
		}
		out.Players = append(out.Players, status)
	}
	if len(out.Players) == 0 {
		out.AllVoted = false
	}

	// Incomplete voters first so the dashboard surfaces who is blocking the
	// reveal, then team, then name.
	sort.SliceStable(out.Players, func(i, j int) bool {
		a, b := out.Players[i], out.Players[j]
		if a.HasCompleted != b.HasCompleted {
			return !a.HasCompleted
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.Name < b.Name
	})

	return out, nil
}

// HasPendingVotes reports whether playerID still owes any teammate a vote for
// the given match; false when the player did not take part or teams were
// never drawn.
func (s *VotingStatusService) HasPendingVotes(ctx context.Context, matchID, playerID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VotingStatusService.HasPendingVotes")
	defer span.End()

	assignment, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return false, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() || assignment.SideOf(playerID) == "" {
		return false, nil
	}

	status, err := s.PlayerStatus(ctx, matchID, playerID)
	if err != nil {
		return false, err
	}
	return len(status.MissingVotes) > 0, nil
}

func (s *VotingStatusService) buildStatus(
	assignment teams.Assignment,
	existing map[string]player.Player,
	playerID string,
	votes []vote.Vote,
) PlayerVotingStatus {
	teammates := make([]string, 0)
	for _, id := range assignment.Teammates(playerID) {
		if _, ok := existing[id]; ok {
			teammates = append(teammates, id)
		}
	}

	voted := make(map[string]struct{}, len(votes))
	votedCount := 0
	for _, v := range votes {
		if _, ok := existing[v.TargetID]; ok {
			voted[v.TargetID] = struct{}{}
			votedCount++
		}
	}

	missing := make([]string, 0)
	for _, id := range teammates {
		if _, ok := voted[id]; !ok {
			missing = append(missing, id)
		}
	}

	p := existing[playerID]

	// A player with zero teammates is never reported complete; an orphaned
	// roster must not look finished.
	return PlayerVotingStatus{
		PlayerID:       playerID,
		Name:           p.Name,
		IsGoalkeeper:   p.IsGoalkeeper,
		Team:           assignment.SideOf(playerID),
		TotalTeammates: len(teammates),
		VotedCount:     votedCount,
		MissingVotes:   missing,
		HasCompleted:   len(missing) == 0 && len(teammates) > 0,
	}
}
