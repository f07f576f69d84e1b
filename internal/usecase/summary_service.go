package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/domain/user"
	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
)

// VoteDetail is one raw vote as shown in the expanded summary. VoterName is
// populated only on the privileged path; votes stay anonymous otherwise.
type VoteDetail struct {
	Velocidade  int
	Finalizacao int
	Passe       int
	Drible      int
	Defesa      int
	Fisico      int
	Score       float64
	VoterName   string
}

// PlayerMatchRating is the aggregated per-target result for one match.
type PlayerMatchRating struct {
	PlayerID     string
	Name         string
	IsGoalkeeper bool
	MatchRating  float64
	VotesCount   int
	Votes        []VoteDetail
}

type TeamSummary struct {
	Players []player.Player
	Goals   int
}

// MatchSummary is what the summary view renders: the fixed rosters, the
// score, voting progress, and, once revealed, the ranked ratings.
type MatchSummary struct {
	MatchID        string
	TeamA          TeamSummary
	TeamB          TeamSummary
	Winner         teams.Winner
	CompletedCount int
	TotalPlayers   int
	AllVoted       bool
	RatingsVisible bool
	Ratings        []PlayerMatchRating
}

// SummaryService aggregates raw votes into match ratings. The aggregator
// itself is privilege-agnostic: callers ask for voter identity explicitly,
// and MatchSummary decides from the viewer's role what to withhold.
type SummaryService struct {
	teamRepo   teams.Repository
	voteRepo   vote.Repository
	playerRepo player.Repository
	status     *VotingStatusService
}

func NewSummaryService(
	teamRepo teams.Repository,
	voteRepo vote.Repository,
	playerRepo player.Repository,
	status *VotingStatusService,
) *SummaryService {
	return &SummaryService{
		teamRepo:   teamRepo,
		voteRepo:   voteRepo,
		playerRepo: playerRepo,
		status:     status,
	}
}

// ComputeMatchRatings reduces every vote to its 0–100 score, averages per
// target, and ranks descending. Equal ratings keep their iteration order;
// no secondary tie-break is applied.
func (s *SummaryService) ComputeMatchRatings(ctx context.Context, matchID string, includeVoters bool) ([]PlayerMatchRating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.ComputeMatchRatings")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	assignment, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() {
		return nil, fmt.Errorf("%w: no assignment saved for match %s", ErrNotFound, matchID)
	}

	participants, err := s.playerRepo.GetByIDs(ctx, assignment.AllPlayers())
	if err != nil {
		return nil, fmt.Errorf("get participants: %w", err)
	}
	byID := make(map[string]player.Player, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	votes, err := s.voteRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list votes by match: %w", err)
	}
	votesByTarget := make(map[string][]vote.Vote)
	for _, v := range votes {
		votesByTarget[v.TargetID] = append(votesByTarget[v.TargetID], v)
	}

	ratings := make([]PlayerMatchRating, 0, len(participants))
	for _, p := range participants {
		targetVotes := votesByTarget[p.ID]

		details := make([]VoteDetail, 0, len(targetVotes))
		total := 0.0
		for _, v := range targetVotes {
			score := v.Score(p.IsGoalkeeper)
			total += score

			detail := VoteDetail{
				Velocidade:  v.Velocidade,
				Finalizacao: v.Finalizacao,
				Passe:       v.Passe,
				Drible:      v.Drible,
				Defesa:      v.Defesa,
				Fisico:      v.Fisico,
				Score:       score,
			}
			if includeVoters {
				if voter, ok := byID[v.VoterID]; ok {
					detail.VoterName = voter.Name
				}
			}
			details = append(details, detail)
		}

		rating := 0.0
		if len(details) > 0 {
			rating = total / float64(len(details))
		}

		ratings = append(ratings, PlayerMatchRating{
			PlayerID:     p.ID,
			Name:         p.Name,
			IsGoalkeeper: p.IsGoalkeeper,
			MatchRating:  rating,
			VotesCount:   len(details),
			Votes:        details,
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].MatchRating > ratings[j].MatchRating
	})

	return ratings, nil
}

// Summary composes the full match view for a given viewer. Ratings are
// withheld until every participant has voted, unless the viewer's role
// grants early access; voter identities are attached for super viewers only.
func (s *SummaryService) Summary(ctx context.Context, matchID string, viewer user.Principal) (MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Summary")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchSummary{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	assignment, found, err := s.teamRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return MatchSummary{}, fmt.Errorf("get assignment by match: %w", err)
	}
	if !found || !assignment.IsPopulated() {
		return MatchSummary{}, fmt.Errorf("%w: no assignment saved for match %s", ErrNotFound, matchID)
	}

	participants, err := s.playerRepo.GetByIDs(ctx, assignment.AllPlayers())
	if err != nil {
		return MatchSummary{}, fmt.Errorf("get participants: %w", err)
	}
	byID := make(map[string]player.Player, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	voting, err := s.status.MatchStatus(ctx, matchID)
	if err != nil {
		return MatchSummary{}, err
	}

	out := MatchSummary{
		MatchID:        matchID,
		TeamA:          TeamSummary{Players: resolvePlayers(assignment.TeamA, byID), Goals: assignment.GoalsA},
		TeamB:          TeamSummary{Players: resolvePlayers(assignment.TeamB, byID), Goals: assignment.GoalsB},
		Winner:         assignment.Winner,
		CompletedCount: voting.CompletedCount,
		TotalPlayers:   len(voting.Players),
		AllVoted:       voting.AllVoted,
	}

	out.RatingsVisible = voting.AllVoted || viewer.CanSeeRatingsEarly()
	if !out.RatingsVisible {
		return out, nil
	}

	ratings, err := s.ComputeMatchRatings(ctx, matchID, viewer.CanSeeVoterIdentity())
	if err != nil {
		return MatchSummary{}, err
	}
	out.Ratings = ratings

	return out, nil
}

func resolvePlayers(ids []string, byID map[string]player.Player) []player.Player {
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
