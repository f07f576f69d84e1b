package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gabrielsantos8/futclebs/internal/usecase"
)

type matchSummaryDTO struct {
	MatchID        string           `json:"matchId"`
	TeamA          teamSummaryDTO   `json:"teamA"`
	TeamB          teamSummaryDTO   `json:"teamB"`
	Winner         string           `json:"winner,omitempty"`
	CompletedCount int              `json:"completedCount"`
	TotalPlayers   int              `json:"totalPlayers"`
	AllVoted       bool             `json:"allVoted"`
	RatingsVisible bool             `json:"ratingsVisible"`
	Ratings        []matchRatingDTO `json:"ratings,omitempty"`
}

type teamSummaryDTO struct {
	Players []playerDTO `json:"players"`
	Goals   int         `json:"goals"`
}

type matchRatingDTO struct {
	PlayerID     string          `json:"playerId"`
	Name         string          `json:"name"`
	IsGoalkeeper bool            `json:"isGoalkeeper"`
	MatchRating  float64         `json:"matchRating"`
	VotesCount   int             `json:"votesCount"`
	Votes        []voteDetailDTO `json:"votes,omitempty"`
}

type voteDetailDTO struct {
	Velocidade  int     `json:"velocidade"`
	Finalizacao int     `json:"finalizacao"`
	Passe       int     `json:"passe"`
	Drible      int     `json:"drible"`
	Defesa      int     `json:"defesa"`
	Fisico      int     `json:"fisico"`
	Score       float64 `json:"score"`
	VoterName   string  `json:"voterName,omitempty"`
}

func (h *Handler) GetMatchSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSummary")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	summary, err := h.summaryService.Summary(ctx, matchID, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get match summary failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func summaryToDTO(v usecase.MatchSummary) matchSummaryDTO {
	ratings := make([]matchRatingDTO, 0, len(v.Ratings))
	for _, rating := range v.Ratings {
		ratings = append(ratings, ratingToDTO(rating))
	}

	return matchSummaryDTO{
		MatchID:        v.MatchID,
		TeamA:          teamSummaryToDTO(v.TeamA),
		TeamB:          teamSummaryToDTO(v.TeamB),
		Winner:         string(v.Winner),
		CompletedCount: v.CompletedCount,
		TotalPlayers:   v.TotalPlayers,
		AllVoted:       v.AllVoted,
		RatingsVisible: v.RatingsVisible,
		Ratings:        ratings,
	}
}

func teamSummaryToDTO(v usecase.TeamSummary) teamSummaryDTO {
	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerToDTO(p))
	}

	return teamSummaryDTO{Players: players, Goals: v.Goals}
}

func ratingToDTO(v usecase.PlayerMatchRating) matchRatingDTO {
	votes := make([]voteDetailDTO, 0, len(v.Votes))
	for _, detail := range v.Votes {
		votes = append(votes, voteDetailDTO{
			Velocidade:  detail.Velocidade,
			Finalizacao: detail.Finalizacao,
			Passe:       detail.Passe,
			Drible:      detail.Drible,
			Defesa:      detail.Defesa,
			Fisico:      detail.Fisico,
			Score:       detail.Score,
			VoterName:   detail.VoterName,
		})
	}

	return matchRatingDTO{
		PlayerID:     v.PlayerID,
		Name:         v.Name,
		IsGoalkeeper: v.IsGoalkeeper,
		MatchRating:  v.MatchRating,
		VotesCount:   v.VotesCount,
		Votes:        votes,
	}
}
