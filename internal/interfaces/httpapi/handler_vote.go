package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gabrielsantos8/futclebs/internal/usecase"
)

type submitVoteRequest struct {
	TargetID    string `json:"targetId" validate:"required"`
	Velocidade  int    `json:"velocidade" validate:"min=1,max=5"`
	Finalizacao int    `json:"finalizacao" validate:"min=1,max=5"`
	Passe       int    `json:"passe" validate:"min=1,max=5"`
	Drible      int    `json:"drible" validate:"min=1,max=5"`
	Defesa      int    `json:"defesa" validate:"min=1,max=5"`
	Fisico      int    `json:"fisico" validate:"min=1,max=5"`
}

type playerVotingStatusDTO struct {
	PlayerID       string   `json:"playerId"`
	Name           string   `json:"name"`
	IsGoalkeeper   bool     `json:"isGoalkeeper"`
	Team           string   `json:"team"`
	TotalTeammates int      `json:"totalTeammates"`
	VotedCount     int      `json:"votedCount"`
	MissingVotes   []string `json:"missingVotes"`
	HasCompleted   bool     `json:"hasCompleted"`
}

func (h *Handler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitVote")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")

	var req submitVoteRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	submitted, err := h.voteService.Submit(ctx, usecase.SubmitVoteInput{
		MatchID:     matchID,
		VoterID:     principal.PlayerID,
		TargetID:    req.TargetID,
		Velocidade:  req.Velocidade,
		Finalizacao: req.Finalizacao,
		Passe:       req.Passe,
		Drible:      req.Drible,
		Defesa:      req.Defesa,
		Fisico:      req.Fisico,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit vote failed", "match_id", matchID, "voter_id", principal.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{
		"voteId":   submitted.ID,
		"matchId":  submitted.MatchID,
		"targetId": submitted.TargetID,
	})
}

func (h *Handler) GetMyPendingVotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPendingVotes")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	status, err := h.statusService.PlayerStatus(ctx, matchID, principal.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get pending votes failed", "match_id", matchID, "player_id", principal.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatusToDTO(status))
}

func (h *Handler) GetVotingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVotingStatus")
	defer span.End()

	matchID := r.PathValue("matchID")
	status, err := h.statusService.MatchStatus(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get voting status failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]playerVotingStatusDTO, 0, len(status.Players))
	for _, p := range status.Players {
		players = append(players, playerStatusToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"players":        players,
		"completedCount": status.CompletedCount,
		"allVoted":       status.AllVoted,
	})
}

func (h *Handler) ForceCompleteVotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ForceCompleteVotes")
	defer span.End()

	matchID := r.PathValue("matchID")
	playerID := r.PathValue("playerID")

	inserted, err := h.voteService.ForceComplete(ctx, matchID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "force complete failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"insertedVotes": inserted})
}

func playerStatusToDTO(v usecase.PlayerVotingStatus) playerVotingStatusDTO {
	return playerVotingStatusDTO{
		PlayerID:       v.PlayerID,
		Name:           v.Name,
		IsGoalkeeper:   v.IsGoalkeeper,
		Team:           string(v.Team),
		TotalTeammates: v.TotalTeammates,
		VotedCount:     v.VotedCount,
		MissingVotes:   append([]string(nil), v.MissingVotes...),
		HasCompleted:   v.HasCompleted,
	}
}
