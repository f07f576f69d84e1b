package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gabrielsantos8/futclebs/internal/usecase"
)

type saveTeamsRequest struct {
	TeamA []string `json:"teamA" validate:"required,min=1,dive,required"`
	TeamB []string `json:"teamB" validate:"required,min=1,dive,required"`
}

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeams")
	defer span.End()

	matchID := r.PathValue("matchID")
	assignment, exists, err := h.teamService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get teams failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentToDTO(assignment))
}

func (h *Handler) DrawTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DrawTeams")
	defer span.End()

	matchID := r.PathValue("matchID")
	assignment, err := h.teamService.Draw(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "draw teams failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentToDTO(assignment))
}

func (h *Handler) SaveTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTeams")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req saveTeamsRequest
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

	assignment, err := h.teamService.Save(ctx, matchID, req.TeamA, req.TeamB)
	if err != nil {
		h.logger.WarnContext(ctx, "save teams failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentToDTO(assignment))
}

func (h *Handler) UnlockTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnlockTeams")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.teamService.Unlock(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "unlock teams failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "unlocked"})
}
