package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gabrielsantos8/futclebs/internal/usecase"
)

type createMatchRequest struct {
	Date string `json:"date" validate:"required"`
}

type finishMatchRequest struct {
	GoalsA int `json:"goalsA" validate:"min=0,max=99"`
	GoalsB int `json:"goalsB" validate:"min=0,max=99"`
}

type registerPlayerRequest struct {
	PlayerID string `json:"playerId"`
}

type matchDTO struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	CreatedBy       string `json:"createdBy,omitempty"`
	PlayerCount     int    `json:"playerCount"`
	IsRegistered    bool   `json:"isRegistered"`
	HasPendingVotes bool   `json:"hasPendingVotes"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matches, err := h.matchService.List(ctx, principal.PlayerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchDTO{
			ID:              m.ID,
			Date:            m.Date.UTC().Format(time.RFC3339),
			Status:          string(m.Status),
			CreatedBy:       m.CreatedBy,
			PlayerCount:     m.PlayerCount,
			IsRegistered:    m.IsRegistered,
			HasPendingVotes: m.HasPendingVotes,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createMatchRequest
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

	date, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Date))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be RFC3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.matchService.Create(ctx, date, principal.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchDTO{
		ID:        created.ID,
		Date:      created.Date.UTC().Format(time.RFC3339),
		Status:    string(created.Status),
		CreatedBy: created.CreatedBy,
	})
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishMatch")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req finishMatchRequest
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

	result, err := h.matchService.Finish(ctx, matchID, req.GoalsA, req.GoalsB)
	if err != nil {
		h.logger.WarnContext(ctx, "finish match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentToDTO(result))
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	matchID := r.PathValue("matchID")
	roster, err := h.registrationService.Roster(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(roster))
	for _, p := range roster {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")

	var req registerPlayerRequest
	if r.ContentLength > 0 {
		decoder := sonic.ConfigDefault.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	// Players register themselves; organizers may register someone else.
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		playerID = principal.PlayerID
	}
	if playerID != principal.PlayerID && !principal.IsAdmin() {
		writeError(ctx, w, fmt.Errorf("%w: only admins can register other players", usecase.ErrUnauthorized))
		return
	}

	registration, err := h.registrationService.Register(ctx, matchID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{
		"matchId":  registration.MatchID,
		"playerId": registration.PlayerID,
		"status":   string(registration.Status),
	})
}

func (h *Handler) WithdrawSelf(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WithdrawSelf")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.registrationService.Withdraw(ctx, matchID, principal.PlayerID); err != nil {
		h.logger.WarnContext(ctx, "withdraw failed", "match_id", matchID, "player_id", principal.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "withdrawn"})
}
