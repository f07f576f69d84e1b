package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/platform/logging"
	"github.com/gabrielsantos8/futclebs/internal/usecase"
)

type Handler struct {
	matchService        *usecase.MatchService
	registrationService *usecase.RegistrationService
	teamService         *usecase.TeamService
	voteService         *usecase.VoteService
	statusService       *usecase.VotingStatusService
	summaryService      *usecase.SummaryService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	registrationService *usecase.RegistrationService,
	teamService *usecase.TeamService,
	voteService *usecase.VoteService,
	statusService *usecase.VotingStatusService,
	summaryService *usecase.SummaryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:        matchService,
		registrationService: registrationService,
		teamService:         teamService,
		voteService:         voteService,
		statusService:       statusService,
		summaryService:      summaryService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type playerDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	IsGoalkeeper bool     `json:"isGoalkeeper"`
	Positions    []string `json:"positions"`
	Overall      float64  `json:"overall"`
	AvatarURL    string   `json:"avatarUrl,omitempty"`
}

type assignmentDTO struct {
	MatchID   string   `json:"matchId"`
	TeamA     []string `json:"teamA"`
	TeamB     []string `json:"teamB"`
	GoalsA    int      `json:"goalsA"`
	GoalsB    int      `json:"goalsB"`
	Winner    string   `json:"winner,omitempty"`
	Locked    bool     `json:"locked"`
	UpdatedAt string   `json:"updatedAt"`
}

func playerToDTO(v player.Player) playerDTO {
	positions := make([]string, 0, len(v.Positions))
	for _, p := range v.Positions {
		positions = append(positions, string(p))
	}

	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		IsGoalkeeper: v.IsGoalkeeper,
		Positions:    positions,
		Overall:      v.Attributes.Overall,
		AvatarURL:    v.Avatar,
	}
}

func assignmentToDTO(v teams.Assignment) assignmentDTO {
	return assignmentDTO{
		MatchID:   v.MatchID,
		TeamA:     append([]string(nil), v.TeamA...),
		TeamB:     append([]string(nil), v.TeamB...),
		GoalsA:    v.GoalsA,
		GoalsB:    v.GoalsB,
		Winner:    string(v.Winner),
		Locked:    v.Locked,
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
