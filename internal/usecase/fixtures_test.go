package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/infrastructure/repository/memory"
	"github.com/gabrielsantos8/futclebs/internal/platform/id"
	"github.com/gabrielsantos8/futclebs/internal/platform/logging"
)

// testEnv wires every service over the in-memory repositories, the same shape
// the application assembles in production minus the database.
type testEnv struct {
	players       *memory.PlayerRepository
	matches       *memory.MatchRepository
	registrations *memory.RegistrationRepository
	teams         *memory.TeamRepository
	votes         *memory.VoteRepository

	registration *RegistrationService
	status       *VotingStatusService
	teamSvc      *TeamService
	voteSvc      *VoteService
	summary      *SummaryService
	matchSvc     *MatchService
}

func newTestEnv(seed []player.Player) *testEnv {
	env := &testEnv{
		players:       memory.NewPlayerRepository(seed),
		matches:       memory.NewMatchRepository(),
		registrations: memory.NewRegistrationRepository(),
		teams:         memory.NewTeamRepository(),
		votes:         memory.NewVoteRepository(),
	}

	env.registration = NewRegistrationService(env.matches, env.registrations, env.players)
	env.status = NewVotingStatusService(env.teams, env.votes, env.players)
	env.teamSvc = NewTeamService(env.matches, env.teams, env.registration)
	env.teamSvc.SetRandFactory(func() *rand.Rand { return rand.New(rand.NewSource(42)) })
	env.voteSvc = NewVoteService(env.teams, env.votes, env.status, id.NewRandomGenerator())
	env.summary = NewSummaryService(env.teams, env.votes, env.players, env.status)
	env.matchSvc = NewMatchService(env.matches, env.registrations, env.teams, env.votes, env.status, id.NewRandomGenerator(), logging.NewNop())

	return env
}

func testPlayer(playerID string, goalkeeper bool, positions ...player.Position) player.Player {
	return player.Player{
		ID:           playerID,
		Name:         "Player " + playerID,
		IsGoalkeeper: goalkeeper,
		Positions:    positions,
		Attributes:   player.Attributes{Overall: 3.0},
	}
}

func (env *testEnv) mustCreateMatch(t *testing.T, ctx context.Context) match.Match {
	t.Helper()
	m, err := env.matchSvc.Create(ctx, time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC), "admin-1")
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return m
}

func (env *testEnv) mustRegister(t *testing.T, ctx context.Context, matchID string, playerIDs ...string) {
	t.Helper()
	for _, playerID := range playerIDs {
		if _, err := env.registration.Register(ctx, matchID, playerID); err != nil {
			t.Fatalf("register %s: %v", playerID, err)
		}
	}
}

func (env *testEnv) mustSaveTeams(t *testing.T, ctx context.Context, matchID string, teamA, teamB []string) {
	t.Helper()
	if _, err := env.teamSvc.Save(ctx, matchID, teamA, teamB); err != nil {
		t.Fatalf("save teams: %v", err)
	}
}

// playersWithout clones a player repository minus one account, simulating a
// deletion that happened after the match.
func playersWithout(t *testing.T, ctx context.Context, repo *memory.PlayerRepository, removeID string) *memory.PlayerRepository {
	t.Helper()
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	kept := make([]player.Player, 0, len(all))
	for _, p := range all {
		if p.ID != removeID {
			kept = append(kept, p)
		}
	}
	return memory.NewPlayerRepository(kept)
}

func (env *testEnv) mustVote(t *testing.T, ctx context.Context, matchID, voterID, targetID string) {
	t.Helper()
	if _, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID:     matchID,
		VoterID:     voterID,
		TargetID:    targetID,
		Velocidade:  4,
		Finalizacao: 4,
		Passe:       4,
		Drible:      4,
		Defesa:      4,
		Fisico:      4,
	}); err != nil {
		t.Fatalf("vote %s -> %s: %v", voterID, targetID, err)
	}
}
