package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
)

func TestCreateMatch(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(nil)

	date := time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC)
	m, err := env.matchSvc.Create(ctx, date, "admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected a generated match id")
	}
	if m.Status != match.StatusOpen {
		t.Fatalf("new match must be open, got %s", m.Status)
	}
	if !m.Date.Equal(date) || m.CreatedBy != "admin-1" {
		t.Fatalf("unexpected match: %+v", m)
	}

	if _, err := env.matchSvc.Create(ctx, time.Time{}, "admin-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}

func TestGetMatch(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(nil)
	m := env.mustCreateMatch(t, ctx)

	got, err := env.matchSvc.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != m.ID {
		t.Fatalf("expected %s, got %s", m.ID, got.ID)
	}

	if _, err := env.matchSvc.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMatches_EnrichesForViewer(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv([]player.Player{
		testPlayer("p1", false, player.PositionAttack),
		testPlayer("p2", false, player.PositionDefense),
		testPlayer("p3", false, player.PositionMidfield),
	})

	older, err := env.matchSvc.Create(ctx, time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC), "admin-1")
	if err != nil {
		t.Fatalf("create older: %v", err)
	}
	newer, err := env.matchSvc.Create(ctx, time.Date(2026, 8, 15, 20, 0, 0, 0, time.UTC), "admin-1")
	if err != nil {
		t.Fatalf("create newer: %v", err)
	}

	env.mustRegister(t, ctx, older.ID, "p1", "p2")
	env.mustRegister(t, ctx, newer.ID, "p2", "p3")

	list, err := env.matchSvc.List(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(list))
	}
	if list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Fatalf("expected newest first, got %s then %s", list[0].ID, list[1].ID)
	}
	if list[0].PlayerCount != 2 || list[1].PlayerCount != 2 {
		t.Fatalf("unexpected player counts: %+v", list)
	}
	if list[0].IsRegistered || !list[1].IsRegistered {
		t.Fatalf("viewer registration flags wrong: %+v", list)
	}
}

func TestListMatches_FlagsPendingVotes(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	if _, err := env.matchSvc.Finish(ctx, matchID, 3, 1); err != nil {
		t.Fatalf("finish: %v", err)
	}

	list, err := env.matchSvc.List(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || !list[0].HasPendingVotes {
		t.Fatalf("expected pending votes for p1, got %+v", list)
	}

	env.mustVote(t, ctx, matchID, "p1", "p2")
	env.mustVote(t, ctx, matchID, "p1", "p3")

	list, err = env.matchSvc.List(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].HasPendingVotes {
		t.Fatal("p1 finished voting, flag must clear")
	}
}

func TestFinish_DerivesWinner(t *testing.T) {
	cases := []struct {
		goalsA, goalsB int
		winner         teams.Winner
	}{
		{3, 1, teams.WinnerTeamA},
		{0, 2, teams.WinnerTeamB},
		{2, 2, teams.WinnerDraw},
	}

	for _, tc := range cases {
		ctx := t.Context()
		env, matchID := votingEnv(t)

		assignment, err := env.matchSvc.Finish(ctx, matchID, tc.goalsA, tc.goalsB)
		if err != nil {
			t.Fatalf("finish %d-%d: %v", tc.goalsA, tc.goalsB, err)
		}
		if assignment.Winner != tc.winner {
			t.Fatalf("%d-%d: expected winner %q, got %q", tc.goalsA, tc.goalsB, tc.winner, assignment.Winner)
		}
		if assignment.GoalsA != tc.goalsA || assignment.GoalsB != tc.goalsB {
			t.Fatalf("goals not recorded: %+v", assignment)
		}

		m, err := env.matchSvc.Get(ctx, matchID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if m.Status != match.StatusFinished {
			t.Fatalf("expected finished status, got %s", m.Status)
		}
	}
}

func TestFinish_Preconditions(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv([]player.Player{
		testPlayer("p1", false, player.PositionAttack),
		testPlayer("p2", false, player.PositionDefense),
	})
	m := env.mustCreateMatch(t, ctx)
	env.mustRegister(t, ctx, m.ID, "p1", "p2")

	if _, err := env.matchSvc.Finish(ctx, m.ID, 1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without drawn teams, got %v", err)
	}
	if _, err := env.matchSvc.Finish(ctx, "missing", 1, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := env.matchSvc.Finish(ctx, m.ID, -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative goals, got %v", err)
	}

	env.mustSaveTeams(t, ctx, m.ID, []string{"p1"}, []string{"p2"})
	if _, err := env.matchSvc.Finish(ctx, m.ID, 1, 0); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, err := env.matchSvc.Finish(ctx, m.ID, 2, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for double finish, got %v", err)
	}
}

func TestDeleteMatch_Cascades(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	env.mustVote(t, ctx, matchID, "p1", "p2")

	if err := env.matchSvc.Delete(ctx, matchID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := env.matchSvc.Get(ctx, matchID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected match gone, got %v", err)
	}
	if _, found, err := env.teams.GetByMatch(ctx, matchID); err != nil || found {
		t.Fatalf("expected assignment gone, found=%v err=%v", found, err)
	}
	votes, err := env.votes.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 0 {
		t.Fatalf("expected votes gone, got %d", len(votes))
	}
	regs, err := env.registrations.ListByMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(regs) != 0 {
		t.Fatalf("expected registrations gone, got %d", len(regs))
	}

	if err := env.matchSvc.Delete(ctx, matchID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
