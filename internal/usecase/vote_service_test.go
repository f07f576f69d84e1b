package usecase

import (
	"errors"
	"testing"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

// votingEnv sets up a finished split: team A holds p1, p2, p3 and team B
// holds p4 alone.
func votingEnv(t *testing.T) (*testEnv, string) {
	t.Helper()
	ctx := t.Context()

	env := newTestEnv([]player.Player{
		testPlayer("p1", false, player.PositionAttack),
		testPlayer("p2", false, player.PositionMidfield),
		testPlayer("p3", false, player.PositionDefense),
		testPlayer("p4", true),
	})
	m := env.mustCreateMatch(t, ctx)
	env.mustRegister(t, ctx, m.ID, "p1", "p2", "p3", "p4")
	env.mustSaveTeams(t, ctx, m.ID, []string{"p1", "p2", "p3"}, []string{"p4"})

	return env, m.ID
}

func TestSubmit_HappyPath(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	v, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "p1", TargetID: "p2",
		Velocidade: 5, Finalizacao: 4, Passe: 3, Drible: 2, Defesa: 1, Fisico: 5,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if v.ID == "" {
		t.Fatal("expected a generated vote id")
	}

	votes, err := env.votes.ListByMatchAndVoter(ctx, matchID, "p1")
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 1 || votes[0].TargetID != "p2" {
		t.Fatalf("unexpected stored votes: %+v", votes)
	}
}

func TestSubmit_RequiresDrawnTeams(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv([]player.Player{
		testPlayer("p1", false, player.PositionAttack),
		testPlayer("p2", false, player.PositionMidfield),
	})
	m := env.mustCreateMatch(t, ctx)
	env.mustRegister(t, ctx, m.ID, "p1", "p2")

	_, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: m.ID, VoterID: "p1", TargetID: "p2",
		Velocidade: 3, Finalizacao: 3, Passe: 3, Drible: 3, Defesa: 3, Fisico: 3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without an assignment, got %v", err)
	}
}

func TestSubmit_RejectsCrossTeamVote(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	_, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "p1", TargetID: "p4",
		Velocidade: 3, Finalizacao: 3, Passe: 3, Drible: 3, Defesa: 3, Fisico: 3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for opponents, got %v", err)
	}
}

func TestSubmit_RejectsNonParticipants(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	_, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "stranger", TargetID: "p1",
		Velocidade: 3, Finalizacao: 3, Passe: 3, Drible: 3, Defesa: 3, Fisico: 3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for outside voter, got %v", err)
	}
}

func TestSubmit_RejectsSelfVote(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	_, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "p1", TargetID: "p1",
		Velocidade: 3, Finalizacao: 3, Passe: 3, Drible: 3, Defesa: 3, Fisico: 3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for self vote, got %v", err)
	}
}

func TestSubmit_RejectsDuplicate(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	env.mustVote(t, ctx, matchID, "p1", "p2")

	_, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "p1", TargetID: "p2",
		Velocidade: 1, Finalizacao: 1, Passe: 1, Drible: 1, Defesa: 1, Fisico: 1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate vote, got %v", err)
	}
}

func TestSubmit_RejectsOutOfRangeRatings(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	_, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "p1", TargetID: "p2",
		Velocidade: 6, Finalizacao: 3, Passe: 3, Drible: 3, Defesa: 3, Fisico: 3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for rating above 5, got %v", err)
	}

	_, err = env.voteSvc.Submit(ctx, SubmitVoteInput{
		MatchID: matchID, VoterID: "p1", TargetID: "p2",
		Velocidade: 3, Finalizacao: 3, Passe: 3, Drible: 0, Defesa: 3, Fisico: 3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for rating below 1, got %v", err)
	}
}

func TestForceComplete_FillsMissingVotes(t *testing.T) {
	ctx := t.Context()
	env, matchID := votingEnv(t)

	env.mustVote(t, ctx, matchID, "p1", "p2")

	inserted, err := env.voteSvc.ForceComplete(ctx, matchID, "p1")
	if err != nil {
		t.Fatalf("force-complete: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 neutral vote for p3, got %d", inserted)
	}

	votes, err := env.votes.ListByMatchAndVoter(ctx, matchID, "p1")
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("expected 2 votes after force-complete, got %d", len(votes))
	}
	for _, v := range votes {
		if v.TargetID != "p3" {
			continue
		}
		if v.Score(false) != 60.0 {
			t.Fatalf("neutral vote must score 60, got %v", v.Score(false))
		}
	}

	status, err := env.status.PlayerStatus(ctx, matchID, "p1")
	if err != nil {
		t.Fatalf("player status: %v", err)
	}
	if !status.HasCompleted {
		t.Fatal("voter must be complete after force-complete")
	}

	// idempotent: nothing left to fill
	inserted, err = env.voteSvc.ForceComplete(ctx, matchID, "p1")
	if err != nil {
		t.Fatalf("second force-complete: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected 0 inserts on repeat, got %d", inserted)
	}
}
