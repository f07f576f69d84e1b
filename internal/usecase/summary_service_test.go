package usecase

import (
	"errors"
	"testing"

	"github.com/gabrielsantos8/futclebs/internal/domain/player"
	"github.com/gabrielsantos8/futclebs/internal/domain/teams"
	"github.com/gabrielsantos8/futclebs/internal/domain/user"
)

// summaryEnv builds a 2v2 match where the voting gate can actually open.
func summaryEnv(t *testing.T) (*testEnv, string) {
	t.Helper()
	ctx := t.Context()

	env := newTestEnv([]player.Player{
		testPlayer("a1", false, player.PositionAttack),
		testPlayer("a2", false, player.PositionDefense),
		testPlayer("b1", true),
		testPlayer("b2", false, player.PositionMidfield),
	})
	m := env.mustCreateMatch(t, ctx)
	env.mustRegister(t, ctx, m.ID, "a1", "a2", "b1", "b2")
	env.mustSaveTeams(t, ctx, m.ID, []string{"a1", "a2"}, []string{"b1", "b2"})

	return env, m.ID
}

func completeAllVotes(t *testing.T, env *testEnv, matchID string) {
	t.Helper()
	ctx := t.Context()
	env.mustVote(t, ctx, matchID, "a1", "a2")
	env.mustVote(t, ctx, matchID, "a2", "a1")
	env.mustVote(t, ctx, matchID, "b1", "b2")
	env.mustVote(t, ctx, matchID, "b2", "b1")
}

func TestSummary_WithholdsRatingsUntilAllVoted(t *testing.T) {
	ctx := t.Context()
	env, matchID := summaryEnv(t)

	viewer := user.Principal{PlayerID: "a1", Role: user.RolePlayer}

	summary, err := env.summary.Summary(ctx, matchID, viewer)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.RatingsVisible || summary.Ratings != nil {
		t.Fatalf("ratings must be withheld, got %+v", summary)
	}
	if summary.AllVoted || summary.CompletedCount != 0 || summary.TotalPlayers != 4 {
		t.Fatalf("unexpected progress: %+v", summary)
	}
	if len(summary.TeamA.Players) != 2 || len(summary.TeamB.Players) != 2 {
		t.Fatalf("rosters must always be present: %+v", summary)
	}

	completeAllVotes(t, env, matchID)

	summary, err = env.summary.Summary(ctx, matchID, viewer)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !summary.AllVoted || !summary.RatingsVisible {
		t.Fatalf("gate must open once everyone voted: %+v", summary)
	}
	if len(summary.Ratings) != 4 {
		t.Fatalf("expected 4 rated players, got %d", len(summary.Ratings))
	}
}

func TestSummary_AdminSeesRatingsEarly(t *testing.T) {
	ctx := t.Context()
	env, matchID := summaryEnv(t)

	env.mustVote(t, ctx, matchID, "a1", "a2")

	summary, err := env.summary.Summary(ctx, matchID, user.Principal{PlayerID: "admin", Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.AllVoted {
		t.Fatal("voting is not complete")
	}
	if !summary.RatingsVisible || len(summary.Ratings) != 4 {
		t.Fatalf("admin must see ratings early, got %+v", summary)
	}

	// early access does not de-anonymize
	for _, rating := range summary.Ratings {
		for _, detail := range rating.Votes {
			if detail.VoterName != "" {
				t.Fatalf("admin must not see voter identity, got %+v", detail)
			}
		}
	}
}

func TestSummary_VoterIdentityForSuperOnly(t *testing.T) {
	ctx := t.Context()
	env, matchID := summaryEnv(t)
	completeAllVotes(t, env, matchID)

	plain, err := env.summary.Summary(ctx, matchID, user.Principal{PlayerID: "a1", Role: user.RolePlayer})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, rating := range plain.Ratings {
		for _, detail := range rating.Votes {
			if detail.VoterName != "" {
				t.Fatalf("ordinary viewer must not see voter identity, got %+v", detail)
			}
		}
	}

	super, err := env.summary.Summary(ctx, matchID, user.Principal{PlayerID: "root", Role: user.RoleSuper})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	named := 0
	for _, rating := range super.Ratings {
		for _, detail := range rating.Votes {
			if detail.VoterName != "" {
				named++
			}
		}
	}
	if named != 4 {
		t.Fatalf("expected every vote named for super viewer, got %d", named)
	}
}

func TestSummary_CarriesResult(t *testing.T) {
	ctx := t.Context()
	env, matchID := summaryEnv(t)

	if _, err := env.matchSvc.Finish(ctx, matchID, 4, 2); err != nil {
		t.Fatalf("finish: %v", err)
	}

	summary, err := env.summary.Summary(ctx, matchID, user.Principal{PlayerID: "a1", Role: user.RolePlayer})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TeamA.Goals != 4 || summary.TeamB.Goals != 2 {
		t.Fatalf("score not carried: %+v", summary)
	}
	if summary.Winner != teams.WinnerTeamA {
		t.Fatalf("expected team A winner, got %q", summary.Winner)
	}
}

func TestSummary_WithoutAssignment(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(nil)
	m := env.mustCreateMatch(t, ctx)

	_, err := env.summary.Summary(ctx, m.ID, user.Principal{PlayerID: "a1", Role: user.RolePlayer})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestComputeMatchRatings_AveragesAndRanks(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv([]player.Player{
		testPlayer("a1", false, player.PositionAttack),
		testPlayer("a2", false, player.PositionDefense),
		testPlayer("a3", false, player.PositionMidfield),
		testPlayer("b1", true),
	})
	m := env.mustCreateMatch(t, ctx)
	env.mustRegister(t, ctx, m.ID, "a1", "a2", "a3", "b1")
	env.mustSaveTeams(t, ctx, m.ID, []string{"a1", "a2", "a3"}, []string{"b1"})

	submit := func(voterID, targetID string, rating int) {
		t.Helper()
		if _, err := env.voteSvc.Submit(ctx, SubmitVoteInput{
			MatchID: m.ID, VoterID: voterID, TargetID: targetID,
			Velocidade: rating, Finalizacao: rating, Passe: rating,
			Drible: rating, Defesa: rating, Fisico: rating,
		}); err != nil {
			t.Fatalf("vote %s -> %s: %v", voterID, targetID, err)
		}
	}

	// a1 receives a 5 and a 3: mean 80; a2 receives two 2s: 40
	submit("a2", "a1", 5)
	submit("a3", "a1", 3)
	submit("a1", "a2", 2)
	submit("a3", "a2", 2)

	ratings, err := env.summary.ComputeMatchRatings(ctx, m.ID, false)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(ratings) != 4 {
		t.Fatalf("expected every participant rated, got %d", len(ratings))
	}

	if ratings[0].PlayerID != "a1" || ratings[0].MatchRating != 80.0 || ratings[0].VotesCount != 2 {
		t.Fatalf("unexpected top rating: %+v", ratings[0])
	}
	if ratings[1].PlayerID != "a2" || ratings[1].MatchRating != 40.0 {
		t.Fatalf("unexpected second rating: %+v", ratings[1])
	}
	// unvoted players trail with zero
	for _, r := range ratings[2:] {
		if r.MatchRating != 0 || r.VotesCount != 0 {
			t.Fatalf("expected zero rating for unvoted player, got %+v", r)
		}
	}
}
