package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gabrielsantos8/futclebs/internal/domain/match"
	"github.com/gabrielsantos8/futclebs/internal/domain/player"
)

func capacitySeed() []player.Player {
	seed := []player.Player{
		testPlayer("gk-1", true),
		testPlayer("gk-2", true),
		testPlayer("gk-3", true),
	}
	for i := 1; i <= 13; i++ {
		seed = append(seed, testPlayer(fmt.Sprintf("field-%d", i), false, player.PositionMidfield))
	}
	return seed
}

func TestRegister_HappyPath(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	reg, err := env.registration.Register(ctx, m.ID, "field-1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Status != match.RegistrationConfirmed {
		t.Fatalf("expected confirmed registration, got %s", reg.Status)
	}

	roster, err := env.registration.Roster(ctx, m.ID)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != "field-1" {
		t.Fatalf("unexpected roster: %+v", roster)
	}
}

func TestRegister_DuplicateRejected(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	env.mustRegister(t, ctx, m.ID, "field-1")

	_, err := env.registration.Register(ctx, m.ID, "field-1")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate registration, got %v", err)
	}
}

func TestRegister_UnknownMatchAndPlayer(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	if _, err := env.registration.Register(ctx, "missing-match", "field-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing match, got %v", err)
	}
	if _, err := env.registration.Register(ctx, m.ID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing player, got %v", err)
	}
}

func TestRegister_ClosedMatchRejected(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	if err := env.matches.UpdateStatus(ctx, m.ID, match.StatusFinished); err != nil {
		t.Fatalf("update status: %v", err)
	}

	_, err := env.registration.Register(ctx, m.ID, "field-1")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for finished match, got %v", err)
	}
}

func TestRegister_GoalkeeperCap(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	env.mustRegister(t, ctx, m.ID, "gk-1", "gk-2")

	_, err := env.registration.Register(ctx, m.ID, "gk-3")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded for third goalkeeper, got %v", err)
	}

	// field spots are unaffected by the goalkeeper cap
	env.mustRegister(t, ctx, m.ID, "field-1")
}

func TestRegister_FieldCap(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	for i := 1; i <= match.MaxFieldPlayers; i++ {
		env.mustRegister(t, ctx, m.ID, fmt.Sprintf("field-%d", i))
	}

	_, err := env.registration.Register(ctx, m.ID, "field-13")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded for 13th field player, got %v", err)
	}

	// goalkeepers still fit
	env.mustRegister(t, ctx, m.ID, "gk-1", "gk-2")

	// and now the absolute cap is reached
	_, err = env.registration.Register(ctx, m.ID, "gk-3")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded at full roster, got %v", err)
	}
}

func TestWithdraw(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	env.mustRegister(t, ctx, m.ID, "field-1")

	if err := env.registration.Withdraw(ctx, m.ID, "field-1"); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	roster, err := env.registration.Roster(ctx, m.ID)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 0 {
		t.Fatalf("expected empty roster after withdrawal, got %+v", roster)
	}

	if err := env.registration.Withdraw(ctx, m.ID, "field-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated withdrawal, got %v", err)
	}
}

func TestWithdraw_ClosedMatchRejected(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(capacitySeed())
	m := env.mustCreateMatch(t, ctx)

	env.mustRegister(t, ctx, m.ID, "field-1")
	if err := env.matches.UpdateStatus(ctx, m.ID, match.StatusFinished); err != nil {
		t.Fatalf("update status: %v", err)
	}

	if err := env.registration.Withdraw(ctx, m.ID, "field-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for finished match, got %v", err)
	}
}

func TestRoster_SkipsDeletedAccounts(t *testing.T) {
	ctx := t.Context()
	seed := capacitySeed()
	env := newTestEnv(seed)
	m := env.mustCreateMatch(t, ctx)

	env.mustRegister(t, ctx, m.ID, "field-1", "field-2")

	// simulate an account deleted after registering: the repo no longer
	// returns it, the registration row remains
	fresh := newTestEnv([]player.Player{testPlayer("field-2", false, player.PositionMidfield)})
	fresh.matches = env.matches
	fresh.registrations = env.registrations
	fresh.registration = NewRegistrationService(env.matches, env.registrations, fresh.players)

	roster, err := fresh.registration.Roster(ctx, m.ID)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != "field-2" {
		t.Fatalf("expected only the surviving account, got %+v", roster)
	}
}
