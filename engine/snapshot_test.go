package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/cyber-invaders/constants"
)

func TestSnapshotProjectsState(t *testing.T) {
	ctx, _ := newTestContext()
	gs := ctx.State

	w := gs.AddWord("mov", 100, 50, 1)
	gs.AddWord("jmp", 200, 80, 1)
	w.Progress = 2
	gs.ActiveWordID = w.ID
	gs.CurrentInput = "mo"
	gs.Score = 120

	snap := ctx.Snapshot()

	if snap.SessionID != "test-session" {
		t.Errorf("Expected session id, got %q", snap.SessionID)
	}
	if len(snap.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(snap.Words))
	}
	view := snap.Words[0]
	if !view.Active || view.Matched != "mo" || view.Remaining != "v" {
		t.Errorf("Expected active view split mo|v, got %+v", view)
	}
	if snap.Words[1].Active {
		t.Error("Expected only the target to be active")
	}
	if snap.Input != "mo" || snap.Score != 120 {
		t.Errorf("Expected input mo score 120, got %q %d", snap.Input, snap.Score)
	}
	if snap.Theme != ctx.Catalog.Theme(snap.Level) {
		t.Errorf("Expected theme %q, got %q", ctx.Catalog.Theme(snap.Level), snap.Theme)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	ctx, _ := newTestContext()
	w := ctx.State.AddWord("mov", 100, 50, 1)

	snap := ctx.Snapshot()
	w.Y = 400

	if snap.Words[0].Y != 50 {
		t.Errorf("Expected snapshot to keep y 50, got %v", snap.Words[0].Y)
	}
}

func TestSnapshotFiltersExpiredExplosions(t *testing.T) {
	ctx, clock := newTestContext()
	ctx.State.AddExplosion(1, 1, clock.Now())
	clock.Advance(300 * time.Millisecond)
	ctx.State.AddExplosion(2, 2, clock.Now())
	clock.Advance(constants.ExplosionTTL - 300*time.Millisecond)

	snap := ctx.Snapshot()

	if len(snap.Explosions) != 1 {
		t.Fatalf("Expected 1 live explosion, got %d", len(snap.Explosions))
	}
	if snap.Explosions[0].Age != 200*time.Millisecond {
		t.Errorf("Expected age 200ms, got %v", snap.Explosions[0].Age)
	}
	// Housekeeping has not run; state still holds both
	if len(ctx.State.Explosions) != 2 {
		t.Errorf("Expected state untouched, got %d explosions", len(ctx.State.Explosions))
	}
}

func TestSnapshotLevelUpExpires(t *testing.T) {
	ctx, clock := newTestContext()
	ctx.State.LevelUp = true
	ctx.State.CompletedLevel = 1
	ctx.State.LevelUpUntil = clock.Now().Add(constants.LevelUpDisplayDuration)

	if !ctx.Snapshot().LevelUp {
		t.Error("Expected banner in snapshot")
	}

	clock.Advance(constants.LevelUpDisplayDuration)
	if ctx.Snapshot().LevelUp {
		t.Error("Expected banner hidden after its duration")
	}
}
