package systems

import (
	"testing"

	"github.com/lixenwraith/cyber-invaders/constants"
)

func TestMotionAdvancesWords(t *testing.T) {
	ctx, _, _ := newTestContext()
	a := ctx.State.AddWord("mov", 100, 0, 1.5)
	b := ctx.State.AddWord("jmp", 300, -70, 0.5)

	if NewMotionSystem(ctx).Update() {
		t.Fatal("Expected no game over")
	}

	if a.Y != 1.5 || b.Y != -69.5 {
		t.Errorf("Expected y 1.5 and -69.5, got %v and %v", a.Y, b.Y)
	}
}

func TestMotionBoundaryIsExclusive(t *testing.T) {
	ctx, _, _ := newTestContext()
	ctx.State.AddWord("mov", 100, constants.FieldBottom-1, 1)

	if NewMotionSystem(ctx).Update() {
		t.Error("Expected a word exactly on the boundary to survive")
	}
	if ctx.State.GameOver {
		t.Error("Expected game to continue")
	}
}

func TestMotionBreachEndsGame(t *testing.T) {
	ctx, _, sound := newTestContext()
	w := ctx.State.AddWord("mov", 100, constants.FieldBottom-0.5, 1)
	ctx.State.AddWord("jmp", 300, 10, 1)
	ctx.State.ActiveWordID = w.ID
	ctx.State.CurrentInput = "m"
	ctx.State.Score = 90

	m := NewMotionSystem(ctx)
	if !m.Update() {
		t.Fatal("Expected breach to end the game")
	}

	gs := ctx.State
	if !gs.GameOver {
		t.Error("Expected game over flag")
	}
	if gs.WordCount() != 0 {
		t.Errorf("Expected the whole wave cleared, got %d words", gs.WordCount())
	}
	if gs.ActiveWordID != 0 || gs.CurrentInput != "" {
		t.Error("Expected match state cleared")
	}
	if gs.Score != 90 {
		t.Errorf("Expected score preserved, got %d", gs.Score)
	}
	if sound.gameOvers != 1 {
		t.Errorf("Expected 1 game over cue, got %d", sound.gameOvers)
	}

	// Further ticks are no-ops
	if m.Update() {
		t.Error("Expected no second game over")
	}
}
