package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/engine"
)

func TestSpawnAddsWordAtTop(t *testing.T) {
	ctx, _, _ := newTestContext()
	s := NewSpawnSystem(ctx)

	if !s.Update() {
		t.Fatal("Expected spawn to succeed on an empty field")
	}

	words := ctx.State.Words()
	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	w := words[0]
	if w.Y != 0 {
		t.Errorf("Expected spawn at y 0, got %v", w.Y)
	}
	if w.X < constants.SpawnMinX || w.X >= constants.SpawnMinX+constants.SpawnRangeX {
		t.Errorf("Expected x in [%v, %v), got %v", constants.SpawnMinX, constants.SpawnMinX+constants.SpawnRangeX, w.X)
	}
	if w.Speed < engine.WordSpeed(1, 0) || w.Speed > engine.WordSpeed(1, 1) {
		t.Errorf("Expected level 1 speed range, got %v", w.Speed)
	}
	if !containsWord(ctx.Catalog.Tier(1).Words, w.Text) {
		t.Errorf("Expected %q from the level 1 tier", w.Text)
	}
	if ctx.State.WordsSpawned != 1 {
		t.Errorf("Expected spawned counter 1, got %d", ctx.State.WordsSpawned)
	}
}

func TestSpawnRespectsConcurrencyCap(t *testing.T) {
	ctx, _, _ := newTestContext()
	s := NewSpawnSystem(ctx)

	limit := engine.MaxWords(ctx.State.Level)
	for i := 0; i < limit; i++ {
		if !s.Update() {
			t.Fatalf("Expected spawn %d to succeed", i+1)
		}
	}

	if s.Update() {
		t.Error("Expected spawn to be skipped at the concurrency cap")
	}
	if ctx.State.WordCount() != limit {
		t.Errorf("Expected %d words, got %d", limit, ctx.State.WordCount())
	}
}

func TestSpawnRespectsLevelQuota(t *testing.T) {
	ctx, _, _ := newTestContext()
	s := NewSpawnSystem(ctx)
	ctx.State.WordsSpawned = ctx.State.WordsNeeded

	if s.Update() {
		t.Error("Expected spawn to be skipped once the quota has spawned")
	}
}

func TestSpawnSkippedAfterGameOver(t *testing.T) {
	ctx, _, _ := newTestContext()
	s := NewSpawnSystem(ctx)
	ctx.State.GameOver = true

	if s.Update() || ctx.State.WordCount() != 0 {
		t.Error("Expected no spawn after game over")
	}
}

func TestInitialBatch(t *testing.T) {
	ctx, _, _ := newTestContext()
	s := NewSpawnSystem(ctx)

	n := s.SpawnInitialBatch()
	if n != engine.MaxWords(ctx.State.Level) {
		t.Fatalf("Expected a full batch of %d, got %d", engine.MaxWords(ctx.State.Level), n)
	}

	words := ctx.State.Words()
	for i, w := range words {
		if i > 0 && w.Y >= 0 {
			t.Errorf("Expected word %d to start above the field, got y %v", i, w.Y)
		}
		if w.Y > 0 {
			t.Errorf("Expected no batch word below the top, got y %v", w.Y)
		}
		// Staggered rows keep later words higher
		if i > 0 && w.Y >= words[i-1].Y+constants.InitialOffsetJitter {
			t.Errorf("Expected word %d above word %d, got %v vs %v", i, i-1, w.Y, words[i-1].Y)
		}
	}
	if ctx.State.WordsSpawned != n {
		t.Errorf("Expected batch to count toward the quota, got %d", ctx.State.WordsSpawned)
	}
}

// The second word always has room to keep its distance from the first
func TestInitialBatchSeparation(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		ctx, _, _ := newTestContext()
		ctx.Rand.Seed(seed)
		NewSpawnSystem(ctx).SpawnInitialBatch()

		words := ctx.State.Words()
		if d := math.Abs(words[0].X - words[1].X); d < constants.InitialMinSeparation {
			t.Errorf("seed %d: first two words only %v apart", seed, d)
		}
	}
}

func TestIsSeparated(t *testing.T) {
	placed := []float64{100, 400}

	if isSeparated(150, placed) {
		t.Error("Expected 150 to be too close to 100")
	}
	if !isSeparated(250, placed) {
		t.Error("Expected 250 to be separated")
	}
	if !isSeparated(0, nil) {
		t.Error("Expected any x to be separated from nothing")
	}
}

func containsWord(words []string, text string) bool {
	for _, w := range words {
		if w == text {
			return true
		}
	}
	return false
}
