package battleship

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

func TestGameManagerLifecycle(t *testing.T) {
	bgm := NewBattleshipGameManager(WithRandSource(func() *rand.Rand { return newTestRand(5) }))

	game, err := bgm.CreateGame(DefaultConfig(MatchTypeMedium, 40), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(game.Uuid()) != 6 {
		t.Fatalf("expected 6 char uuid, got: %s", game.Uuid())
	}
	if game.Board().ShipsLeft() != 4 || game.MatchType() != MatchTypeMedium {
		t.Fatalf("unexpected game: ships %d type %s", game.Board().ShipsLeft(), game.MatchType())
	}

	fetched, err := bgm.FetchGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if fetched != game {
		t.Fatal("fetched a different game")
	}

	bgm.TerminateGame(game.Uuid())
	if _, err := bgm.FetchGame(game.Uuid()); !errors.Is(err, cerr.ErrNotFound) {
		t.Fatalf("expected not found error, got: %v", err)
	}
	if bgm.Count() != 0 {
		t.Fatalf("expected no games, got: %d", bgm.Count())
	}
}

func TestGameManagerRejectsInvalidConfig(t *testing.T) {
	bgm := NewBattleshipGameManager()

	if _, err := bgm.CreateGame(DefaultConfig(MatchType(2), 10), nil); !errors.Is(err, cerr.ErrConfiguration) {
		t.Fatalf("expected configuration error, got: %v", err)
	}
	if bgm.Count() != 0 {
		t.Fatalf("invalid game must not be stored, got: %d", bgm.Count())
	}
}

func TestGameManagerRemovesStaleGames(t *testing.T) {
	bgm := NewBattleshipGameManager(WithMaxGameAge(time.Minute))

	game, err := bgm.CreateGame(DefaultConfig(MatchTypeShort, 10), nil)
	if err != nil {
		t.Fatal(err)
	}

	if removed := bgm.removeStale(time.Now()); removed != 0 {
		t.Fatalf("fresh game removed")
	}
	if removed := bgm.removeStale(game.CreatedAt().Add(2 * time.Minute)); removed != 1 {
		t.Fatalf("expected stale game removal, got: %d", removed)
	}
}
