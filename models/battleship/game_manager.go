package battleship

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type GameManager interface {
	CreateGame(cfg Config, observer BoardObserver) (*Game, error)
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	CleanupPeriodically(stop <-chan struct{})
	Count() int
}

type BattleshipGameManager struct {
	games      map[string]*Game
	maxGameAge time.Duration
	newRand    func() *rand.Rand
	mu         sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

type GameManagerOption func(*BattleshipGameManager)

// Games older than maxAge are removed by CleanupPeriodically.
func WithMaxGameAge(maxAge time.Duration) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.maxGameAge = maxAge
	}
}

// Every new board gets its random source from newRand.
func WithRandSource(newRand func() *rand.Rand) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.newRand = newRand
	}
}

func NewBattleshipGameManager(opts ...GameManagerOption) *BattleshipGameManager {
	bgm := &BattleshipGameManager{
		games:      make(map[string]*Game, 10),
		maxGameAge: time.Minute * 30,
	}
	for _, opt := range opts {
		opt(bgm)
	}
	return bgm
}

func (bgm *BattleshipGameManager) CreateGame(cfg Config, observer BoardObserver) (*Game, error) {
	var rng *rand.Rand
	if bgm.newRand != nil {
		rng = bgm.newRand()
	}

	game, err := newGame(uuid.NewString()[:6], cfg, rng, observer)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.uuid] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) Count() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}

// Games that outlive maxGameAge are considered abandoned.
func (bgm *BattleshipGameManager) CleanupPeriodically(stop <-chan struct{}) {
	ticker := time.NewTicker(bgm.maxGameAge)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			bgm.removeStale(time.Now())
		}
	}
}

func (bgm *BattleshipGameManager) removeStale(now time.Time) int {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	var removed int
	for gameUuid, game := range bgm.games {
		if now.Sub(game.createdAt) > bgm.maxGameAge {
			delete(bgm.games, gameUuid)
			log.Printf("removed stale game: %s", gameUuid)
			removed++
		}
	}
	return removed
}
