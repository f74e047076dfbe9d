package battleship

import (
	"math/rand/v2"
	"time"
)

// Game is one solo session: a board plus the bookkeeping the
// server needs to find and expire it.
type Game struct {
	uuid      string
	matchType MatchType
	board     *Board
	createdAt time.Time
}

func newGame(gameUuid string, cfg Config, rng *rand.Rand, observer BoardObserver) (*Game, error) {
	board, err := NewBoard(cfg, rng, observer)
	if err != nil {
		return nil, err
	}

	return &Game{
		uuid:      gameUuid,
		matchType: cfg.MatchType,
		board:     board,
		createdAt: time.Now(),
	}, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) MatchType() MatchType {
	return g.matchType
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) Attack(c Coordinates) (AttackResult, error) {
	return g.board.Attack(c)
}
