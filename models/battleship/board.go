package battleship

import (
	"math/rand/v2"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type BoardState uint8

const (
	BoardStateActive BoardState = iota
	BoardStateWon
	BoardStateLost
)

func (bs BoardState) String() string {
	switch bs {
	case BoardStateWon:
		return "won"
	case BoardStateLost:
		return "lost"
	default:
		return "active"
	}
}

type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotSunk
)

func (sr ShotResult) String() string {
	switch sr {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

type AttackResult struct {
	Coordinates     Coordinates
	Shot            ShotResult
	SunkKind        *ShipKind
	SunkCoordinates []Coordinates
	Outcome         Outcome
	AmmoLeft        int
}

type Board struct {
	gridSize int
	ammo     int
	shots    int
	state    BoardState
	fleet    []*Ship
	tiles    Grid
	observer BoardObserver
}

// NewBoard validates cfg and places a random fleet. A nil rng uses a time
// seeded source and a nil observer discards events.
func NewBoard(cfg Config, rng *rand.Rand, observer BoardObserver) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fleet := NewFleetGenerator(cfg.GridSize, cfg.Catalog, rng).GenerateFleet(cfg.ShipCount())
	return newBoard(cfg, fleet, observer), nil
}

// NewBoardWithFleet builds a board around a fixed fleet. The fleet must be
// non-empty, in bounds and free of overlaps. The match type of cfg is not
// used since the fleet size is given.
func NewBoardWithFleet(cfg Config, fleet []*Ship, observer BoardObserver) (*Board, error) {
	capacity := cfg.GridSize * cfg.GridSize
	if cfg.GridSize < 1 {
		return nil, cerr.ErrGridTooSmall(cfg.GridSize, 1)
	}
	if cfg.GridSize > MaxGridSize {
		return nil, cerr.ErrGridTooLarge(cfg.GridSize, MaxGridSize)
	}
	if cfg.Ammo < 1 || cfg.Ammo > capacity {
		return nil, cerr.ErrAmmoOutOfRange(cfg.Ammo, capacity)
	}
	if len(fleet) == 0 {
		return nil, cerr.ErrInvalidFleet("fleet is empty")
	}

	occupied := make(map[Coordinates]struct{}, capacity)
	for _, ship := range fleet {
		if len(ship.coordinates) != ship.kind.Length {
			return nil, cerr.ErrInvalidFleet("ship " + ship.kind.Name + " does not match its length")
		}
		for _, c := range ship.coordinates {
			if !c.InBounds(cfg.GridSize) {
				return nil, cerr.ErrInvalidFleet("ship " + ship.kind.Name + " is out of the grid at " + c.String())
			}
			if _, prs := occupied[c]; prs {
				return nil, cerr.ErrInvalidFleet("ships overlap at " + c.String())
			}
			occupied[c] = struct{}{}
		}
	}

	return newBoard(cfg, fleet, observer), nil
}

func newBoard(cfg Config, fleet []*Ship, observer BoardObserver) *Board {
	if observer == nil {
		observer = NopObserver{}
	}

	return &Board{
		gridSize: cfg.GridSize,
		ammo:     cfg.Ammo,
		state:    BoardStateActive,
		fleet:    fleet,
		tiles:    NewGrid(cfg.GridSize),
		observer: observer,
	}
}

// Attack resolves one shot. Rejected attacks (finished game, out of bounds,
// repeated position) return an error and leave the board untouched.
// Victory is checked before ammo exhaustion.
func (b *Board) Attack(c Coordinates) (AttackResult, error) {
	if b.state != BoardStateActive {
		return AttackResult{}, cerr.ErrGameAlreadyFinished(b.state.String())
	}
	if !c.InBounds(b.gridSize) {
		return AttackResult{}, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if b.tiles.at(c) != TileStateUnknown {
		return AttackResult{}, cerr.ErrAttackPositionAlreadyFilled(c.String())
	}

	b.ammo--
	b.shots++
	result := AttackResult{Coordinates: c}

	ship := findShipAt(b.fleet, c)
	switch {
	case ship == nil:
		result.Shot = ShotMiss
		b.setTile(c, TileStateEmpty)

	default:
		ship.GotHit()
		if !ship.IsSunk() {
			result.Shot = ShotHit
			b.setTile(c, TileStateHit)
			break
		}

		result.Shot = ShotSunk
		kind := ship.Kind()
		result.SunkKind = &kind
		result.SunkCoordinates = ship.Coordinates()

		b.removeShip(ship)
		for _, own := range ship.coordinates {
			b.setTile(own, TileStateSunk)
		}
		b.observer.OnShipSunk(kind.Name)

		if len(b.fleet) == 0 {
			result.Outcome = OutcomeWon
			b.finish(BoardStateWon, OutcomeWon)
		}
	}

	if result.Outcome != OutcomeWon && b.ammo == 0 {
		result.Outcome = OutcomeLost
		b.finish(BoardStateLost, OutcomeLost)
	}

	result.AmmoLeft = b.ammo
	return result, nil
}

func (b *Board) setTile(c Coordinates, state TileState) {
	b.tiles.set(c, state)
	b.observer.OnTileStateChanged(c, state)
}

func (b *Board) removeShip(ship *Ship) {
	for i, s := range b.fleet {
		if s == ship {
			b.fleet = append(b.fleet[:i], b.fleet[i+1:]...)
			return
		}
	}
}

func (b *Board) finish(state BoardState, outcome Outcome) {
	b.state = state
	title, narrative := Narrative(outcome)
	b.observer.OnGameEnded(outcome, title, narrative)
}

func (b *Board) State() BoardState {
	return b.state
}

func (b *Board) IsFinished() bool {
	return b.state != BoardStateActive
}

func (b *Board) AmmoLeft() int {
	return b.ammo
}

func (b *Board) ShotsFired() int {
	return b.shots
}

func (b *Board) ShipsLeft() int {
	return len(b.fleet)
}

func (b *Board) GridSize() int {
	return b.gridSize
}

// Returns TileStateUnknown for positions outside the grid.
func (b *Board) TileState(c Coordinates) TileState {
	if !c.InBounds(b.gridSize) {
		return TileStateUnknown
	}
	return b.tiles.at(c)
}

// Snapshot of the tile states, indexed [y][x].
func (b *Board) Tiles() Grid {
	return b.tiles.clone()
}

// Ships still afloat. Callers get copies and cannot change the board.
func (b *Board) Fleet() []*Ship {
	fleet := make([]*Ship, 0, len(b.fleet))
	for _, ship := range b.fleet {
		cp := *ship
		cp.coordinates = ship.Coordinates()
		fleet = append(fleet, &cp)
	}
	return fleet
}
