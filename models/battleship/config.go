package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// MatchType is the number of enemy ships in a game.
type MatchType int

const (
	MatchTypeShort  MatchType = 3
	MatchTypeMedium MatchType = 4
	MatchTypeLong   MatchType = 5
)

const DefaultAmmo int = 50

func MatchTypes() []MatchType {
	return []MatchType{MatchTypeShort, MatchTypeMedium, MatchTypeLong}
}

func (mt MatchType) IsValid() bool {
	return mt == MatchTypeShort || mt == MatchTypeMedium || mt == MatchTypeLong
}

func (mt MatchType) String() string {
	switch mt {
	case MatchTypeShort:
		return "short"
	case MatchTypeMedium:
		return "medium"
	case MatchTypeLong:
		return "long"
	default:
		return "invalid(" + strconv.Itoa(int(mt)) + ")"
	}
}

// ParseMatchType accepts either the preset name or its ship count.
func ParseMatchType(raw string) (MatchType, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	if n, err := strconv.Atoi(s); err == nil {
		mt := MatchType(n)
		if !mt.IsValid() {
			return 0, cerr.ErrInvalidMatchType(n)
		}
		return mt, nil
	}

	for _, mt := range MatchTypes() {
		if mt.String() == s {
			return mt, nil
		}
	}
	return 0, cerr.ErrUnknownMatchType(raw)
}

type Config struct {
	GridSize  int
	Catalog   Catalog
	MatchType MatchType
	Ammo      int
}

func DefaultConfig(matchType MatchType, ammo int) Config {
	return Config{
		GridSize:  DefaultGridSize,
		Catalog:   DefaultCatalog(),
		MatchType: matchType,
		Ammo:      ammo,
	}
}

func (cfg Config) ShipCount() int {
	return int(cfg.MatchType)
}

// Validate must pass before any fleet is generated. Besides the plain range
// checks it makes sure the fleet can always be completed by the unbounded
// placement retry loop: the worst case footprint must fit the grid, and a
// catalog without a single cell ship must leave a row free for the last ship.
func (cfg Config) Validate() error {
	if !cfg.MatchType.IsValid() {
		return cerr.ErrInvalidMatchType(int(cfg.MatchType))
	}
	if len(cfg.Catalog) == 0 {
		return cerr.ErrEmptyCatalog()
	}
	for _, kind := range cfg.Catalog {
		if kind.Length < 1 {
			return cerr.ErrInvalidShipLength(kind.Name, kind.Length)
		}
	}

	longest := cfg.Catalog.LongestShip()
	if cfg.GridSize < longest {
		return cerr.ErrGridTooSmall(cfg.GridSize, longest)
	}
	if cfg.GridSize > MaxGridSize {
		return cerr.ErrGridTooLarge(cfg.GridSize, MaxGridSize)
	}

	capacity := cfg.GridSize * cfg.GridSize
	if cfg.Ammo < 1 || cfg.Ammo > capacity {
		return cerr.ErrAmmoOutOfRange(cfg.Ammo, capacity)
	}

	footprint := cfg.ShipCount() * longest
	if footprint > capacity {
		return cerr.ErrFleetTooLarge(cfg.ShipCount(), footprint, capacity)
	}

	// A single cell ship fits any free cell. Without one, the ships placed
	// before the last touch at most (count-1)*longest rows.
	if !cfg.Catalog.hasSingleCellShip() && (cfg.ShipCount()-1)*longest >= cfg.GridSize {
		return cerr.ErrFleetMayNotFit(cfg.ShipCount(), longest, cfg.GridSize)
	}

	return nil
}
