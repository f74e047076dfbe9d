package battleship

import (
	"math/rand/v2"
	"time"
)

const (
	OrientationVertical int = iota
	OrientationHorizontal
)

type FleetGenerator struct {
	gridSize int
	catalog  Catalog
	rng      *rand.Rand
}

// A nil rng falls back to a time seeded source.
func NewFleetGenerator(gridSize int, catalog Catalog, rng *rand.Rand) *FleetGenerator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32))
	}

	return &FleetGenerator{
		gridSize: gridSize,
		catalog:  catalog,
		rng:      rng,
	}
}

// GenerateShip places a random ship of a random kind that does not overlap
// any of existingShips. A candidate that collides on any cell is thrown away
// entirely and a new kind, orientation and position are drawn. There is no
// retry cap, so the caller must make sure the grid can hold the fleet
// (see Config.Validate).
func (fg *FleetGenerator) GenerateShip(existingShips []*Ship) *Ship {
	for {
		if ship := fg.tryShip(existingShips); ship != nil {
			return ship
		}
	}
}

func (fg *FleetGenerator) tryShip(existingShips []*Ship) *Ship {
	kind := fg.catalog[fg.rng.IntN(len(fg.catalog))]
	orientation := fg.rng.IntN(2)

	// Varying axis offset is drawn from [0, gridSize-length]
	fixed := fg.rng.IntN(fg.gridSize)
	offset := fg.rng.IntN(fg.gridSize - kind.Length + 1)

	coords := make([]Coordinates, 0, kind.Length)
	for i := 0; i < kind.Length; i++ {
		var c Coordinates
		if orientation == OrientationVertical {
			c = NewCoordinates(fixed, offset+i)
		} else {
			c = NewCoordinates(offset+i, fixed)
		}

		if findShipAt(existingShips, c) != nil {
			return nil
		}
		coords = append(coords, c)
	}

	return NewShip(kind, coords)
}

// GenerateFleet places shipCount ships one after another, every new ship
// seeing all the ones placed before it.
func (fg *FleetGenerator) GenerateFleet(shipCount int) []*Ship {
	fleet := make([]*Ship, 0, shipCount)
	for len(fleet) < shipCount {
		fleet = append(fleet, fg.GenerateShip(fleet))
	}
	return fleet
}
