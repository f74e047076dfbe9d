package battleship

type Ship struct {
	kind        ShipKind
	coordinates []Coordinates
	hits        int
}

func NewShip(kind ShipKind, coordinates []Coordinates) *Ship {
	return &Ship{
		kind:        kind,
		coordinates: coordinates,
		hits:        0,
	}
}

func (sh *Ship) Kind() ShipKind {
	return sh.kind
}

func (sh *Ship) Length() int {
	return sh.kind.Length
}

func (sh *Ship) Hits() int {
	return sh.hits
}

// Returns a copy of the occupied positions, in placement order.
func (sh *Ship) Coordinates() []Coordinates {
	coords := make([]Coordinates, len(sh.coordinates))
	copy(coords, sh.coordinates)
	return coords
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, own := range sh.coordinates {
		if own == c {
			return true
		}
	}
	return false
}

// Hit count never goes past the ship length
func (sh *Ship) GotHit() {
	if sh.hits < sh.kind.Length {
		sh.hits++
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.kind.Length
}

// Returns the first ship occupying c, or nil.
func findShipAt(ships []*Ship, c Coordinates) *Ship {
	for _, ship := range ships {
		if ship.Occupies(c) {
			return ship
		}
	}
	return nil
}
