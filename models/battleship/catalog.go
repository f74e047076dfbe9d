package battleship

type ShipKind struct {
	Name   string
	Length int
}

type Catalog []ShipKind

var (
	ShipKindBattleship = ShipKind{Name: "Battleship", Length: 4}
	ShipKindCruiser    = ShipKind{Name: "Cruiser", Length: 3}
	ShipKindDestroyer  = ShipKind{Name: "Destroyer", Length: 2}
	ShipKindSubmarine  = ShipKind{Name: "Submarine", Length: 1}
)

// Returns a fresh copy of the default catalog so that
// callers can never mutate the process-wide table.
func DefaultCatalog() Catalog {
	return Catalog{
		ShipKindBattleship,
		ShipKindCruiser,
		ShipKindDestroyer,
		ShipKindSubmarine,
	}
}

func (c Catalog) LongestShip() int {
	var longest int
	for _, kind := range c {
		if kind.Length > longest {
			longest = kind.Length
		}
	}
	return longest
}

func (c Catalog) Lookup(name string) (ShipKind, bool) {
	for _, kind := range c {
		if kind.Name == name {
			return kind, true
		}
	}
	return ShipKind{}, false
}

func (c Catalog) hasSingleCellShip() bool {
	for _, kind := range c {
		if kind.Length == 1 {
			return true
		}
	}
	return false
}
