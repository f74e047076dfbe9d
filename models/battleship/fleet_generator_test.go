package battleship

import (
	"math/rand/v2"
	"testing"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

func TestGenerateFleetInvariants(t *testing.T) {
	catalog := DefaultCatalog()

	for shipCount := 1; shipCount <= 20; shipCount++ {
		for seed := uint64(0); seed < 10; seed++ {
			fg := NewFleetGenerator(DefaultGridSize, catalog, newTestRand(seed))
			fleet := fg.GenerateFleet(shipCount)

			if len(fleet) != shipCount {
				t.Fatalf("expected ships: %d\tgot: %d", shipCount, len(fleet))
			}

			occupied := make(map[Coordinates]struct{})
			var totalLength int

			for _, ship := range fleet {
				kind, ok := catalog.Lookup(ship.Kind().Name)
				if !ok {
					t.Fatalf("ship kind not in catalog: %s", ship.Kind().Name)
				}
				if len(ship.Coordinates()) != kind.Length {
					t.Fatalf("%s expected length: %d\tgot: %d", kind.Name, kind.Length, len(ship.Coordinates()))
				}
				if ship.Hits() != 0 {
					t.Fatalf("new ship must have no hits, got: %d", ship.Hits())
				}

				for _, c := range ship.Coordinates() {
					if !c.InBounds(DefaultGridSize) {
						t.Fatalf("coordinate out of grid: %+v", c)
					}
					occupied[c] = struct{}{}
				}
				totalLength += kind.Length
			}

			if len(occupied) != totalLength {
				t.Fatalf("ships overlap: %d distinct cells for total length %d (count %d seed %d)", len(occupied), totalLength, shipCount, seed)
			}
		}
	}
}

func TestGenerateShipIsContiguous(t *testing.T) {
	fg := NewFleetGenerator(DefaultGridSize, DefaultCatalog(), newTestRand(42))

	for i := 0; i < 500; i++ {
		ship := fg.GenerateShip(nil)
		coords := ship.Coordinates()

		for j := 1; j < len(coords); j++ {
			prev, cur := coords[j-1], coords[j]
			vertical := cur.X == prev.X && cur.Y == prev.Y+1
			horizontal := cur.Y == prev.Y && cur.X == prev.X+1
			if !vertical && !horizontal {
				t.Fatalf("ship cells are not consecutive: %v", coords)
			}
		}
	}
}

func TestGenerateShipReachesLastOffset(t *testing.T) {
	// A battleship on a 4x4 grid only fits at offset 0, so every
	// generated ship must span the full row or column.
	catalog := Catalog{ShipKindBattleship}
	fg := NewFleetGenerator(4, catalog, newTestRand(7))

	for i := 0; i < 100; i++ {
		coords := fg.GenerateShip(nil).Coordinates()
		first, last := coords[0], coords[len(coords)-1]
		if !(first.X == 0 && last.X == 3) && !(first.Y == 0 && last.Y == 3) {
			t.Fatalf("battleship must span the grid: %v", coords)
		}
	}

	// On a 5x5 grid both offset 0 and offset 1 must show up
	fg = NewFleetGenerator(5, catalog, newTestRand(8))
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		coords := fg.GenerateShip(nil).Coordinates()
		if coords[0].X == coords[1].X {
			seen[coords[0].Y] = true
		} else {
			seen[coords[0].X] = true
		}
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("expected offsets 0 and 1 to be drawn, got: %v", seen)
	}
}

func TestGenerateShipAvoidsOccupiedColumn(t *testing.T) {
	// Column A fully taken by a battleship, a cruiser, a destroyer and a submarine
	column := make([]Coordinates, 0, DefaultGridSize)
	for y := 0; y < DefaultGridSize; y++ {
		column = append(column, NewCoordinates(0, y))
	}
	existing := []*Ship{
		NewShip(ShipKindBattleship, column[0:4]),
		NewShip(ShipKindCruiser, column[4:7]),
		NewShip(ShipKindDestroyer, column[7:9]),
		NewShip(ShipKindSubmarine, column[9:10]),
	}

	for seed := uint64(0); seed < 50; seed++ {
		fg := NewFleetGenerator(DefaultGridSize, DefaultCatalog(), newTestRand(seed))
		ship := fg.GenerateShip(existing)

		for _, c := range ship.Coordinates() {
			if c.X == 0 {
				t.Fatalf("ship placed on occupied column A: %v", ship.Coordinates())
			}
		}
	}
}

func TestGenerateFleetFillsTightGrid(t *testing.T) {
	// Every cell of a 2x2 grid ends up taken by four submarines
	fg := NewFleetGenerator(2, Catalog{ShipKindSubmarine}, newTestRand(3))
	fleet := fg.GenerateFleet(4)

	occupied := make(map[Coordinates]struct{})
	for _, ship := range fleet {
		for _, c := range ship.Coordinates() {
			occupied[c] = struct{}{}
		}
	}
	if len(occupied) != 4 {
		t.Fatalf("expected 4 distinct cells, got: %d", len(occupied))
	}
}
