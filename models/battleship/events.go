package battleship

// BoardObserver receives everything a presentation layer needs to redraw
// the board. Calls happen synchronously from inside Board.Attack.
type BoardObserver interface {
	OnTileStateChanged(c Coordinates, state TileState)
	OnShipSunk(kindName string)
	OnGameEnded(outcome Outcome, title, narrative string)
}

type NopObserver struct{}

var _ BoardObserver = NopObserver{}

func (NopObserver) OnTileStateChanged(Coordinates, TileState) {}
func (NopObserver) OnShipSunk(string)                          {}
func (NopObserver) OnGameEnded(Outcome, string, string)        {}

const (
	titleWon     = "We are victorious!"
	narrativeWon = "Enemy guns have fallen silent, and our scout planes see only burning wrecks. It seems we sank them all!"

	titleLost     = "Retreat..."
	narrativeLost = "Our ships have ran out of shells, and we have no option but to retreat..."
)

// Narrative returns the end of game title and text for outcome.
func Narrative(outcome Outcome) (string, string) {
	switch outcome {
	case OutcomeWon:
		return titleWon, narrativeWon
	case OutcomeLost:
		return titleLost, narrativeLost
	default:
		return "", ""
	}
}

// SunkNarrative is the message shown when a ship of kindName goes down.
func SunkNarrative(kindName string) string {
	return "We can see plumes of smoke over the horizon! Looks like we sank a " + kindName + "!"
}
