package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAttackFailed = "attack operation failed"
	ConstErrCreateFailed = "create game operation failed"
)

var (
	ErrConfiguration     = errors.New("invalid game configuration")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrAlreadyAttacked   = errors.New("position already attacked")
	ErrGameOver          = errors.New("game is over")
	ErrNotFound          = errors.New("not found")
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("%w: game with this uuid does not exist, uuid: %s", ErrNotFound, gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("%w: session with this id does not exist, id: %s", ErrNotFound, sessionId)
}

func ErrNoActiveGame() error {
	return fmt.Errorf("%w: no active game in this session, create one first", ErrNotFound)
}

func ErrInvalidMatchType(matchType int) error {
	return fmt.Errorf("%w: match type must be one of 3, 4 or 5 ships, got: %d", ErrConfiguration, matchType)
}

func ErrUnknownMatchType(name string) error {
	return fmt.Errorf("%w: unknown match type: %q", ErrConfiguration, name)
}

func ErrAmmoOutOfRange(ammo, max int) error {
	return fmt.Errorf("%w: ammo must be within [1, %d], got: %d", ErrConfiguration, max, ammo)
}

func ErrGridTooSmall(gridSize, longestShip int) error {
	return fmt.Errorf("%w: grid size %d cannot fit a ship of length %d", ErrConfiguration, gridSize, longestShip)
}

func ErrGridTooLarge(gridSize, max int) error {
	return fmt.Errorf("%w: grid size %d exceeds the %d available column labels", ErrConfiguration, gridSize, max)
}

func ErrEmptyCatalog() error {
	return fmt.Errorf("%w: ship catalog is empty", ErrConfiguration)
}

func ErrInvalidShipLength(name string, length int) error {
	return fmt.Errorf("%w: ship %q has invalid length %d", ErrConfiguration, name, length)
}

func ErrFleetTooLarge(ships, footprint, capacity int) error {
	return fmt.Errorf("%w: %d ships may need %d cells but the grid only has %d", ErrConfiguration, ships, footprint, capacity)
}

func ErrFleetMayNotFit(ships, longestShip, gridSize int) error {
	return fmt.Errorf("%w: %d ships of up to %d cells may block each other on a %dx%d grid, add a single cell ship or shrink the fleet", ErrConfiguration, ships, longestShip, gridSize, gridSize)
}

func ErrInvalidFleet(reason string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, reason)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: incoming x or y is out of game grid bound\tx: %d\ty: %d", ErrInvalidCoordinate, x, y)
}

func ErrMalformedCoordinate(raw string) error {
	return fmt.Errorf("%w: cannot parse coordinate: %q", ErrInvalidCoordinate, raw)
}

func ErrMissingCoordinates() error {
	return fmt.Errorf("%w: attack payload needs either coord or both x and y", ErrInvalidCoordinate)
}

func ErrAttackPositionAlreadyFilled(coord string) error {
	return fmt.Errorf("%w: this position is already hit in previous rounds: %s", ErrAlreadyAttacked, coord)
}

func ErrGameAlreadyFinished(state string) error {
	return fmt.Errorf("%w: no more attacks accepted, game state: %s", ErrGameOver, state)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil or could not be decoded")
}

func ErrSignalAbsent() error {
	return fmt.Errorf("incoming payload has no code field")
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}
