package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid  string `json:"game_uuid"`
	GridSize  int    `json:"grid_size"`
	MatchType int    `json:"match_type"`
	Ships     int    `json:"ships"`
	Ammo      int    `json:"ammo"`
}

type RespAttack struct {
	Coord      string   `json:"coord"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Shot       string   `json:"shot"`
	SunkShip   string   `json:"sunk_ship,omitempty"`
	SunkCoords []string `json:"sunk_coords,omitempty"`
	Outcome    string   `json:"outcome"`
	AmmoLeft   int      `json:"ammo_left"`
	ShipsLeft  int      `json:"ships_left"`
}

func NewRespAttack(result mb.AttackResult, shipsLeft int) RespAttack {
	resp := RespAttack{
		Coord:     result.Coordinates.String(),
		X:         result.Coordinates.X,
		Y:         result.Coordinates.Y,
		Shot:      result.Shot.String(),
		Outcome:   result.Outcome.String(),
		AmmoLeft:  result.AmmoLeft,
		ShipsLeft: shipsLeft,
	}

	if result.SunkKind != nil {
		resp.SunkShip = result.SunkKind.Name
		resp.SunkCoords = make([]string, 0, len(result.SunkCoordinates))
		for _, c := range result.SunkCoordinates {
			resp.SunkCoords = append(resp.SunkCoords, c.String())
		}
	}
	return resp
}

type RespTileState struct {
	Coord string `json:"coord"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	State string `json:"state"`
}

type RespShipSunk struct {
	Ship    string `json:"ship"`
	Message string `json:"message"`
}

type RespEndGame struct {
	Outcome   string `json:"outcome"`
	Title     string `json:"title"`
	Narrative string `json:"narrative"`
}

type RespGameState struct {
	GameUuid  string     `json:"game_uuid"`
	State     string     `json:"state"`
	AmmoLeft  int        `json:"ammo_left"`
	ShipsLeft int        `json:"ships_left"`
	Tiles     [][]string `json:"tiles"`
}

func NewRespGameState(game *mb.Game) RespGameState {
	board := game.Board()
	grid := board.Tiles()

	tiles := make([][]string, len(grid))
	for y, row := range grid {
		tiles[y] = make([]string, len(row))
		for x, state := range row {
			tiles[y][x] = state.String()
		}
	}

	return RespGameState{
		GameUuid:  game.Uuid(),
		State:     board.State().String(),
		AmmoLeft:  board.AmmoLeft(),
		ShipsLeft: board.ShipsLeft(),
		Tiles:     tiles,
	}
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
