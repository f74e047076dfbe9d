package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager, gridSize int, observer mb.BoardObserver) (*mb.Game, mc.Message[mc.RespCreateGame])
	HandleAttack(game *mb.Game) mc.Message[mc.RespAttack]
	HandleGameState(game *mb.Game) mc.Message[mc.RespGameState]
}

// Every incoming valid request will have this structure
type Request struct {
	payload []byte
}

// This tells the compiler that Request struct must be of type of RequestHandler
var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

func (r Request) HandleCreateGame(gameManager mb.GameManager, gridSize int, observer mb.BoardObserver) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var req mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(cerr.ErrNilPayload().Error(), cerr.ConstErrCreateFailed)
		return nil, resp
	}

	cfg := req.Payload.Config(gridSize)
	game, err := gameManager.CreateGame(cfg, observer)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrCreateFailed)
		return nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid:  game.Uuid(),
		GridSize:  game.Board().GridSize(),
		MatchType: int(game.MatchType()),
		Ships:     game.Board().ShipsLeft(),
		Ammo:      game.Board().AmmoLeft(),
	})
	return game, resp
}

// The attack is resolved by the board. Rejected attacks come back
// as an error message and do not touch the game.
func (r Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(cerr.ErrNilPayload().Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	coords, err := req.Payload.Coordinates()
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	result, err := game.Attack(coords)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	resp.AddPayload(mc.NewRespAttack(result, game.Board().ShipsLeft()))
	return resp
}

func (r Request) HandleGameState(game *mb.Game) mc.Message[mc.RespGameState] {
	resp := mc.NewMessage[mc.RespGameState](mc.CodeGameState)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), "")
		return resp
	}

	resp.AddPayload(mc.NewRespGameState(game))
	return resp
}
