package connection

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type ReqCreateGame struct {
	MatchType int `json:"match_type"`
	Ammo      int `json:"ammo"`
}

func (r ReqCreateGame) Config(gridSize int) mb.Config {
	cfg := mb.DefaultConfig(mb.MatchType(r.MatchType), r.Ammo)
	cfg.GridSize = gridSize
	return cfg
}

// Either Coord ("B3") or X and Y must be set. Coord wins when both are.
type ReqAttack struct {
	Coord string `json:"coord,omitempty"`
	X     *int   `json:"x,omitempty"`
	Y     *int   `json:"y,omitempty"`
}

func (r ReqAttack) Coordinates() (mb.Coordinates, error) {
	if r.Coord != "" {
		return mb.ParseCoordinates(r.Coord)
	}
	if r.X == nil || r.Y == nil {
		return mb.Coordinates{}, cerr.ErrMissingCoordinates()
	}
	return mb.NewCoordinates(*r.X, *r.Y), nil
}
