package api

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

// wsObserver forwards board events to the session's websocket as they
// happen. The observer interface has no error return, so the first write
// failure is kept and checked by the session loop after the attack.
type wsObserver struct {
	session        *mc.Session
	sessionManager mc.SessionManager
	err            error
	ended          *mb.Outcome
}

var _ mb.BoardObserver = (*wsObserver)(nil)

func newWsObserver(session *mc.Session, sessionManager mc.SessionManager) *wsObserver {
	return &wsObserver{
		session:        session,
		sessionManager: sessionManager,
	}
}

func (o *wsObserver) write(msg interface{}) {
	if o.err != nil {
		return
	}
	o.err = o.sessionManager.WriteToSessionConn(o.session, msg, mc.MessageTypeJSON)
}

func (o *wsObserver) OnTileStateChanged(c mb.Coordinates, state mb.TileState) {
	o.write(mc.NewMessageWithPayload(mc.CodeTileState, mc.RespTileState{
		Coord: c.String(),
		X:     c.X,
		Y:     c.Y,
		State: state.String(),
	}))
}

func (o *wsObserver) OnShipSunk(kindName string) {
	o.write(mc.NewMessageWithPayload(mc.CodeShipSunk, mc.RespShipSunk{
		Ship:    kindName,
		Message: mb.SunkNarrative(kindName),
	}))
}

func (o *wsObserver) OnGameEnded(outcome mb.Outcome, title, narrative string) {
	o.ended = &outcome
	o.write(mc.NewMessageWithPayload(mc.CodeEndGame, mc.RespEndGame{
		Outcome:   outcome.String(),
		Title:     title,
		Narrative: narrative,
	}))
}

// Returns and clears the pending write error.
func (o *wsObserver) takeErr() error {
	err := o.err
	o.err = nil
	return err
}

// Returns and clears the outcome of a game that just ended.
func (o *wsObserver) takeEnded() (mb.Outcome, bool) {
	if o.ended == nil {
		return mb.OutcomeNone, false
	}
	outcome := *o.ended
	o.ended = nil
	return outcome, true
}
