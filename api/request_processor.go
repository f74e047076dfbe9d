package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
	"github.com/sqlc-dev/pqtype"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	gridSize       int
}

// A nil analytics manager disables analytics.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	analytics *sqlc.AnalyticsManager,
	gridSize int,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      analytics,
		gridSize:       gridSize,
	}
}

func serverIpNet(localAddr string) (net.IPNet, error) {
	host, _, err := net.SplitHostPort(localAddr)
	if err != nil {
		return net.IPNet{}, err
	}

	ip := net.ParseIP(host)
	if ip4 := ip.To4(); ip4 != nil {
		return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}, nil
	}
	return net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, nil
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			// This either means an expired session or invalid session ID
			msg := mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID)
			msg.AddError(err.Error(), "")
			_ = conn.WriteJSON(msg)
			conn.Close()
			return
		}
		log.Println("session reconnected:", sessionIdQuery)
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	var (
		observer  *wsObserver
		sessionId = session.Id()
	)

	defer func() {
		if game := session.Game(); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Println("session closed:", sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	var serverInet pqtype.Inet
	if ipNet, err := serverIpNet(session.Conn().LocalAddr().String()); err == nil {
		serverInet = pqtype.Inet{IPNet: ipNet, Valid: true}
	} else {
		log.Println("failed to extract server ip:", err)
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// A new game replaces whatever game the session had, a rejected
		// one leaves it running. Restarting is entirely up to the client.
		case mc.CodeCreateGame:
			newObserver := newWsObserver(session, rp.sessionManager)
			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager, rp.gridSize, newObserver)
			if game != nil {
				if prev := session.Game(); prev != nil {
					rp.gameManager.TerminateGame(prev.Uuid())
				}
				observer = newObserver
				session.SetGame(game)
				rp.recordGameCreated(serverInet)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// Board events are written by the observer while the attack
		// resolves, the attack result itself comes last.
		case mc.CodeAttack:
			game := session.Game()
			respMsg := NewRequest(payload).HandleAttack(game)

			if observer != nil {
				if err := observer.takeErr(); err != nil {
					break sessionLoop
				}
				if outcome, ended := observer.takeEnded(); ended {
					rp.recordGameResult(serverInet, outcome, game.Board().ShotsFired())
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeGameState:
			respMsg := NewRequest(payload).HandleGameState(session.Game())
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAbandonGame:
			if game := session.Game(); game != nil {
				rp.gameManager.TerminateGame(game.Uuid())
				session.SetGame(nil)
			}
			observer = nil

			respMsg := mc.NewMessage[mc.NoPayload](mc.CodeAbandonGame)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

func (rp RequestProcessor) recordGameCreated(serverInet pqtype.Inet) {
	if rp.analytics == nil || !serverInet.Valid {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := rp.analytics.IncrementGamesCreatedCount(ctx, serverInet); err != nil {
		// for now not killing the game for it
		log.Println(err)
	}
}

func (rp RequestProcessor) recordGameResult(serverInet pqtype.Inet, outcome mb.Outcome, shotsFired int) {
	if rp.analytics == nil || !serverInet.Valid {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := rp.analytics.RecordGameResult(ctx, serverInet, outcome == mb.OutcomeWon, int64(shotsFired)); err != nil {
		log.Println(err)
	}
}
