package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/saeidalz13/battleship-solo/db/sqlc"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort      int           = 9191
	readHeaderTimeout time.Duration = time.Second * 10
)

type Server struct {
	port           int
	stage          string
	gridSize       int
	analytics      *sqlc.AnalyticsManager
	SessionManager *mc.BattleshipSessionManager
	GameManager    *mb.BattleshipGameManager
}

type Option func(*Server) error

func NewServer(sessionManager *mc.BattleshipSessionManager, gameManager *mb.BattleshipGameManager, optFuncs ...Option) *Server {
	server := Server{
		port:           defaultPort,
		stage:          StageDev,
		gridSize:       mb.DefaultGridSize,
		SessionManager: sessionManager,
		GameManager:    gameManager,
	}

	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}
	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

func WithGridSize(gridSize int) Option {
	return func(s *Server) error {
		if gridSize < mb.DefaultCatalog().LongestShip() || gridSize > mb.MaxGridSize {
			return fmt.Errorf("grid size must be within [%d, %d], got: %d", mb.DefaultCatalog().LongestShip(), mb.MaxGridSize, gridSize)
		}
		s.gridSize = gridSize
		return nil
	}
}

func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(s *Server) error {
		s.analytics = analytics
		return nil
	}
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /battleship", NewRequestProcessor(s.SessionManager, s.GameManager, s.analytics, s.gridSize))
	return mux
}

// Run starts the cleanup routines and blocks serving HTTP.
// Closing stop ends the cleanup routines.
func (s *Server) Run(stop <-chan struct{}) error {
	go s.GameManager.CleanupPeriodically(stop)
	go s.SessionManager.CleanupPeriodically(stop)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Printf("Listening to port %d (stage: %s, grid: %d)\n", s.port, s.stage, s.gridSize)
	return httpServer.ListenAndServe()
}
