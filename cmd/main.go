package main

import (
	"log"

	"github.com/saeidalz13/battleship-solo/api"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal/config"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	opts := []api.Option{
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithGridSize(cfg.GridSize),
	}

	if cfg.DatabaseUrl != "" {
		conn := db.MustConnectToDb(cfg.DatabaseUrl, db.DefaultMigrationDir)
		defer conn.Close()
		opts = append(opts, api.WithAnalytics(sqlc.NewDbManagerFromDB(conn).Analytics))
	} else {
		log.Println("DATABASE_URL not set, analytics disabled")
	}

	sessionManager := mc.NewBattleshipSessionManager(
		mc.WithCleanupInterval(cfg.CleanupInterval),
		mc.WithGracePeriod(cfg.GracePeriod),
	)
	gameManager := mb.NewBattleshipGameManager(mb.WithMaxGameAge(cfg.MaxGameAge))

	server := api.NewServer(sessionManager, gameManager, opts...)

	stop := make(chan struct{})
	defer close(stop)
	log.Fatalln(server.Run(stop))
}
