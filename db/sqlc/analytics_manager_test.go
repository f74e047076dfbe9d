package sqlc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
)

var testInet = pqtype.Inet{
	IPNet: net.IPNet{IP: net.ParseIP("10.0.0.7").To4(), Mask: net.CIDRMask(32, 32)},
	Valid: true,
}

func newTestAnalytics(t *testing.T) (*AnalyticsManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDbManagerFromDB(db).Analytics, mock
}

func TestIncrementGamesCreatedCount(t *testing.T) {
	analytics, mock := newTestAnalytics(t)

	mock.ExpectExec(`INSERT INTO game_server_analytics \(server_ip, games_created\)`).
		WithArgs(testInet).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT games_created FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(testInet).
		WillReturnRows(sqlmock.NewRows([]string{"games_created"}).AddRow(1))

	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()

	if err := analytics.IncrementGamesCreatedCount(ctx, testInet); err != nil {
		t.Fatal(err)
	}

	gamesCreated, err := analytics.GetGamesCreatedCount(ctx, testInet)
	if err != nil {
		t.Fatalf("failed to fetch created games: %v", err)
	}
	if gamesCreated != 1 {
		t.Fatalf("expected number of created games: %d\tgot: %d", 1, gamesCreated)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestRecordGameResult(t *testing.T) {
	tests := []struct {
		name        string
		won         bool
		shotsFired  int64
		counterStmt string
	}{
		{name: "won with shots", won: true, shotsFired: 17, counterStmt: `INSERT INTO game_server_analytics \(server_ip, games_won\)`},
		{name: "lost with shots", won: false, shotsFired: 50, counterStmt: `INSERT INTO game_server_analytics \(server_ip, games_lost\)`},
		{name: "lost without shots", won: false, counterStmt: `INSERT INTO game_server_analytics \(server_ip, games_lost\)`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			analytics, mock := newTestAnalytics(t)

			mock.ExpectExec(test.counterStmt).
				WithArgs(testInet).
				WillReturnResult(sqlmock.NewResult(0, 1))
			if test.shotsFired != 0 {
				mock.ExpectExec(`INSERT INTO game_server_analytics \(server_ip, shots_fired\)`).
					WithArgs(testInet, test.shotsFired).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			if err := analytics.RecordGameResult(context.Background(), testInet, test.won, test.shotsFired); err != nil {
				t.Fatal(err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations were not met: %v", err)
			}
		})
	}
}

func TestRecordGameResultStopsOnError(t *testing.T) {
	analytics, mock := newTestAnalytics(t)
	errDb := errors.New("connection reset")

	mock.ExpectExec(`INSERT INTO game_server_analytics \(server_ip, games_won\)`).
		WithArgs(testInet).
		WillReturnError(errDb)

	err := analytics.RecordGameResult(context.Background(), testInet, true, 3)
	if !errors.Is(err, errDb) {
		t.Fatalf("expected error: %v\tgot: %v", errDb, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestGetServerAnalytics(t *testing.T) {
	analytics, mock := newTestAnalytics(t)
	updatedAt := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT server_ip, games_created, games_won, games_lost, shots_fired, updated_at`).
		WithArgs(testInet).
		WillReturnRows(sqlmock.NewRows([]string{"server_ip", "games_created", "games_won", "games_lost", "shots_fired", "updated_at"}).
			AddRow("10.0.0.7/32", 12, 7, 4, 311, updatedAt))

	stats, err := analytics.GetServerAnalytics(context.Background(), testInet)
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCreated != 12 || stats.GamesWon != 7 || stats.GamesLost != 4 || stats.ShotsFired != 311 {
		t.Fatalf("unexpected analytics: %+v", stats)
	}
	if !stats.ServerIp.Valid || !stats.ServerIp.IPNet.IP.Equal(testInet.IPNet.IP) {
		t.Fatalf("unexpected server ip: %+v", stats.ServerIp)
	}
	if !stats.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("expected updated at: %s\tgot: %s", updatedAt, stats.UpdatedAt)
	}
}
