package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps per-server counters of solo games.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementGamesCreatedCount(ctx, serverIpNet)
}

// Records a finished game. won is false for a defeat.
func (a *AnalyticsManager) RecordGameResult(ctx context.Context, serverIpNet pqtype.Inet, won bool, shotsFired int64) error {
	var err error
	if won {
		err = a.queries.AnalyticsIncrementGamesWonCount(ctx, serverIpNet)
	} else {
		err = a.queries.AnalyticsIncrementGamesLostCount(ctx, serverIpNet)
	}
	if err != nil {
		return err
	}

	if shotsFired == 0 {
		return nil
	}
	return a.queries.AnalyticsAddShotsFired(ctx, AnalyticsAddShotsFiredParams{
		ServerIp:   serverIpNet,
		ShotsFired: shotsFired,
	})
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetServerAnalytics(ctx context.Context, serverIpNet pqtype.Inet) (GameServerAnalytic, error) {
	return a.queries.AnalyticsGetServerAnalytics(ctx, serverIpNet)
}
