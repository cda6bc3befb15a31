// Package report delivers period snapshots and final rankings to sinks.
package report

import (
	"context"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Reporter interface {
		ReportSnapshot(ctx context.Context, snapshot model.PeriodSnapshot) error
		ReportRanking(ctx context.Context, ranking model.Ranking) error
	}
	Repository interface {
		InsertPeriodShares(ctx context.Context, rows []model.PeriodShareRow) error
		InsertRankings(ctx context.Context, rows []model.RankingRow) error
	}
)
