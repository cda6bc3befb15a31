package analyzer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Classifier interface {
		Attribute(rec model.BlockRecord) (miner string, ok bool)
	}
	Aggregator interface {
		Observe(rec model.BlockRecord, miner string) *model.PeriodSnapshot
		Skip(rec model.BlockRecord) *model.PeriodSnapshot
		Ranking() model.Ranking
	}
	Reporter interface {
		ReportSnapshot(ctx context.Context, snapshot model.PeriodSnapshot) error
		ReportRanking(ctx context.Context, ranking model.Ranking) error
	}
	Metrics interface {
		ObserveAttributed(miner string)
		ObserveExcluded()
		ObserveReport(kind string, err error, started time.Time)
	}
)
