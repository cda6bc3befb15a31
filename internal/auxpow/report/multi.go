package report

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
)

// Multi fans out to every reporter in order. All reporters are called even if one fails.
type Multi []Reporter

// ReportSnapshot implements Reporter.
func (m Multi) ReportSnapshot(ctx context.Context, snapshot model.PeriodSnapshot) error {
	var errs []error
	for _, r := range m {
		if err := r.ReportSnapshot(ctx, snapshot); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReportRanking implements Reporter.
func (m Multi) ReportRanking(ctx context.Context, ranking model.Ranking) error {
	var errs []error
	for _, r := range m {
		if err := r.ReportRanking(ctx, ranking); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
