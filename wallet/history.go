package wallet

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ashquarry/binancewallet/common/timewindow"
)

// DefaultHistoryInterval is both the per-window query span and the default
// total lookback. It matches the remote service's 90-day cap on a single
// deposit or withdrawal history query, so by default exactly one window is
// queried.
const DefaultHistoryInterval = 90 * 24 * time.Hour

// RecordBatch is the non-empty page of records returned for one query
// window, tagged with the window bounds used to produce it. Batches are
// never mutated after collection.
type RecordBatch[T any] struct {
	StartAt time.Time
	EndAt   time.Time
	Records []T
}

// pageQuery fetches the records falling inside one window
type pageQuery[T any] func(ctx context.Context, w timewindow.Window) ([]T, error)

// collectHistory walks the enumerated windows backward from startFrom,
// invoking query once per window, strictly sequentially. Empty pages are
// dropped; the first error aborts the whole collection and discards any
// batches already gathered, so callers never see a silently incomplete
// history. Zero startFrom defaults to now, zero total to
// DefaultHistoryInterval.
func collectHistory[T any](ctx context.Context, log *zap.Logger, startFrom time.Time, total time.Duration, query pageQuery[T]) ([]RecordBatch[T], error) {
	if startFrom.IsZero() {
		startFrom = time.Now()
	}
	if total == 0 {
		total = DefaultHistoryInterval
	}

	windows, err := timewindow.EnumerateBackward(startFrom, total, DefaultHistoryInterval)
	if err != nil {
		return nil, err
	}

	var batches []RecordBatch[T]
	for _, w := range windows {
		log.Debug("querying history window",
			zap.Time("start", w.Start),
			zap.Time("end", w.End))

		records, err := query(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("history window %s: %w", w, err)
		}
		if len(records) == 0 {
			continue
		}
		batches = append(batches, RecordBatch[T]{
			StartAt: w.Start,
			EndAt:   w.End,
			Records: records,
		})
	}
	return batches, nil
}

// DepositHistoryWindowed collects deposit history over an arbitrary
// lookback by issuing one bounded DepositHistory query per 90-day window,
// walking backward from startFrom. The query's own time bounds are ignored;
// every other field is carried into each window's request. Batches are
// ordered newest window first. Any window failing aborts the whole
// collection.
func (c *Client) DepositHistoryWindowed(ctx context.Context, q DepositHistoryQuery, startFrom time.Time, total time.Duration) ([]RecordBatch[DepositRecord], error) {
	return collectHistory(ctx, c.log, startFrom, total,
		func(ctx context.Context, w timewindow.Window) ([]DepositRecord, error) {
			wq := q
			wq.StartTime = w.Start
			wq.EndTime = w.End
			return c.DepositHistory(ctx, wq)
		})
}

// WithdrawalHistoryWindowed collects withdrawal history over an arbitrary
// lookback by issuing one bounded WithdrawalHistory query per 90-day
// window, walking backward from startFrom. Semantics match
// DepositHistoryWindowed.
func (c *Client) WithdrawalHistoryWindowed(ctx context.Context, q WithdrawalHistoryQuery, startFrom time.Time, total time.Duration) ([]RecordBatch[WithdrawalRecord], error) {
	return collectHistory(ctx, c.log, startFrom, total,
		func(ctx context.Context, w timewindow.Window) ([]WithdrawalRecord, error) {
			wq := q
			wq.StartTime = w.Start
			wq.EndTime = w.End
			return c.WithdrawalHistory(ctx, wq)
		})
}
