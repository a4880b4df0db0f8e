package wallet

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ashquarry/binancewallet/common/timewindow"
)

const day = 24 * time.Hour

func TestCollectHistoryWindowCoverage(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	var queried []timewindow.Window
	batches, err := collectHistory(context.Background(), zap.NewNop(), anchor, 180*day,
		func(_ context.Context, w timewindow.Window) ([]int, error) {
			queried = append(queried, w)
			return []int{1}, nil
		})
	require.NoError(t, err)

	require.Len(t, queried, 2, "180 days over 90-day windows must issue exactly 2 queries")
	assert.Equal(t, timewindow.Window{Start: anchor.Add(-90 * day), End: anchor}, queried[0])
	assert.Equal(t, timewindow.Window{Start: anchor.Add(-180 * day), End: anchor.Add(-90 * day)}, queried[1])

	require.Len(t, batches, 2)
	for i := range batches {
		assert.Equal(t, queried[i].Start, batches[i].StartAt, "batch tags must match the query bounds")
		assert.Equal(t, queried[i].End, batches[i].EndAt)
	}
}

func TestCollectHistoryEmptyPageSuppression(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	var calls int
	batches, err := collectHistory(context.Background(), zap.NewNop(), anchor, 270*day,
		func(_ context.Context, w timewindow.Window) ([]string, error) {
			calls++
			if calls == 2 {
				return nil, nil
			}
			return []string{"record"}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "an empty window must not stop iteration")
	require.Len(t, batches, 2, "empty pages must not appear in the result")
	assert.Equal(t, anchor, batches[0].EndAt)
	assert.Equal(t, anchor.Add(-180*day), batches[1].EndAt)
}

func TestCollectHistoryAbortOnError(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	boom := errors.New("window exploded")

	var calls int
	batches, err := collectHistory(context.Background(), zap.NewNop(), anchor, 270*day,
		func(_ context.Context, _ timewindow.Window) ([]int, error) {
			calls++
			if calls == 2 {
				return nil, boom
			}
			return []int{42}, nil
		})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, batches, "a failure must discard batches already gathered")
	assert.Equal(t, 2, calls, "iteration must stop at the first failure")
}

func TestCollectHistoryOrdering(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	batches, err := collectHistory(context.Background(), zap.NewNop(), anchor, 360*day,
		func(_ context.Context, w timewindow.Window) ([]int64, error) {
			return []int64{w.End.UnixMilli()}, nil
		})
	require.NoError(t, err)
	require.Len(t, batches, 4)
	for i := 1; i < len(batches); i++ {
		assert.True(t, batches[i].EndAt.Before(batches[i-1].EndAt),
			"batches must be ordered newest window first")
		assert.Equal(t, batches[i].EndAt, batches[i-1].StartAt)
	}
}

func TestCollectHistoryDefaults(t *testing.T) {
	t.Parallel()

	var queried []timewindow.Window
	before := time.Now()
	_, err := collectHistory(context.Background(), zap.NewNop(), time.Time{}, 0,
		func(_ context.Context, w timewindow.Window) ([]int, error) {
			queried = append(queried, w)
			return nil, nil
		})
	require.NoError(t, err)

	require.Len(t, queried, 1, "default total and interval are both 90 days, so one window is queried")
	assert.WithinDuration(t, before, queried[0].End, 5*time.Second,
		"omitting the anchor must default to now")
	assert.Equal(t, 90*day, queried[0].End.Sub(queried[0].Start))
}

func TestDepositHistoryWindowed(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	fake.Enqueue(http.MethodGet, "/sapi/v1/capital/deposit/hisrec", http.StatusOK,
		`[{"id":"recent","amount":"1.0","coin":"BTC","status":1}]`)
	fake.Enqueue(http.MethodGet, "/sapi/v1/capital/deposit/hisrec", http.StatusOK,
		`[{"id":"older","amount":"2.0","coin":"BTC","status":1}]`)

	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	batches, err := c.DepositHistoryWindowed(context.Background(),
		DepositHistoryQuery{Coin: "BTC"}, anchor, 180*day)
	require.NoError(t, err)

	require.Len(t, batches, 2)
	assert.Equal(t, "recent", batches[0].Records[0].ID)
	assert.Equal(t, "older", batches[1].Records[0].ID)
	assert.Equal(t, anchor, batches[0].EndAt)
	assert.Equal(t, anchor.Add(-90*day), batches[1].EndAt)

	reqs := fake.Requests()
	require.Len(t, reqs, 2)
	for i, req := range reqs {
		assert.Equalf(t, "BTC", req.Query.Get("coin"),
			"query fields must carry into window %d", i)
		wantEnd := anchor.Add(time.Duration(-i) * 90 * day)
		assert.Equal(t, strconv.FormatInt(wantEnd.Add(-90*day).UnixMilli(), 10), req.Query.Get("startTime"))
		assert.Equal(t, strconv.FormatInt(wantEnd.UnixMilli(), 10), req.Query.Get("endTime"))
	}
}

func TestWithdrawalHistoryWindowedAbort(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	fake.Enqueue(http.MethodGet, "/sapi/v1/capital/withdraw/history", http.StatusOK,
		`[{"id":"ok","amount":"1.0","coin":"BTC","status":6}]`)
	fake.Enqueue(http.MethodGet, "/sapi/v1/capital/withdraw/history", http.StatusInternalServerError,
		`{"code":-1000,"msg":"An unknown error occurred while processing the request."}`)

	anchor := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	batches, err := c.WithdrawalHistoryWindowed(context.Background(),
		WithdrawalHistoryQuery{}, anchor, 270*day)
	require.Error(t, err)
	assert.Nil(t, batches, "the successful first window must not leak on abort")
	assert.Equal(t, 2, fake.RequestCount(), "the third window must never be queried")
}

func TestWithdrawalHistoryWindowedDefaultsSingleWindow(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	batches, err := c.WithdrawalHistoryWindowed(context.Background(),
		WithdrawalHistoryQuery{}, time.Time{}, 0)
	require.NoError(t, err)
	assert.Empty(t, batches, "the fake's default page is empty")
	assert.Equal(t, 1, fake.RequestCount(), "defaults must yield exactly one query window")
}
