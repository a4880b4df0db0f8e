package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashquarry/binancewallet/request"
	"github.com/ashquarry/binancewallet/withdraw"
)

func TestAllCoinsInfo(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t)

	coins, err := c.AllCoinsInfo(context.Background())
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "BTC", coins[0].Coin)
	assert.True(t, coins[0].Free.Equal(decimal.RequireFromString("0.5")))
	require.Len(t, coins[0].NetworkList, 1)
	assert.True(t, coins[0].NetworkList[0].IsDefault)
}

func TestDailyAccountSnapshot(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.DailyAccountSnapshot(context.Background(), AccountSnapshotQuery{})
	assert.ErrorIs(t, err, errSnapshotTypeUnset)
	assert.Zero(t, fake.RequestCount(), "validation failures must not reach the network")

	snap, err := c.DailyAccountSnapshot(context.Background(), AccountSnapshotQuery{
		Type:  "SPOT",
		Limit: 7,
	})
	require.NoError(t, err)
	require.Len(t, snap.SnapshotVos, 1)
	assert.Equal(t, "spot", snap.SnapshotVos[0].Type)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "SPOT", reqs[0].Query.Get("type"))
	assert.Equal(t, "7", reqs[0].Query.Get("limit"))
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	r := &withdraw.Request{
		Coin:    "BTC",
		Address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		Amount:  decimal.NewFromFloat(0.05),
		Network: "BTC",
	}
	require.NoError(t, r.GenerateOrderID())

	id, err := c.Withdraw(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "7213fea8e94b4a5593d507237e5a555b", id)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	q := reqs[0].Query
	assert.Equal(t, "BTC", q.Get("coin"))
	assert.Equal(t, r.Address, q.Get("address"))
	assert.Equal(t, "0.05", q.Get("amount"))
	assert.Equal(t, r.WithdrawOrderID, q.Get("withdrawOrderId"))
}

func TestWithdrawValidationFailsFast(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.Withdraw(context.Background(), &withdraw.Request{})
	require.Error(t, err)
	assert.Zero(t, fake.RequestCount(), "an invalid request must not be submitted")
}

func TestWithdrawEmptyID(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)
	fake.Enqueue(http.MethodPost, "/sapi/v1/capital/withdraw/apply", http.StatusOK, `{"id":""}`)

	_, err := c.Withdraw(context.Background(), &withdraw.Request{
		Coin:    "BTC",
		Address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		Amount:  decimal.NewFromFloat(0.05),
	})
	assert.ErrorIs(t, err, errWithdrawIDEmpty)
}

func TestDepositHistory(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.DepositHistory(context.Background(), DepositHistoryQuery{Status: "9"})
	assert.ErrorIs(t, err, errInvalidStatus)
	_, err = c.DepositHistory(context.Background(), DepositHistoryQuery{Status: "success"})
	assert.ErrorIs(t, err, errInvalidStatus)
	assert.Zero(t, fake.RequestCount())

	fake.Enqueue(http.MethodGet, "/sapi/v1/capital/deposit/hisrec", http.StatusOK,
		`[{"id":"769800519366885376","amount":"0.001","coin":"BNB","network":"BNB","status":1,"address":"bnb136ns6lfw4zs5hg4n85vdthaad7hq5m4gtkgf23","addressTag":"101764890","txId":"98A3EA560C6B3336D348B6C83F0F95ECE4F1F5919E94BD006E5BF3BF264FACFC","insertTime":1661493146000,"transferType":0,"confirmTimes":"1/1"}]`)

	start := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	records, err := c.DepositHistory(context.Background(), DepositHistoryQuery{
		Coin:      "BNB",
		Status:    "1",
		StartTime: start,
		EndTime:   end,
		Limit:     100,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "BNB", records[0].Coin)
	assert.Equal(t, int64(DepositSuccess), records[0].Status)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("0.001")))

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	q := reqs[0].Query
	assert.Equal(t, "BNB", q.Get("coin"))
	assert.Equal(t, "1", q.Get("status"))
	assert.Equal(t, "1659312000000", q.Get("startTime"))
	assert.Equal(t, "1659398400000", q.Get("endTime"))
	assert.Equal(t, "100", q.Get("limit"))
}

func TestWithdrawalHistory(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.WithdrawalHistory(context.Background(), WithdrawalHistoryQuery{Status: "42"})
	assert.ErrorIs(t, err, errInvalidStatus)
	assert.Zero(t, fake.RequestCount())

	fake.Enqueue(http.MethodGet, "/sapi/v1/capital/withdraw/history", http.StatusOK,
		`[{"id":"b6ae22b3aa844210a7041aee7589627c","amount":"8.91000000","transactionFee":"0.004","coin":"USDT","status":6,"address":"0x94df8b352de7f46f64b01d3666bf6e936e44ce60","txId":"0xb5ef8c13b968a406cc62a93a8bd80f9e9a906ef1b3fcf20a2e48573c17659268","applyTime":"2019-10-12 11:12:02","network":"ETH","transferType":0}]`)

	records, err := c.WithdrawalHistory(context.Background(), WithdrawalHistoryQuery{Coin: "USDT"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(Completed), records[0].Status)
	assert.True(t, records[0].TransactionFee.Equal(decimal.RequireFromString("0.004")))
}

func TestDepositAddress(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.DepositAddress(context.Background(), "", "")
	assert.ErrorIs(t, err, errCoinUnset)
	assert.Zero(t, fake.RequestCount())

	addr, err := c.DepositAddress(context.Background(), "BTC", "BTC")
	require.NoError(t, err)
	assert.Equal(t, "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", addr.Address)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "BTC", reqs[0].Query.Get("coin"))
	assert.Equal(t, "BTC", reqs[0].Query.Get("network"))
}

func TestTradeFees(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	fees, err := c.TradeFees(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "BTCUSDT", fees[0].Symbol)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/sapi/v1/asset/tradeFee", reqs[0].Path)
	assert.Equal(t, "BTCUSDT", reqs[0].Query.Get("symbol"))
}

func TestTradeFeesUSVariant(t *testing.T) {
	t.Parallel()
	fake := newTestClientFake(t)

	c, err := New(Options{
		Key:       testAPIKey,
		Secret:    testAPISecret,
		BaseURL:   fake.URL(),
		USVariant: true,
	})
	require.NoError(t, err)

	fees, err := c.TradeFees(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "BTCUSD", fees[0].Symbol)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/sapi/v1/asset/query/trading-fee", reqs[0].Path,
		"US-entity clients must be routed to the dedicated trade fee path")
}

func TestUniversalTransfer(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	one := decimal.NewFromInt(1)
	for _, tc := range []struct {
		name     string
		transfer UniversalTransfer
		err      error
	}{
		{"type unset", UniversalTransfer{Asset: "USDT", Amount: one}, errTransferTypeUnset},
		{"asset unset", UniversalTransfer{Type: TransferMainUMFuture, Amount: one}, errAssetUnset},
		{"amount zero", UniversalTransfer{Type: TransferMainUMFuture, Asset: "USDT"}, errAmountInvalid},
		{"fromSymbol missing", UniversalTransfer{Type: TransferIsolatedMarginMargin, Asset: "USDT", Amount: one}, errFromSymbolRequired},
		{"toSymbol missing", UniversalTransfer{Type: TransferMarginIsolatedMargin, Asset: "USDT", Amount: one}, errToSymbolRequired},
		{"both symbols missing", UniversalTransfer{Type: TransferIsolatedMarginIsolatedMargin, Asset: "USDT", Amount: one}, errFromSymbolRequired},
	} {
		_, err := c.UniversalTransfer(context.Background(), tc.transfer)
		assert.ErrorIsf(t, err, tc.err, "case %q", tc.name)
	}
	assert.Zero(t, fake.RequestCount(), "validation failures must not reach the network")

	resp, err := c.UniversalTransfer(context.Background(), UniversalTransfer{
		Type:   TransferFundingMain,
		Asset:  "USDT",
		Amount: one,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13526853623), resp.TranID)
}

func TestUniversalTransferHistory(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.UniversalTransferHistory(context.Background(), UniversalTransferHistoryQuery{})
	assert.ErrorIs(t, err, errTransferTypeUnset)
	assert.Zero(t, fake.RequestCount())

	history, err := c.UniversalTransferHistory(context.Background(), UniversalTransferHistoryQuery{
		Type: TransferMainUMFuture,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), history.Total)
	require.Len(t, history.Rows, 1)
	assert.Equal(t, TransferMainUMFuture, history.Rows[0].Type)
}

func TestDustTransfer(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.DustTransfer(context.Background(), nil)
	assert.ErrorIs(t, err, errNoAssetsSupplied)
	assert.Zero(t, fake.RequestCount())

	result, err := c.DustTransfer(context.Background(), []string{"ETH", "ADA"})
	require.NoError(t, err)
	require.Len(t, result.TransferResult, 1)
	assert.Equal(t, "ETH", result.TransferResult[0].FromAsset)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"ETH", "ADA"}, reqs[0].Query["asset"],
		"every asset should travel as a repeated parameter")
}

func TestFundingWallet(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	assets, err := c.FundingWallet(context.Background(), "USDT", true)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "USDT", assets[0].Asset)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "USDT", reqs[0].Query.Get("asset"))
	assert.Equal(t, "true", reqs[0].Query.Get("needBtcValuation"))
}

func TestAPIKeyPermissions(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t)

	perms, err := c.APIKeyPermissions(context.Background())
	require.NoError(t, err)
	assert.True(t, perms.EnableReading)
	assert.False(t, perms.EnableWithdrawals)
	assert.True(t, perms.PermitsUniversalTransfer)
}

func TestSubAccountUniversalTransfer(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	one := decimal.NewFromInt(1)
	_, err := c.SubAccountUniversalTransfer(context.Background(), SubAccountTransfer{})
	assert.ErrorIs(t, err, errEmailUnset)
	_, err = c.SubAccountUniversalTransfer(context.Background(), SubAccountTransfer{
		FromEmail: "a@example.com", ToEmail: "b@example.com",
	})
	assert.ErrorIs(t, err, errAccountTypeUnset)
	_, err = c.SubAccountUniversalTransfer(context.Background(), SubAccountTransfer{
		FromEmail: "a@example.com", ToEmail: "b@example.com",
		FromAccountType: "SPOT", ToAccountType: "SPOT",
	})
	assert.ErrorIs(t, err, errAssetUnset)
	assert.Zero(t, fake.RequestCount())

	resp, err := c.SubAccountUniversalTransfer(context.Background(), SubAccountTransfer{
		FromEmail: "a@example.com", ToEmail: "b@example.com",
		FromAccountType: "SPOT", ToAccountType: "SPOT",
		Asset: "USDT", Amount: one,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11945860693), resp.TranID)
}

func TestSubmitDepositQuestionnaire(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	_, err := c.SubmitDepositQuestionnaire(context.Background(), DepositQuestionnaireRequest{})
	assert.ErrorIs(t, err, errTranIDUnset)

	_, err = c.SubmitDepositQuestionnaire(context.Background(), DepositQuestionnaireRequest{
		TranID:        "12345",
		Questionnaire: DepositQuestionnaire{DepositOriginator: 1},
	})
	assert.ErrorIs(t, err, errQuestionnaireFields)
	assert.Zero(t, fake.RequestCount())

	resp, err := c.SubmitDepositQuestionnaire(context.Background(), DepositQuestionnaireRequest{
		TranID:        "12345",
		Questionnaire: DepositQuestionnaire{DepositOriginator: 1, ReceiveFrom: 1},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	q := reqs[0].Query
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "12345", q.Get("tranId"))
	assert.Equal(t, "15000", q.Get("recvWindow"), "the endpoint mandates a 15s recvWindow")

	var questionnaire DepositQuestionnaire
	require.NoError(t, json.Unmarshal([]byte(q.Get("questionnaire")), &questionnaire),
		"the questionnaire must travel as a JSON string parameter")
	assert.Equal(t, 1, questionnaire.DepositOriginator)
}

func TestFlexibleLoanAdjustLTV(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)

	amount := decimal.RequireFromString("5.235")
	_, err := c.FlexibleLoanAdjustLTV(context.Background(), FlexibleLoanAdjustment{})
	assert.ErrorIs(t, err, errLoanCoinUnset)
	_, err = c.FlexibleLoanAdjustLTV(context.Background(), FlexibleLoanAdjustment{
		LoanCoin: "BUSD", CollateralCoin: "BNB",
	})
	assert.ErrorIs(t, err, errAmountInvalid)
	_, err = c.FlexibleLoanAdjustLTV(context.Background(), FlexibleLoanAdjustment{
		LoanCoin: "BUSD", CollateralCoin: "BNB", AdjustmentAmount: amount, Direction: "SIDEWAYS",
	})
	assert.ErrorIs(t, err, errDirectionInvalid)
	assert.Zero(t, fake.RequestCount())

	result, err := c.FlexibleLoanAdjustLTV(context.Background(), FlexibleLoanAdjustment{
		LoanCoin: "BUSD", CollateralCoin: "BNB", AdjustmentAmount: amount, Direction: AdjustmentAdditional,
	})
	require.NoError(t, err)
	assert.True(t, result.CurrentLTV.Equal(decimal.RequireFromString("0.52")))
}

func TestOngoingLoans(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t)

	flexible, err := c.OngoingFlexibleLoans(context.Background())
	require.NoError(t, err)
	require.Len(t, flexible.Rows, 1)
	assert.Equal(t, "BUSD", flexible.Rows[0].LoanCoin)

	vip, err := c.OngoingVIPLoans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, vip.Rows)
}

func TestAPIErrorSurfacesVerbatim(t *testing.T) {
	t.Parallel()
	c, fake := newTestClient(t)
	fake.Enqueue(http.MethodGet, "/sapi/v1/account/status", http.StatusBadRequest,
		`{"code":-1102,"msg":"Mandatory parameter was not sent."}`)

	_, err := c.AccountStatus(context.Background())
	var apiErr *request.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int64(-1102), apiErr.Code)
	assert.Equal(t, "Mandatory parameter was not sent.", apiErr.Message)
}
