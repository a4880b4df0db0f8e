package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ashquarry/binancewallet/withdraw"
)

// SAPI endpoint paths
const (
	systemStatusPath              = "/sapi/v1/system/status"
	allCoinsInfoPath              = "/sapi/v1/capital/config/getall"
	accountSnapshotPath           = "/sapi/v1/accountSnapshot"
	disableFastWithdrawSwitchPath = "/sapi/v1/account/disableFastWithdrawSwitch"
	enableFastWithdrawSwitchPath  = "/sapi/v1/account/enableFastWithdrawSwitch"
	withdrawApplyPath             = "/sapi/v1/capital/withdraw/apply"
	depositHistoryPath            = "/sapi/v1/capital/deposit/hisrec"
	withdrawHistoryPath           = "/sapi/v1/capital/withdraw/history"
	depositAddressPath            = "/sapi/v1/capital/deposit/address"
	accountStatusPath             = "/sapi/v1/account/status"
	apiTradingStatusPath          = "/sapi/v1/account/apiTradingStatus"
	dustLogPath                   = "/sapi/v1/asset/dribblet"
	dustBTCPath                   = "/sapi/v1/asset/dust-btc"
	dustTransferPath              = "/sapi/v1/asset/dust"
	assetDividendPath             = "/sapi/v1/asset/assetDividend"
	assetDetailPath               = "/sapi/v1/asset/assetDetail"
	tradeFeePath                  = "/sapi/v1/asset/tradeFee"
	tradeFeeUSPath                = "/sapi/v1/asset/query/trading-fee"
	universalTransferPath         = "/sapi/v1/asset/transfer"
	fundingWalletPath             = "/sapi/v1/asset/get-funding-asset"
	apiRestrictionsPath           = "/sapi/v1/account/apiRestrictions"
	subAccountTransferPath        = "/sapi/v1/sub-account/universalTransfer"
	subAccountDepositHistoryPath  = "/sapi/v1/broker/subAccount/depositHist"
	travelRuleDepositHistoryPath  = "/sapi/v1/localentity/deposit/history"
	depositQuestionnairePath      = "/sapi/v1/localentity/deposit/provide-info"
	flexibleLoanOngoingPath       = "/sapi/v2/loan/flexible/ongoing/orders"
	vipLoanOngoingPath            = "/sapi/v1/loan/vip/ongoing/orders"
	flexibleLoanAdjustLTVPath     = "/sapi/v2/loan/flexible/adjust/ltv"
)

var (
	errInvalidStatus       = errors.New("invalid status code")
	errSnapshotTypeUnset   = errors.New("account snapshot type unset")
	errTransferTypeUnset   = errors.New("transfer type unset")
	errAssetUnset          = errors.New("asset unset")
	errAmountInvalid       = errors.New("amount must be greater than zero")
	errCoinUnset           = errors.New("coin unset")
	errNoAssetsSupplied    = errors.New("no assets supplied")
	errFromSymbolRequired  = errors.New("fromSymbol required for this transfer type")
	errToSymbolRequired    = errors.New("toSymbol required for this transfer type")
	errEmailUnset          = errors.New("from and to emails must be set")
	errAccountTypeUnset    = errors.New("from and to account types must be set")
	errTranIDUnset         = errors.New("tranId unset")
	errQuestionnaireFields = errors.New("questionnaire must include depositOriginator and receiveFrom")
	errLoanCoinUnset       = errors.New("loan and collateral coins must be set")
	errDirectionInvalid    = errors.New("invalid adjustment direction")
	errWithdrawIDEmpty     = errors.New("withdrawal accepted but no id returned")
)

// SystemStatus fetches the exchange's maintenance status. Unsigned.
func (c *Client) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var resp SystemStatus
	return &resp, c.SendHTTPRequest(ctx, systemStatusPath, &resp)
}

// AllCoinsInfo returns every coin available to the account with its
// balances and per-network deposit/withdrawal capability
func (c *Client) AllCoinsInfo(ctx context.Context) ([]CoinInfo, error) {
	var resp []CoinInfo
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, allCoinsInfoPath, nil, &resp)
}

// DailyAccountSnapshot returns the account's daily snapshots. The remote
// service supports the last month only, in ranges of at most 30 days.
func (c *Client) DailyAccountSnapshot(ctx context.Context, q AccountSnapshotQuery) (*AccountSnapshot, error) {
	params, err := q.values()
	if err != nil {
		return nil, err
	}
	var resp AccountSnapshot
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, accountSnapshotPath, params, &resp)
}

// DisableFastWithdrawSwitch turns off intra-exchange fast withdrawals
func (c *Client) DisableFastWithdrawSwitch(ctx context.Context) error {
	return c.SendAuthHTTPRequest(ctx, http.MethodPost, disableFastWithdrawSwitchPath, nil, nil)
}

// EnableFastWithdrawSwitch turns on intra-exchange fast withdrawals
func (c *Client) EnableFastWithdrawSwitch(ctx context.Context) error {
	return c.SendAuthHTTPRequest(ctx, http.MethodPost, enableFastWithdrawSwitchPath, nil, nil)
}

// Withdraw submits a withdrawal after validating the request locally.
// Validation failures return before any network call. The returned string
// is the exchange-assigned withdrawal id.
func (c *Client) Withdraw(ctx context.Context, r *withdraw.Request, opt ...withdraw.Checker) (string, error) {
	if err := r.Validate(opt...); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("coin", r.Coin)
	params.Set("address", r.Address)
	params.Set("amount", r.Amount.String())
	if r.Network != "" {
		params.Set("network", r.Network)
	}
	if r.AddressTag != "" {
		params.Set("addressTag", r.AddressTag)
	}
	if r.WithdrawOrderID != "" {
		params.Set("withdrawOrderId", r.WithdrawOrderID)
	}
	if r.TransactionFeeFlag {
		params.Set("transactionFeeFlag", "true")
	}
	if r.Name != "" {
		params.Set("name", r.Name)
	}
	if r.WalletType != nil {
		params.Set("walletType", strconv.Itoa(*r.WalletType))
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.SendAuthHTTPRequest(ctx, http.MethodPost, withdrawApplyPath, params, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errWithdrawIDEmpty
	}
	return resp.ID, nil
}

// DepositHistory returns deposits matching the query. The remote service
// caps a single query at 90 days; DepositHistoryWindowed stitches longer
// lookbacks.
func (c *Client) DepositHistory(ctx context.Context, q DepositHistoryQuery) ([]DepositRecord, error) {
	params, err := q.values()
	if err != nil {
		return nil, err
	}
	var resp []DepositRecord
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, depositHistoryPath, params, &resp)
}

// WithdrawalHistory returns withdrawals matching the query. The remote
// service caps a single query at 90 days; WithdrawalHistoryWindowed
// stitches longer lookbacks.
func (c *Client) WithdrawalHistory(ctx context.Context, q WithdrawalHistoryQuery) ([]WithdrawalRecord, error) {
	params, err := q.values()
	if err != nil {
		return nil, err
	}
	var resp []WithdrawalRecord
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, withdrawHistoryPath, params, &resp)
}

// DepositAddress retrieves the deposit address for a coin, optionally on a
// specific network
func (c *Client) DepositAddress(ctx context.Context, coin, network string) (*DepositAddress, error) {
	if coin == "" {
		return nil, errCoinUnset
	}
	params := url.Values{}
	params.Set("coin", coin)
	if network != "" {
		params.Set("network", network)
	}
	var resp DepositAddress
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, depositAddressPath, params, &resp)
}

// AccountStatus returns the account's standing
func (c *Client) AccountStatus(ctx context.Context) (*AccountStatus, error) {
	var resp AccountStatus
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, accountStatusPath, nil, &resp)
}

// APITradingStatus reports whether API trading is banned for the account
func (c *Client) APITradingStatus(ctx context.Context) (*APITradingStatus, error) {
	var resp APITradingStatus
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, apiTradingStatusPath, nil, &resp)
}

// DustLog returns the account's dust conversion history within the
// optional time bounds
func (c *Client) DustLog(ctx context.Context, startTime, endTime time.Time) (*DustLog, error) {
	params := url.Values{}
	if !startTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(startTime.UTC().UnixMilli(), 10))
	}
	if !endTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(endTime.UTC().UnixMilli(), 10))
	}
	var resp DustLog
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, dustLogPath, params, &resp)
}

// ConvertibleAssets lists assets that can be converted into BNB
func (c *Client) ConvertibleAssets(ctx context.Context) (*ConvertibleAssets, error) {
	var resp ConvertibleAssets
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodPost, dustBTCPath, nil, &resp)
}

// DustTransfer converts the supplied dust assets into BNB
func (c *Client) DustTransfer(ctx context.Context, assets []string) (*DustTransferResult, error) {
	if len(assets) == 0 {
		return nil, errNoAssetsSupplied
	}
	params := url.Values{}
	for _, a := range assets {
		params.Add("asset", a)
	}
	var resp DustTransferResult
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodPost, dustTransferPath, params, &resp)
}

// AssetDividends returns the account's dividend payout records
func (c *Client) AssetDividends(ctx context.Context, q AssetDividendQuery) (*AssetDividends, error) {
	var resp AssetDividends
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, assetDividendPath, q.values(), &resp)
}

// AssetDetail returns deposit/withdrawal details, optionally for a single
// asset
func (c *Client) AssetDetail(ctx context.Context, asset string) (AssetDetails, error) {
	params := url.Values{}
	if asset != "" {
		params.Set("asset", asset)
	}
	var resp AssetDetails
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, assetDetailPath, params, &resp)
}

// TradeFees returns maker/taker commissions, optionally for one symbol.
// Clients configured for the US entity are routed to its dedicated path.
func (c *Client) TradeFees(ctx context.Context, symbol string) ([]TradeFee, error) {
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	path := tradeFeePath
	if c.usVariant {
		path = tradeFeeUSPath
	}
	var resp []TradeFee
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, path, params, &resp)
}

// UniversalTransfer moves an asset between the account's wallets.
// fromSymbol and toSymbol requirements for isolated-margin kinds are
// validated before any network call.
func (c *Client) UniversalTransfer(ctx context.Context, t UniversalTransfer) (*TransactionID, error) {
	if t.Type == "" {
		return nil, errTransferTypeUnset
	}
	if t.Asset == "" {
		return nil, errAssetUnset
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errAmountInvalid
	}
	if t.Type.requiresFromSymbol() && t.FromSymbol == "" {
		return nil, errFromSymbolRequired
	}
	if t.Type.requiresToSymbol() && t.ToSymbol == "" {
		return nil, errToSymbolRequired
	}

	params := url.Values{}
	params.Set("type", string(t.Type))
	params.Set("asset", t.Asset)
	params.Set("amount", t.Amount.String())
	if t.FromSymbol != "" {
		params.Set("fromSymbol", t.FromSymbol)
	}
	if t.ToSymbol != "" {
		params.Set("toSymbol", t.ToSymbol)
	}

	var resp TransactionID
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodPost, universalTransferPath, params, &resp)
}

// UniversalTransferHistory returns past universal transfers of one kind.
// The remote service supports the last 6 months only; omitting both times
// returns the last 7 days.
func (c *Client) UniversalTransferHistory(ctx context.Context, q UniversalTransferHistoryQuery) (*UniversalTransferHistory, error) {
	params, err := q.values()
	if err != nil {
		return nil, err
	}
	var resp UniversalTransferHistory
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, universalTransferPath, params, &resp)
}

// FundingWallet returns funding-wallet balances, optionally for one asset
func (c *Client) FundingWallet(ctx context.Context, asset string, needBTCValuation bool) ([]FundingAsset, error) {
	params := url.Values{}
	if asset != "" {
		params.Set("asset", asset)
	}
	if needBTCValuation {
		params.Set("needBtcValuation", "true")
	}
	var resp []FundingAsset
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodPost, fundingWalletPath, params, &resp)
}

// APIKeyPermissions returns the restriction set of the current API key
func (c *Client) APIKeyPermissions(ctx context.Context) (*APIKeyPermissions, error) {
	var resp APIKeyPermissions
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, apiRestrictionsPath, nil, &resp)
}

// SubAccountUniversalTransfer moves an asset between master and sub
// accounts
func (c *Client) SubAccountUniversalTransfer(ctx context.Context, t SubAccountTransfer) (*SubAccountTransferResponse, error) {
	if t.FromEmail == "" || t.ToEmail == "" {
		return nil, errEmailUnset
	}
	if t.FromAccountType == "" || t.ToAccountType == "" {
		return nil, errAccountTypeUnset
	}
	if t.Asset == "" {
		return nil, errAssetUnset
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errAmountInvalid
	}

	params := url.Values{}
	params.Set("fromEmail", t.FromEmail)
	params.Set("toEmail", t.ToEmail)
	params.Set("fromAccountType", t.FromAccountType)
	params.Set("toAccountType", t.ToAccountType)
	params.Set("asset", t.Asset)
	params.Set("amount", t.Amount.String())

	var resp SubAccountTransferResponse
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodPost, subAccountTransferPath, params, &resp)
}

// SubAccountDepositHistory returns sub-account deposits. The remote
// service defaults to the last 7 days.
func (c *Client) SubAccountDepositHistory(ctx context.Context, q SubAccountDepositHistoryQuery) ([]SubAccountDepositRecord, error) {
	params, err := q.values()
	if err != nil {
		return nil, err
	}
	var resp []SubAccountDepositRecord
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, subAccountDepositHistoryPath, params, &resp)
}

// TravelRuleDepositHistory returns deposits subject to travel-rule
// compliance
func (c *Client) TravelRuleDepositHistory(ctx context.Context, q TravelRuleDepositHistoryQuery) ([]TravelRuleDepositRecord, error) {
	var resp []TravelRuleDepositRecord
	return resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, travelRuleDepositHistoryPath, q.values(), &resp)
}

// SubmitDepositQuestionnaire submits a travel-rule questionnaire for a
// pending deposit. Required questionnaire fields are validated before any
// network call; the questionnaire object travels as a JSON string
// parameter, and the endpoint mandates a 15s recvWindow.
func (c *Client) SubmitDepositQuestionnaire(ctx context.Context, r DepositQuestionnaireRequest) (*DepositQuestionnaireResponse, error) {
	if r.TranID == "" {
		return nil, errTranIDUnset
	}
	if r.Questionnaire.DepositOriginator == 0 || r.Questionnaire.ReceiveFrom == 0 {
		return nil, errQuestionnaireFields
	}

	questionnaire, err := json.Marshal(r.Questionnaire)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize questionnaire: %w", err)
	}

	params := url.Values{}
	params.Set("tranId", r.TranID)
	params.Set("questionnaire", string(questionnaire))
	params.Set("recvWindow", "15000")

	var resp DepositQuestionnaireResponse
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodPut, depositQuestionnairePath, params, &resp)
}

// OngoingFlexibleLoans returns the account's ongoing flexible loan orders
func (c *Client) OngoingFlexibleLoans(ctx context.Context) (*FlexibleLoanOrders, error) {
	var resp FlexibleLoanOrders
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, flexibleLoanOngoingPath, nil, &resp)
}

// OngoingVIPLoans returns the account's ongoing VIP loan orders
func (c *Client) OngoingVIPLoans(ctx context.Context) (*VIPLoanOrders, error) {
	var resp VIPLoanOrders
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodGet, vipLoanOngoingPath, nil, &resp)
}

// FlexibleLoanAdjustLTV adjusts the collateral backing a flexible loan
func (c *Client) FlexibleLoanAdjustLTV(ctx context.Context, a FlexibleLoanAdjustment) (*FlexibleLoanAdjustResult, error) {
	if a.LoanCoin == "" || a.CollateralCoin == "" {
		return nil, errLoanCoinUnset
	}
	if a.AdjustmentAmount.LessThanOrEqual(decimal.Zero) {
		return nil, errAmountInvalid
	}
	if a.Direction != AdjustmentAdditional && a.Direction != AdjustmentReduced {
		return nil, errDirectionInvalid
	}

	params := url.Values{}
	params.Set("loanCoin", a.LoanCoin)
	params.Set("collateralCoin", a.CollateralCoin)
	params.Set("adjustmentAmount", a.AdjustmentAmount.String())
	params.Set("direction", string(a.Direction))

	var resp FlexibleLoanAdjustResult
	return &resp, c.SendAuthHTTPRequest(ctx, http.MethodPost, flexibleLoanAdjustLTVPath, params, &resp)
}
