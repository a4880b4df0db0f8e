package wallet

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ashquarry/binancewallet/types"
)

// Withdrawal status codes
const (
	EmailSent = iota
	Cancelled
	AwaitingApproval
	Rejected
	Processing
	Failure
	Completed
)

// Deposit status codes
const (
	DepositPending         = 0
	DepositSuccess         = 1
	DepositCredited        = 6
	DepositWrong           = 7
	DepositWaitUserConfirm = 8
)

// SystemStatus is the exchange's maintenance flag. Status 0 is normal,
// 1 is system maintenance.
type SystemStatus struct {
	Status  int    `json:"status"`
	Message string `json:"msg"`
}

// CoinNetwork describes one transfer network of a coin
type CoinNetwork struct {
	Network                 string          `json:"network"`
	Coin                    string          `json:"coin"`
	Name                    string          `json:"name"`
	DepositEnable           bool            `json:"depositEnable"`
	DepositDescription      string          `json:"depositDesc"`
	WithdrawEnable          bool            `json:"withdrawEnable"`
	WithdrawDescription     string          `json:"withdrawDesc"`
	WithdrawFee             decimal.Decimal `json:"withdrawFee"`
	WithdrawMin             decimal.Decimal `json:"withdrawMin"`
	WithdrawMax             decimal.Decimal `json:"withdrawMax"`
	WithdrawIntegerMultiple decimal.Decimal `json:"withdrawIntegerMultiple"`
	MinConfirm              int64           `json:"minConfirm"`
	UnlockConfirm           int64           `json:"unLockConfirm"`
	AddressRegex            string          `json:"addressRegex"`
	MemoRegex               string          `json:"memoRegex"`
	SpecialTips             string          `json:"specialTips"`
	IsDefault               bool            `json:"isDefault"`
	EstimatedArrivalTime    int64           `json:"estimatedArrivalTime"`
	Busy                    bool            `json:"busy"`
}

// CoinInfo describes a coin available for deposit and withdrawal together
// with the account's balances in it
type CoinInfo struct {
	Coin              string          `json:"coin"`
	Name              string          `json:"name"`
	DepositAllEnable  bool            `json:"depositAllEnable"`
	WithdrawAllEnable bool            `json:"withdrawAllEnable"`
	Free              decimal.Decimal `json:"free"`
	Freeze            decimal.Decimal `json:"freeze"`
	Locked            decimal.Decimal `json:"locked"`
	Storage           decimal.Decimal `json:"storage"`
	Withdrawing       decimal.Decimal `json:"withdrawing"`
	Ipoable           decimal.Decimal `json:"ipoable"`
	Ipoing            decimal.Decimal `json:"ipoing"`
	IsLegalMoney      bool            `json:"isLegalMoney"`
	Trading           bool            `json:"trading"`
	NetworkList       []CoinNetwork   `json:"networkList"`
}

// AccountSnapshotQuery bounds a daily account snapshot request. The remote
// service supports querying within the last month only, in ranges of at
// most 30 days.
type AccountSnapshotQuery struct {
	Type      string // SPOT, MARGIN or FUTURES
	StartTime time.Time
	EndTime   time.Time
	Limit     int // 7 by default, max 30
}

func (q *AccountSnapshotQuery) values() (url.Values, error) {
	if q.Type == "" {
		return nil, errSnapshotTypeUnset
	}
	params := url.Values{}
	params.Set("type", q.Type)
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params, nil
}

// SnapshotBalance is one asset balance inside a snapshot
type SnapshotBalance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// AccountSnapshotRecord is one day's snapshot
type AccountSnapshotRecord struct {
	Type       string     `json:"type"`
	UpdateTime types.Time `json:"updateTime"`
	Data       struct {
		TotalAssetOfBTC decimal.Decimal   `json:"totalAssetOfBtc"`
		Balances        []SnapshotBalance `json:"balances"`
	} `json:"data"`
}

// AccountSnapshot is the daily account snapshot response
type AccountSnapshot struct {
	Code        int                     `json:"code"`
	Message     string                  `json:"msg"`
	SnapshotVos []AccountSnapshotRecord `json:"snapshotVos"`
}

// DepositRecord is a single deposit history entry
type DepositRecord struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Coin          string          `json:"coin"`
	Network       string          `json:"network"`
	Status        int64           `json:"status"`
	Address       string          `json:"address"`
	AddressTag    string          `json:"addressTag"`
	TxID          string          `json:"txId"`
	InsertTime    types.Time      `json:"insertTime"`
	TransferType  int64           `json:"transferType"`
	ConfirmTimes  string          `json:"confirmTimes"`
	UnlockConfirm int64           `json:"unlockConfirm"`
	WalletType    int64           `json:"walletType"`
}

// WithdrawalRecord is a single withdrawal history entry
type WithdrawalRecord struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionFee  decimal.Decimal `json:"transactionFee"`
	Coin            string          `json:"coin"`
	Status          int64           `json:"status"`
	Address         string          `json:"address"`
	TxID            string          `json:"txId"`
	ApplyTime       string          `json:"applyTime"`
	Network         string          `json:"network"`
	TransferType    int64           `json:"transferType"`
	WithdrawOrderID string          `json:"withdrawOrderId"`
	Info            string          `json:"info"`
	ConfirmNo       int64           `json:"confirmNo"`
	WalletType      int64           `json:"walletType"`
	TxKey           string          `json:"txKey"`
	CompleteTime    string          `json:"completeTime"`
}

// DepositHistoryQuery bounds a deposit history request. The remote service
// caps a single query at 90 days; see the windowed variants for longer
// lookbacks. Status is a string to keep the zero value from reading as a
// real status code.
type DepositHistoryQuery struct {
	Coin      string
	Status    string
	StartTime time.Time
	EndTime   time.Time
	Offset    int
	Limit     int
	TxID      string
}

func (q *DepositHistoryQuery) values() (url.Values, error) {
	params := url.Values{}
	if q.Coin != "" {
		params.Set("coin", q.Coin)
	}
	if q.Status != "" {
		i, err := strconv.Atoi(q.Status)
		if err != nil {
			return nil, errInvalidStatus
		}
		switch i {
		case DepositPending, DepositSuccess, DepositCredited, DepositWrong, DepositWaitUserConfirm:
		default:
			return nil, errInvalidStatus
		}
		params.Set("status", q.Status)
	}
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Offset != 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.TxID != "" {
		params.Set("txId", q.TxID)
	}
	return params, nil
}

// WithdrawalHistoryQuery bounds a withdrawal history request. The remote
// service caps a single query at 90 days.
type WithdrawalHistoryQuery struct {
	Coin            string
	WithdrawOrderID string
	Status          string
	StartTime       time.Time
	EndTime         time.Time
	Offset          int
	Limit           int
}

func (q *WithdrawalHistoryQuery) values() (url.Values, error) {
	params := url.Values{}
	if q.Coin != "" {
		params.Set("coin", q.Coin)
	}
	if q.WithdrawOrderID != "" {
		params.Set("withdrawOrderId", q.WithdrawOrderID)
	}
	if q.Status != "" {
		i, err := strconv.Atoi(q.Status)
		if err != nil {
			return nil, errInvalidStatus
		}
		switch i {
		case EmailSent, Cancelled, AwaitingApproval, Rejected, Processing, Failure, Completed:
		default:
			return nil, errInvalidStatus
		}
		params.Set("status", q.Status)
	}
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Offset != 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params, nil
}

// DepositAddress is the wallet address for a coin on one network
type DepositAddress struct {
	Address string `json:"address"`
	Coin    string `json:"coin"`
	Tag     string `json:"tag"`
	URL     string `json:"url"`
}

// AccountStatus is the account's standing, e.g. "Normal"
type AccountStatus struct {
	Data string `json:"data"`
}

// APITradingStatus indicates whether API trading is banned for the account
type APITradingStatus struct {
	Data struct {
		IsLocked           bool             `json:"isLocked"`
		PlannedRecoverTime types.Time       `json:"plannedRecoverTime"`
		TriggerCondition   map[string]int64 `json:"triggerCondition"`
		UpdateTime         types.Time       `json:"updateTime"`
	} `json:"data"`
}

// DustDetail is one conversion inside a dust dribblet
type DustDetail struct {
	TransID             int64           `json:"transId"`
	ServiceChargeAmount decimal.Decimal `json:"serviceChargeAmount"`
	Amount              decimal.Decimal `json:"amount"`
	OperateTime         types.Time      `json:"operateTime"`
	TransferedAmount    decimal.Decimal `json:"transferedAmount"`
	FromAsset           string          `json:"fromAsset"`
}

// DustDribblet is one dust-to-BNB conversion event
type DustDribblet struct {
	OperateTime              types.Time      `json:"operateTime"`
	TotalTransferedAmount    decimal.Decimal `json:"totalTransferedAmount"`
	TotalServiceChargeAmount decimal.Decimal `json:"totalServiceChargeAmount"`
	TransID                  int64           `json:"transId"`
	Details                  []DustDetail    `json:"userAssetDribbletDetails"`
}

// DustLog is the account's dust conversion history
type DustLog struct {
	Total     int64          `json:"total"`
	Dribblets []DustDribblet `json:"userAssetDribblets"`
}

// ConvertibleAssetDetail is one asset that can be converted to BNB
type ConvertibleAssetDetail struct {
	Asset            string          `json:"asset"`
	AssetFullName    string          `json:"assetFullName"`
	AmountFree       decimal.Decimal `json:"amountFree"`
	ToBTC            decimal.Decimal `json:"toBTC"`
	ToBNB            decimal.Decimal `json:"toBNB"`
	ToBNBOffExchange decimal.Decimal `json:"toBNBOffExchange"`
	Exchange         decimal.Decimal `json:"exchange"`
}

// ConvertibleAssets lists the account's assets convertible to BNB
type ConvertibleAssets struct {
	Details            []ConvertibleAssetDetail `json:"details"`
	TotalTransferBTC   decimal.Decimal          `json:"totalTransferBtc"`
	TotalTransferBNB   decimal.Decimal          `json:"totalTransferBNB"`
	DribbletPercentage decimal.Decimal          `json:"dribbletPercentage"`
}

// DustTransferRecord is one converted asset in a dust transfer
type DustTransferRecord struct {
	Amount              decimal.Decimal `json:"amount"`
	FromAsset           string          `json:"fromAsset"`
	OperateTime         types.Time      `json:"operateTime"`
	ServiceChargeAmount decimal.Decimal `json:"serviceChargeAmount"`
	TranID              int64           `json:"tranId"`
	TransferedAmount    decimal.Decimal `json:"transferedAmount"`
}

// DustTransferResult is the outcome of converting dust to BNB
type DustTransferResult struct {
	TotalServiceCharge decimal.Decimal      `json:"totalServiceCharge"`
	TotalTransfered    decimal.Decimal      `json:"totalTransfered"`
	TransferResult     []DustTransferRecord `json:"transferResult"`
}

// AssetDividendQuery bounds an asset dividend record request
type AssetDividendQuery struct {
	Asset     string
	StartTime time.Time
	EndTime   time.Time
	Limit     int // 20 by default, max 500
}

func (q *AssetDividendQuery) values() url.Values {
	params := url.Values{}
	if q.Asset != "" {
		params.Set("asset", q.Asset)
	}
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

// AssetDividendRecord is one dividend payout
type AssetDividendRecord struct {
	ID      int64           `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	Asset   string          `json:"asset"`
	DivTime types.Time      `json:"divTime"`
	EnInfo  string          `json:"enInfo"`
	TranID  int64           `json:"tranId"`
}

// AssetDividends is a page of dividend payouts
type AssetDividends struct {
	Rows  []AssetDividendRecord `json:"rows"`
	Total int64                 `json:"total"`
}

// AssetDetailInfo is the deposit/withdrawal detail of one asset
type AssetDetailInfo struct {
	MinWithdrawAmount decimal.Decimal `json:"minWithdrawAmount"`
	DepositStatus     bool            `json:"depositStatus"`
	WithdrawFee       decimal.Decimal `json:"withdrawFee"`
	WithdrawStatus    bool            `json:"withdrawStatus"`
	DepositTip        string          `json:"depositTip"`
}

// AssetDetails maps asset name to its detail
type AssetDetails map[string]AssetDetailInfo

// TradeFee is the maker/taker commission for a symbol
type TradeFee struct {
	Symbol          string          `json:"symbol"`
	MakerCommission decimal.Decimal `json:"makerCommission"`
	TakerCommission decimal.Decimal `json:"takerCommission"`
}

// FundingAsset is one asset held in the funding wallet
type FundingAsset struct {
	Asset        string          `json:"asset"`
	Free         decimal.Decimal `json:"free"`
	Locked       decimal.Decimal `json:"locked"`
	Freeze       decimal.Decimal `json:"freeze"`
	Withdrawing  decimal.Decimal `json:"withdrawing"`
	BTCValuation decimal.Decimal `json:"btcValuation"`
}

// APIKeyPermissions is the restriction set of the current API key
type APIKeyPermissions struct {
	IPRestrict                     bool       `json:"ipRestrict"`
	CreateTime                     types.Time `json:"createTime"`
	EnableInternalTransfer         bool       `json:"enableInternalTransfer"`
	EnableFutures                  bool       `json:"enableFutures"`
	EnableVanillaOptions           bool       `json:"enableVanillaOptions"`
	EnableReading                  bool       `json:"enableReading"`
	EnableSpotAndMarginTrading     bool       `json:"enableSpotAndMarginTrading"`
	EnableWithdrawals              bool       `json:"enableWithdrawals"`
	EnableMargin                   bool       `json:"enableMargin"`
	PermitsUniversalTransfer       bool       `json:"permitsUniversalTransfer"`
	TradingAuthorityExpirationTime types.Time `json:"tradingAuthorityExpirationTime"`
}

// TransferType identifies the two account types of a universal transfer
type TransferType string

// Universal transfer kinds
const (
	TransferMainUMFuture                 TransferType = "MAIN_UMFUTURE"
	TransferMainCMFuture                 TransferType = "MAIN_CMFUTURE"
	TransferMainMargin                   TransferType = "MAIN_MARGIN"
	TransferUMFutureMain                 TransferType = "UMFUTURE_MAIN"
	TransferUMFutureMargin               TransferType = "UMFUTURE_MARGIN"
	TransferCMFutureMain                 TransferType = "CMFUTURE_MAIN"
	TransferCMFutureMargin               TransferType = "CMFUTURE_MARGIN"
	TransferMarginMain                   TransferType = "MARGIN_MAIN"
	TransferMarginUMFuture               TransferType = "MARGIN_UMFUTURE"
	TransferMarginCMFuture               TransferType = "MARGIN_CMFUTURE"
	TransferIsolatedMarginMargin         TransferType = "ISOLATEDMARGIN_MARGIN"
	TransferMarginIsolatedMargin         TransferType = "MARGIN_ISOLATEDMARGIN"
	TransferIsolatedMarginIsolatedMargin TransferType = "ISOLATEDMARGIN_ISOLATEDMARGIN"
	TransferMainFunding                  TransferType = "MAIN_FUNDING"
	TransferFundingMain                  TransferType = "FUNDING_MAIN"
	TransferFundingUMFuture              TransferType = "FUNDING_UMFUTURE"
	TransferUMFutureFunding              TransferType = "UMFUTURE_FUNDING"
	TransferMarginFunding                TransferType = "MARGIN_FUNDING"
	TransferFundingMargin                TransferType = "FUNDING_MARGIN"
	TransferFundingCMFuture              TransferType = "FUNDING_CMFUTURE"
	TransferCMFutureFunding              TransferType = "CMFUTURE_FUNDING"
)

// requiresFromSymbol reports whether the transfer kind moves out of an
// isolated margin account and therefore needs fromSymbol
func (t TransferType) requiresFromSymbol() bool {
	return t == TransferIsolatedMarginMargin || t == TransferIsolatedMarginIsolatedMargin
}

// requiresToSymbol reports whether the transfer kind moves into an isolated
// margin account and therefore needs toSymbol
func (t TransferType) requiresToSymbol() bool {
	return t == TransferMarginIsolatedMargin || t == TransferIsolatedMarginIsolatedMargin
}

// UniversalTransfer moves an asset between the account's wallets
type UniversalTransfer struct {
	Type       TransferType
	Asset      string
	Amount     decimal.Decimal
	FromSymbol string
	ToSymbol   string
}

// TransactionID is the generic transfer acknowledgement
type TransactionID struct {
	TranID int64 `json:"tranId"`
}

// UniversalTransferHistoryQuery bounds a transfer history request. The
// remote service supports querying within the last 6 months only; omitting
// both times returns the last 7 days.
type UniversalTransferHistoryQuery struct {
	Type       TransferType
	StartTime  time.Time
	EndTime    time.Time
	Current    int
	Size       int
	FromSymbol string
	ToSymbol   string
}

func (q *UniversalTransferHistoryQuery) values() (url.Values, error) {
	if q.Type == "" {
		return nil, errTransferTypeUnset
	}
	params := url.Values{}
	params.Set("type", string(q.Type))
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Current != 0 {
		params.Set("current", strconv.Itoa(q.Current))
	}
	if q.Size != 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	if q.FromSymbol != "" {
		params.Set("fromSymbol", q.FromSymbol)
	}
	if q.ToSymbol != "" {
		params.Set("toSymbol", q.ToSymbol)
	}
	return params, nil
}

// UniversalTransferRecord is one past transfer
type UniversalTransferRecord struct {
	Asset     string          `json:"asset"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransferType    `json:"type"`
	Status    string          `json:"status"`
	TranID    int64           `json:"tranId"`
	Timestamp types.Time      `json:"timestamp"`
}

// UniversalTransferHistory is a page of past transfers
type UniversalTransferHistory struct {
	Total int64                     `json:"total"`
	Rows  []UniversalTransferRecord `json:"rows"`
}

// SubAccountTransfer moves an asset between master and sub accounts
type SubAccountTransfer struct {
	FromEmail       string
	ToEmail         string
	FromAccountType string
	ToAccountType   string
	Asset           string
	Amount          decimal.Decimal
}

// SubAccountTransferResponse acknowledges a sub-account transfer
type SubAccountTransferResponse struct {
	TranID       int64  `json:"tranId"`
	ClientTranID string `json:"clientTranId"`
}

// SubAccountDepositHistoryQuery bounds a sub-account deposit history
// request. The remote service defaults to the last 7 days.
type SubAccountDepositHistoryQuery struct {
	SubAccountID string
	Coin         string
	Status       string
	StartTime    time.Time
	EndTime      time.Time
	Limit        int
	Offset       int
}

func (q *SubAccountDepositHistoryQuery) values() (url.Values, error) {
	params := url.Values{}
	if q.SubAccountID != "" {
		params.Set("subAccountId", q.SubAccountID)
	}
	if q.Coin != "" {
		params.Set("coin", q.Coin)
	}
	if q.Status != "" {
		if _, err := strconv.Atoi(q.Status); err != nil {
			return nil, errInvalidStatus
		}
		params.Set("status", q.Status)
	}
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset != 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	return params, nil
}

// SubAccountDepositRecord is one sub-account deposit
type SubAccountDepositRecord struct {
	SubAccountID string          `json:"subAccountId"`
	Amount       decimal.Decimal `json:"amount"`
	Coin         string          `json:"coin"`
	Network      string          `json:"network"`
	Status       int64           `json:"status"`
	Address      string          `json:"address"`
	AddressTag   string          `json:"addressTag"`
	TxID         string          `json:"txId"`
	InsertTime   types.Time      `json:"insertTime"`
	TransferType int64           `json:"transferType"`
	ConfirmTimes string          `json:"confirmTimes"`
}

// TravelRuleDepositHistoryQuery bounds a travel-rule deposit history request
type TravelRuleDepositHistoryQuery struct {
	TranID           string
	TxID             string
	Coin             string
	TravelRuleStatus string
	StartTime        time.Time
	EndTime          time.Time
	Offset           int
	Limit            int
}

func (q *TravelRuleDepositHistoryQuery) values() url.Values {
	params := url.Values{}
	if q.TranID != "" {
		params.Set("trId", q.TranID)
	}
	if q.TxID != "" {
		params.Set("txId", q.TxID)
	}
	if q.Coin != "" {
		params.Set("coin", q.Coin)
	}
	if q.TravelRuleStatus != "" {
		params.Set("travelRuleStatus", q.TravelRuleStatus)
	}
	if !q.StartTime.IsZero() {
		params.Set("startTime", strconv.FormatInt(q.StartTime.UTC().UnixMilli(), 10))
	}
	if !q.EndTime.IsZero() {
		params.Set("endTime", strconv.FormatInt(q.EndTime.UTC().UnixMilli(), 10))
	}
	if q.Offset != 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

// TravelRuleDepositRecord is one deposit subject to travel-rule compliance
type TravelRuleDepositRecord struct {
	TranID               int64           `json:"trId"`
	Amount               decimal.Decimal `json:"amount"`
	Coin                 string          `json:"coin"`
	Network              string          `json:"network"`
	DepositStatus        int64           `json:"depositStatus"`
	TravelRuleStatus     int64           `json:"travelRuleStatus"`
	Address              string          `json:"address"`
	AddressTag           string          `json:"addressTag"`
	TxID                 string          `json:"txId"`
	InsertTime           types.Time      `json:"insertTime"`
	RequireQuestionnaire bool            `json:"requireQuestionnaire"`
	Questionnaire        string          `json:"questionnaire"`
}

// DepositQuestionnaire is the compliance questionnaire attached to a
// travel-rule deposit. DepositOriginator and ReceiveFrom are required by
// the remote service.
type DepositQuestionnaire struct {
	DepositOriginator int    `json:"depositOriginator"`
	OrgType           string `json:"orgType,omitempty"`
	OrgName           string `json:"orgName,omitempty"`
	Country           string `json:"country,omitempty"`
	City              string `json:"city,omitempty"`
	ReceiveFrom       int    `json:"receiveFrom"`
	VASP              string `json:"vasp,omitempty"`
	VASPName          string `json:"vaspName,omitempty"`
}

// DepositQuestionnaireRequest submits a questionnaire for a pending deposit
type DepositQuestionnaireRequest struct {
	TranID        string
	Questionnaire DepositQuestionnaire
}

// DepositQuestionnaireResponse acknowledges a questionnaire submission
type DepositQuestionnaireResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    bool   `json:"data"`
	Success bool   `json:"success"`
}

// FlexibleLoan is one ongoing flexible loan order
type FlexibleLoan struct {
	LoanCoin         string          `json:"loanCoin"`
	TotalDebt        decimal.Decimal `json:"totalDebt"`
	CollateralCoin   string          `json:"collateralCoin"`
	CollateralAmount decimal.Decimal `json:"collateralAmount"`
	CurrentLTV       decimal.Decimal `json:"currentLTV"`
}

// FlexibleLoanOrders is a page of ongoing flexible loans
type FlexibleLoanOrders struct {
	Rows  []FlexibleLoan `json:"rows"`
	Total int64          `json:"total"`
}

// VIPLoan is one ongoing VIP loan order
type VIPLoan struct {
	OrderID                          int64           `json:"orderId"`
	LoanCoin                         string          `json:"loanCoin"`
	TotalDebt                        decimal.Decimal `json:"totalDebt"`
	ResidualInterest                 decimal.Decimal `json:"residualInterest"`
	CollateralAccountID              string          `json:"collateralAccountId"`
	CollateralCoin                   string          `json:"collateralCoin"`
	TotalCollateralValueAfterHaircut decimal.Decimal `json:"totalCollateralValueAfterHaircut"`
	LockedCollateralValue            decimal.Decimal `json:"lockedCollateralValue"`
	CurrentLTV                       decimal.Decimal `json:"currentLTV"`
	ExpirationTime                   types.Time      `json:"expirationTime"`
	LoanDate                         string          `json:"loanDate"`
	LoanRate                         decimal.Decimal `json:"loanRate"`
	LoanTerm                         string          `json:"loanTerm"`
}

// VIPLoanOrders is a page of ongoing VIP loans
type VIPLoanOrders struct {
	Rows  []VIPLoan `json:"rows"`
	Total int64     `json:"total"`
}

// AdjustmentDirection is the direction of a flexible loan LTV adjustment
type AdjustmentDirection string

// LTV adjustment directions
const (
	AdjustmentAdditional AdjustmentDirection = "ADDITIONAL"
	AdjustmentReduced    AdjustmentDirection = "REDUCED"
)

// FlexibleLoanAdjustment changes the collateral backing a flexible loan
type FlexibleLoanAdjustment struct {
	LoanCoin         string
	CollateralCoin   string
	AdjustmentAmount decimal.Decimal
	Direction        AdjustmentDirection
}

// FlexibleLoanAdjustResult is the post-adjustment loan state
type FlexibleLoanAdjustResult struct {
	LoanCoin         string          `json:"loanCoin"`
	CollateralCoin   string          `json:"collateralCoin"`
	Direction        string          `json:"direction"`
	AdjustmentAmount decimal.Decimal `json:"adjustmentAmount"`
	CurrentLTV       decimal.Decimal `json:"currentLTV"`
}
