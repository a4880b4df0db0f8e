// Package testbinance is an in-process fake of the wallet REST surface for
// package tests. It verifies inbound request signatures with the same
// signing primitive the client uses, records every request it accepts, and
// lets tests queue canned responses and failures per endpoint.
package testbinance

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ashquarry/binancewallet/common/crypto"
)

const signatureParam = "&signature="

// RecordedRequest is one request accepted by the fake, captured after
// signature verification
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
}

type queuedResponse struct {
	status int
	body   string
}

// Server is the fake exchange
type Server struct {
	key        string
	secret     string
	recvWindow time.Duration
	srv        *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	queued   map[string][]queuedResponse
}

// New starts a fake exchange that accepts requests signed with the given
// credentials. Close it when done.
func New(key, secret string) *Server {
	s := &Server{
		key:        key,
		secret:     secret,
		recvWindow: time.Minute,
		queued:     make(map[string][]queuedResponse),
	}

	r := mux.NewRouter()
	r.HandleFunc("/sapi/v1/system/status", s.handle(`{"status":0,"msg":"normal"}`)).Methods(http.MethodGet)

	signed := func(path, method, body string) {
		r.HandleFunc(path, s.verifySigned(s.handle(body))).Methods(method)
	}
	signed("/sapi/v1/capital/config/getall", http.MethodGet,
		`[{"coin":"BTC","name":"Bitcoin","depositAllEnable":true,"withdrawAllEnable":true,"free":"0.5","freeze":"0","locked":"0","storage":"0","withdrawing":"0","ipoable":"0","ipoing":"0","isLegalMoney":false,"trading":true,"networkList":[{"network":"BTC","coin":"BTC","name":"Bitcoin","depositEnable":true,"withdrawEnable":true,"withdrawFee":"0.0005","withdrawMin":"0.001","withdrawMax":"750","minConfirm":1,"unLockConfirm":2,"isDefault":true}]}]`)
	signed("/sapi/v1/accountSnapshot", http.MethodGet,
		`{"code":200,"msg":"","snapshotVos":[{"type":"spot","updateTime":1609459200000,"data":{"totalAssetOfBtc":"0.09905021","balances":[{"asset":"BTC","free":"0.09905021","locked":"0"}]}}]}`)
	signed("/sapi/v1/account/disableFastWithdrawSwitch", http.MethodPost, `{}`)
	signed("/sapi/v1/account/enableFastWithdrawSwitch", http.MethodPost, `{}`)
	signed("/sapi/v1/capital/withdraw/apply", http.MethodPost, `{"id":"7213fea8e94b4a5593d507237e5a555b"}`)
	signed("/sapi/v1/capital/deposit/hisrec", http.MethodGet, `[]`)
	signed("/sapi/v1/capital/withdraw/history", http.MethodGet, `[]`)
	signed("/sapi/v1/capital/deposit/address", http.MethodGet,
		`{"address":"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh","coin":"BTC","tag":"","url":"https://btc.com/bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"}`)
	signed("/sapi/v1/account/status", http.MethodGet, `{"data":"Normal"}`)
	signed("/sapi/v1/account/apiTradingStatus", http.MethodGet,
		`{"data":{"isLocked":false,"plannedRecoverTime":0,"triggerCondition":{"GCR":150,"IFER":150,"UFR":300},"updateTime":1609459200000}}`)
	signed("/sapi/v1/asset/dribblet", http.MethodGet,
		`{"total":1,"userAssetDribblets":[{"operateTime":1609459200000,"totalTransferedAmount":"0.00132256","totalServiceChargeAmount":"0.00002699","transId":45178372831,"userAssetDribbletDetails":[{"transId":4359321,"serviceChargeAmount":"0.000009","amount":"0.0009","operateTime":1609459200000,"transferedAmount":"0.000441","fromAsset":"USDT"}]}]}`)
	signed("/sapi/v1/asset/dust-btc", http.MethodPost,
		`{"details":[{"asset":"ADA","assetFullName":"ADA","amountFree":"6.21","toBTC":"0.00016848","toBNB":"0.01777302","toBNBOffExchange":"0.01741756","exchange":"0.00035546"}],"totalTransferBtc":"0.00016848","totalTransferBNB":"0.01777302","dribbletPercentage":"0.02"}`)
	signed("/sapi/v1/asset/dust", http.MethodPost,
		`{"totalServiceCharge":"0.02102542","totalTransfered":"1.05127099","transferResult":[{"amount":"0.03000000","fromAsset":"ETH","operateTime":1609459200000,"serviceChargeAmount":"0.00500000","tranId":2970932918,"transferedAmount":"0.25000000"}]}`)
	signed("/sapi/v1/asset/assetDividend", http.MethodGet,
		`{"rows":[{"id":1637366,"amount":"10.00000000","asset":"BHFT","divTime":1609459200000,"enInfo":"BHFT distribution","tranId":2968885920}],"total":1}`)
	signed("/sapi/v1/asset/assetDetail", http.MethodGet,
		`{"CTR":{"minWithdrawAmount":"70.00000000","depositStatus":false,"withdrawFee":"35","withdrawStatus":true,"depositTip":"Delisted, Deposit Suspended"}}`)
	signed("/sapi/v1/asset/tradeFee", http.MethodGet,
		`[{"symbol":"BTCUSDT","makerCommission":"0.001","takerCommission":"0.001"}]`)
	signed("/sapi/v1/asset/query/trading-fee", http.MethodGet,
		`[{"symbol":"BTCUSD","makerCommission":"0.0015","takerCommission":"0.0015"}]`)
	signed("/sapi/v1/asset/transfer", http.MethodPost, `{"tranId":13526853623}`)
	signed("/sapi/v1/asset/transfer", http.MethodGet,
		`{"total":1,"rows":[{"asset":"USDT","amount":"1","type":"MAIN_UMFUTURE","status":"CONFIRMED","tranId":11415955596,"timestamp":1609459200000}]}`)
	signed("/sapi/v1/asset/get-funding-asset", http.MethodPost,
		`[{"asset":"USDT","free":"1","locked":"0","freeze":"0","withdrawing":"0","btcValuation":"0.00000091"}]`)
	signed("/sapi/v1/account/apiRestrictions", http.MethodGet,
		`{"ipRestrict":false,"createTime":1609459200000,"enableInternalTransfer":true,"enableFutures":false,"enableVanillaOptions":false,"enableReading":true,"enableSpotAndMarginTrading":false,"enableWithdrawals":false,"enableMargin":false,"permitsUniversalTransfer":true,"tradingAuthorityExpirationTime":1609459200000}`)
	signed("/sapi/v1/sub-account/universalTransfer", http.MethodPost,
		`{"tranId":11945860693,"clientTranId":"test"}`)
	signed("/sapi/v1/broker/subAccount/depositHist", http.MethodGet, `[]`)
	signed("/sapi/v1/localentity/deposit/history", http.MethodGet, `[]`)
	signed("/sapi/v1/localentity/deposit/provide-info", http.MethodPut,
		`{"code":"000000","message":"success","data":true,"success":true}`)
	signed("/sapi/v2/loan/flexible/ongoing/orders", http.MethodGet,
		`{"rows":[{"loanCoin":"BUSD","totalDebt":"10000","collateralCoin":"BNB","collateralAmount":"49.27565492","currentLTV":"0.57"}],"total":1}`)
	signed("/sapi/v1/loan/vip/ongoing/orders", http.MethodGet, `{"rows":[],"total":0}`)
	signed("/sapi/v2/loan/flexible/adjust/ltv", http.MethodPost,
		`{"loanCoin":"BUSD","collateralCoin":"BNB","direction":"ADDITIONAL","adjustmentAmount":"5.235","currentLTV":"0.52"}`)

	s.srv = httptest.NewServer(r)
	return s
}

// URL is the base URL to point a client at
func (s *Server) URL() string { return s.srv.URL }

// Close shuts the fake down
func (s *Server) Close() { s.srv.Close() }

// Requests returns every request accepted so far
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns how many requests have been accepted
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Reset clears recorded requests and queued responses
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.queued = make(map[string][]queuedResponse)
}

// Enqueue queues a response for the next request to method+path. Queued
// responses are consumed in FIFO order before the endpoint's default.
func (s *Server) Enqueue(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.queued[key] = append(s.queued[key], queuedResponse{status: status, body: body})
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
	})
}

func (s *Server) popQueued(method, path string) (queuedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	q := s.queued[key]
	if len(q) == 0 {
		return queuedResponse{}, false
	}
	s.queued[key] = q[1:]
	return q[0], true
}

func (s *Server) handle(defaultBody string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		w.Header().Set("Content-Type", "application/json")
		if q, ok := s.popQueued(r.Method, r.URL.Path); ok {
			w.WriteHeader(q.status)
			fmt.Fprint(w, q.body)
			return
		}
		fmt.Fprint(w, defaultBody)
	}
}

// verifySigned rejects requests whose API key header, signature, or
// timestamp does not hold up. The signature must be the final query
// parameter and must cover exactly the preceding parameter string.
func (s *Server) verifySigned(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-MBX-APIKEY") != s.key {
			writeAPIError(w, http.StatusUnauthorized, -2014, "API-key format invalid.")
			return
		}

		raw := r.URL.RawQuery
		idx := strings.LastIndex(raw, signatureParam)
		if idx < 0 {
			writeAPIError(w, http.StatusBadRequest, -1022, "Signature for this request is not valid.")
			return
		}
		payload := raw[:idx]
		signature := raw[idx+len(signatureParam):]
		if !crypto.VerifySignature([]byte(s.secret), []byte(payload), signature) {
			writeAPIError(w, http.StatusUnauthorized, -1022, "Signature for this request is not valid.")
			return
		}

		values, err := url.ParseQuery(payload)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, -1100, "Illegal characters found in parameter.")
			return
		}
		ts, err := strconv.ParseInt(values.Get("timestamp"), 10, 64)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, -1021, "Timestamp for this request is invalid.")
			return
		}
		recvWindow := s.recvWindow
		if rw := values.Get("recvWindow"); rw != "" {
			if ms, err := strconv.ParseInt(rw, 10, 64); err == nil {
				recvWindow = time.Duration(ms) * time.Millisecond
			}
		}
		skew := time.Since(time.UnixMilli(ts))
		if skew < 0 {
			skew = -skew
		}
		if skew > recvWindow {
			writeAPIError(w, http.StatusBadRequest, -1021, "Timestamp for this request is outside of the recvWindow.")
			return
		}

		next(w, r)
	}
}

func writeAPIError(w http.ResponseWriter, status int, code int64, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"code":%d,"msg":%q}`, code, msg)
}
