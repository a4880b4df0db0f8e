// Package withdraw models a withdrawal submission and its pre-flight
// validation. Validation runs entirely client-side so a malformed request
// never reaches the network.
package withdraw

import (
	"errors"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Wallet types accepted by the withdrawal endpoint
const (
	SpotWallet    = 0
	FundingWallet = 1
)

// ErrRequestCannotBeNil is returned when a nil request is validated
var ErrRequestCannotBeNil = errors.New("request cannot be nil")

// Validation failure strings, joined into a single error
const (
	ErrStrCoinNotSet                  = "coin not set"
	ErrStrAddressNotSet               = "address not set"
	ErrStrAmountMustBeGreaterThanZero = "amount must be greater than zero"
	ErrStrInvalidWalletType           = "invalid wallet type"
)

// Checker allows additional validation to occur before a withdrawal is
// submitted
type Checker interface {
	Check() error
}

// Request holds everything needed to submit one withdrawal
type Request struct {
	Coin       string
	Network    string
	Address    string
	AddressTag string
	Amount     decimal.Decimal
	// WithdrawOrderID is a client-assigned id for reconciliation; see
	// GenerateOrderID
	WithdrawOrderID string
	// TransactionFeeFlag charges the fee to the recipient for internal
	// transfers
	TransactionFeeFlag bool
	// Name is a description of the address, stored server-side
	Name string
	// WalletType selects the spot or funding wallet; nil leaves the
	// server default in place
	WalletType *int
}

// Validate checks the request meets the minimum requirements to submit,
// then runs any supplied checkers. All failures are collected into one
// error.
func (r *Request) Validate(opt ...Checker) error {
	if r == nil {
		return ErrRequestCannotBeNil
	}

	var allErrors []string
	if r.Coin == "" {
		allErrors = append(allErrors, ErrStrCoinNotSet)
	}
	if r.Address == "" {
		allErrors = append(allErrors, ErrStrAddressNotSet)
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		allErrors = append(allErrors, ErrStrAmountMustBeGreaterThanZero)
	}
	if r.WalletType != nil && *r.WalletType != SpotWallet && *r.WalletType != FundingWallet {
		allErrors = append(allErrors, ErrStrInvalidWalletType)
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o.Check(); err != nil {
			allErrors = append(allErrors, err.Error())
		}
	}

	if len(allErrors) > 0 {
		return errors.New(strings.Join(allErrors, ", "))
	}
	return nil
}

// GenerateOrderID assigns a fresh client-side order id when one is not
// already set
func (r *Request) GenerateOrderID() error {
	if r.WithdrawOrderID != "" {
		return nil
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	r.WithdrawOrderID = id.String()
	return nil
}
