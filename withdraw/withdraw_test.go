package withdraw

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *Request {
	return &Request{
		Coin:    "BTC",
		Address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		Amount:  decimal.NewFromFloat(0.1),
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	var nilRequest *Request
	assert.ErrorIs(t, nilRequest.Validate(), ErrRequestCannotBeNil)

	assert.NoError(t, validRequest().Validate())

	r := validRequest()
	r.Coin = ""
	assert.ErrorContains(t, r.Validate(), ErrStrCoinNotSet)

	r = validRequest()
	r.Address = ""
	assert.ErrorContains(t, r.Validate(), ErrStrAddressNotSet)

	r = validRequest()
	r.Amount = decimal.Zero
	assert.ErrorContains(t, r.Validate(), ErrStrAmountMustBeGreaterThanZero)

	r = validRequest()
	badWallet := 7
	r.WalletType = &badWallet
	assert.ErrorContains(t, r.Validate(), ErrStrInvalidWalletType)

	funding := FundingWallet
	r = validRequest()
	r.WalletType = &funding
	assert.NoError(t, r.Validate())
}

func TestValidateCollectsAllFailures(t *testing.T) {
	t.Parallel()
	r := &Request{Amount: decimal.NewFromInt(-1)}
	err := r.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, ErrStrCoinNotSet)
	assert.ErrorContains(t, err, ErrStrAddressNotSet)
	assert.ErrorContains(t, err, ErrStrAmountMustBeGreaterThanZero)
}

type failingChecker struct{}

func (failingChecker) Check() error { return errors.New("address not whitelisted") }

func TestValidateCheckers(t *testing.T) {
	t.Parallel()
	r := validRequest()
	assert.NoError(t, r.Validate(nil), "nil checkers should be skipped")
	assert.ErrorContains(t, r.Validate(failingChecker{}), "address not whitelisted")
}

func TestGenerateOrderID(t *testing.T) {
	t.Parallel()
	r := validRequest()
	require.NoError(t, r.GenerateOrderID())
	assert.NotEmpty(t, r.WithdrawOrderID)

	existing := r.WithdrawOrderID
	require.NoError(t, r.GenerateOrderID())
	assert.Equal(t, existing, r.WithdrawOrderID, "an existing order id must not be replaced")
}
