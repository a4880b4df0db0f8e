package common

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeURLValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/sapi/v1/system/status", EncodeURLValues("/sapi/v1/system/status", nil),
		"nil values should leave the path untouched")
	assert.Equal(t, "/sapi/v1/system/status", EncodeURLValues("/sapi/v1/system/status", url.Values{}),
		"empty values should leave the path untouched")

	v := url.Values{}
	v.Set("coin", "BTC")
	v.Set("limit", "500")
	assert.Equal(t, "/sapi/v1/capital/deposit/hisrec?coin=BTC&limit=500",
		EncodeURLValues("/sapi/v1/capital/deposit/hisrec", v),
		"values should be encoded in canonical order")
}
