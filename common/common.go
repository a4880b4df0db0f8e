// Package common holds small helpers shared across the client packages.
package common

import (
	"net/url"
)

// EncodeURLValues appends the URL-encoded values to path when values are
// supplied.
func EncodeURLValues(path string, values url.Values) string {
	if len(values) > 0 {
		path += "?" + values.Encode()
	}
	return path
}
