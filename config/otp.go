package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/otp/totp"
)

// ErrOTPSecretUnset is returned when no TOTP secret is configured
var ErrOTPSecretUnset = errors.New("otp secret unset")

// GenerateOTP returns the TOTP code for the configured secret at the given
// instant
func (c *Credentials) GenerateOTP(at time.Time) (string, error) {
	if c.OTPSecret == "" {
		return "", ErrOTPSecretUnset
	}
	code, err := totp.GenerateCode(c.OTPSecret, at)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp code")
	}
	return code, nil
}
