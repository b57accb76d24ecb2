// Package otpx wraps RFC 6238 TOTP generation and validation with the
// parameters EterBox uses: SHA1, six digits, 30 second period, one step of
// clock skew in either direction.
package otpx

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	Period = 30
	Skew   = 1
	Digits = otp.DigitsSix
)

var ErrInvalidCode = errors.New("invalid totp code")

// Key is a freshly generated shared secret.
type Key struct {
	Secret string // base32, unpadded
	URI    string // otpauth:// payload for the QR code
}

func Generate(issuer, account string) (*Key, error) {
	k, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
		Period:      Period,
		Digits:      Digits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}
	return &Key{Secret: k.Secret(), URI: k.URL()}, nil
}

// Step returns the RFC 6238 time step counter for t.
func Step(t time.Time) int64 {
	return t.Unix() / Period
}

// Code returns the code for the step containing t.
func Code(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, validateOpts())
}

// Match checks code against the steps within Skew of now and returns the
// matched step. The caller enforces that the step was not used before.
func Match(secret, code string, now time.Time) (int64, error) {
	if len(code) != Digits.Length() {
		return 0, ErrInvalidCode
	}
	current := Step(now)

	matched := int64(-1)
	for d := int64(-Skew); d <= Skew; d++ {
		step := current + d
		want, err := totp.GenerateCodeCustom(secret, time.Unix(step*Period, 0), validateOpts())
		if err != nil {
			return 0, err
		}
		if subtle.ConstantTimeCompare([]byte(want), []byte(code)) == 1 && step > matched {
			matched = step
		}
	}
	if matched < 0 {
		return 0, ErrInvalidCode
	}
	return matched, nil
}

func validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    Period,
		Skew:      0,
		Digits:    Digits,
		Algorithm: otp.AlgorithmSHA1,
	}
}
