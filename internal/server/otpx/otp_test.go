package otpx

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 appendix B secret "12345678901234567890" in base32.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestGenerate(t *testing.T) {
	k, err := Generate("EterBox", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, k.Secret)

	u, err := url.Parse(k.URI)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", u.Scheme)
	assert.Equal(t, "totp", u.Host)
	q := u.Query()
	assert.Equal(t, k.Secret, q.Get("secret"))
	assert.Equal(t, "EterBox", q.Get("issuer"))
	assert.Equal(t, "6", q.Get("digits"))
	assert.Equal(t, "30", q.Get("period"))
	assert.True(t, strings.EqualFold(q.Get("algorithm"), "SHA1"))
}

func TestCode_RFCVector(t *testing.T) {
	// 59s -> 94287082 with eight digits; the six digit code is the suffix.
	code, err := Code(rfcSecret, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, "287082", code)
}

func TestMatch_Skew(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cur := Step(now)

	for _, d := range []int64{-1, 0, 1} {
		code, err := Code(rfcSecret, time.Unix((cur+d)*Period, 0))
		require.NoError(t, err)
		step, err := Match(rfcSecret, code, now)
		require.NoError(t, err, "delta %d", d)
		assert.Equal(t, cur+d, step)
	}

	for _, d := range []int64{-2, 2} {
		code, err := Code(rfcSecret, time.Unix((cur+d)*Period, 0))
		require.NoError(t, err)
		_, err = Match(rfcSecret, code, now)
		assert.ErrorIs(t, err, ErrInvalidCode, "delta %d", d)
	}
}

func TestMatch_WrongLength(t *testing.T) {
	_, err := Match(rfcSecret, "12345", time.Now())
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = Match(rfcSecret, "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestStep(t *testing.T) {
	assert.Equal(t, int64(1), Step(time.Unix(59, 0)))
	assert.Equal(t, int64(2), Step(time.Unix(60, 0)))
}
