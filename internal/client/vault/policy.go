package vault

import (
	"errors"
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
)

// MinPasswordScore is the lowest accepted zxcvbn score (0..4).
const MinPasswordScore = 3

var ErrWeakPassword = errors.New("master password is too weak")

// CheckStrength rejects master passwords zxcvbn scores below
// MinPasswordScore. userInputs (email, name) count as guessable words.
func CheckStrength(password []byte, userInputs ...string) error {
	r := zxcvbn.PasswordStrength(string(password), userInputs)
	if r.Score < MinPasswordScore {
		return fmt.Errorf("%w: score %d of 4, estimated crack time %s", ErrWeakPassword, r.Score, r.CrackTimeDisplay)
	}
	return nil
}
