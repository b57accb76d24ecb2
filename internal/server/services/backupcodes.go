package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/common"
)

const (
	backupCodeCount = 10
	// backupCodeBytes gives each code 40 bits of entropy.
	backupCodeBytes = 5
	backupCodeHalf  = backupCodeBytes
	backupCodeLen   = 2*backupCodeHalf + 1
)

// generateBackupCodes returns n codes of the form XXXXX-XXXXX.
func generateBackupCodes(n int) ([]string, error) {
	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(codes) < n {
		raw, err := common.MakeRandHexString(backupCodeBytes)
		if err != nil {
			return nil, err
		}
		code := strings.ToUpper(raw[:backupCodeHalf] + "-" + raw[backupCodeHalf:])
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}

// normalizeBackupCode accepts lower case and a missing dash.
func normalizeBackupCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, " ", "")
	if len(code) == 2*backupCodeHalf && !strings.Contains(code, "-") {
		code = code[:backupCodeHalf] + "-" + code[backupCodeHalf:]
	}
	return code
}

func looksLikeBackupCode(code string) bool {
	c := normalizeBackupCode(code)
	if len(c) != backupCodeLen || c[backupCodeHalf] != '-' {
		return false
	}
	for i, r := range c {
		if i == backupCodeHalf {
			continue
		}
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return false
		}
	}
	return true
}

func hashBackupCode(key []byte, userID, code string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(userID))
	mac.Write([]byte{0})
	mac.Write([]byte(normalizeBackupCode(code)))
	return mac.Sum(nil)
}
