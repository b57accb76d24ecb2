package cryptox

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

const redacted = "[REDACTED]"

// Secret holds key material. Every formatting and encoding path prints a
// placeholder so a key cannot end up in logs or JSON by accident.
type Secret []byte

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return redacted }

func (s Secret) LogValue() slog.Value { return slog.StringValue(redacted) }

func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Format covers %v, %x, %q and friends, which would otherwise print the bytes.
func (s Secret) Format(f fmt.State, _ rune) { _, _ = io.WriteString(f, redacted) }

// Zero overwrites the underlying bytes.
func (s Secret) Zero() {
	for i := range s {
		s[i] = 0
	}
}
