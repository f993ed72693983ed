package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"bigcrypt/internal/bignum"
)

// parseHexInt parses a signed hex integer such as "ff", "0x1F" or "-0x2a".
func parseHexInt(s string) (*bignum.Int, error) {
	digits := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hex integer %q: %w", s, err)
	}
	x := bignum.FromBytes(b)
	if neg {
		x = x.Neg()
	}
	return x, nil
}

// hexIntValue is a pflag.Value holding a signed hex integer.
type hexIntValue struct {
	v *bignum.Int
}

func (h *hexIntValue) String() string {
	if h.v == nil {
		return ""
	}
	return h.v.String()
}

func (h *hexIntValue) Set(s string) error {
	v, err := parseHexInt(s)
	if err != nil {
		return err
	}
	h.v = v
	return nil
}

func (h *hexIntValue) Type() string { return "hex" }

var _ pflag.Value = (*hexIntValue)(nil)
