package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex is a lowercase, unprefixed, hex-encoded byte string as used by Cardano
// for policy ids and asset names (e.g. "6d7961737365746e616d65").
type Hex string

// HexEncode returns the hex encoding of the raw string s.
func HexEncode(s string) Hex {
	return Hex(hex.EncodeToString([]byte(s)))
}

// HexFromString validates s and returns it as a lowercase Hex value.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(strings.ToLower(s)), nil
}

// validateHex checks that s is an even-length string of hexadecimal digits.
func validateHex(s string) error {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must not carry a 0x prefix")
	}

	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// Decode returns the raw string encoded by h.
// If h is not valid hex, it returns an empty string.
func (h Hex) Decode() string {
	b, err := hex.DecodeString(string(h))
	if err != nil {
		return ""
	}
	return string(b)
}
