// Package common holds the text projections used at storage and display
// boundaries: hex for ids, public keys and signatures, base58 for addresses.
package common

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrTextEncoding is returned when a text field cannot be decoded back to
// raw bytes for its expected alphabet or length.
var ErrTextEncoding = errors.New("invalid text encoding")

// EncodeHex encodes raw bytes to lowercase hex.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes a hex string back to raw bytes.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: hex %q: %v", ErrTextEncoding, s, err)
	}
	return b, nil
}

// EncodeBase58 encodes raw bytes to base58, the address text form.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase58 decodes a base58 string back to raw bytes.
func DecodeBase58(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base58 %q: %v", ErrTextEncoding, s, err)
	}
	return b, nil
}
