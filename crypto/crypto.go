// Package crypto provides the digest, signing and verification primitives
// for transactions: SHA-256 digests and EC-Schnorr signatures over
// secp256k1. Signing and verification hold no shared state and are safe to
// call concurrently.
package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

const (
	// DigestLen is the size of a content or identity digest.
	DigestLen = sha256.Size

	// PrivateKeyLen is the size of a raw private scalar.
	PrivateKeyLen = 32

	// PublicKeyLen is the size of a compressed public key.
	PublicKeyLen = 33

	// SignatureLen is the size of a serialized Schnorr signature.
	SignatureLen = schnorr.SignatureSize
)

var (
	// ErrSigning is returned when a private key is structurally invalid
	// for signing.
	ErrSigning = errors.New("signing failed")

	// ErrCryptoFormat is returned when a public key or signature cannot
	// be parsed into its structural type. A well-formed but non-matching
	// signature is not an error; Verify reports it as false.
	ErrCryptoFormat = errors.New("malformed key or signature")
)

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Sign produces a detached Schnorr signature over a 32-byte digest using
// the supplied private scalar. The signature is deterministic for a given
// digest and key.
func Sign(digest, privKey []byte) ([]byte, error) {
	if len(privKey) != PrivateKeyLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrSigning, PrivateKeyLen, len(privKey))
	}
	priv := secp256k1.PrivKeyFromBytes(privKey)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: private key scalar is zero", ErrSigning)
	}
	sig, err := schnorr.Sign(priv, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return sig.Serialize(), nil
}

// Verify reports whether sig is a valid Schnorr signature over digest for
// pubKey. A signature that parses but does not match yields (false, nil);
// an unparseable signature or key yields ErrCryptoFormat.
func Verify(digest, sig, pubKey []byte) (bool, error) {
	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false, fmt.Errorf("%w: public key: %v", ErrCryptoFormat, err)
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, fmt.Errorf("%w: signature: %v", ErrCryptoFormat, err)
	}
	return parsed.Verify(digest, pub), nil
}

// GenerateKeyPair returns a fresh private scalar and its compressed public
// key.
func GenerateKeyPair() (priv, pub []byte, err error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return key.Serialize(), key.PubKey().SerializeCompressed(), nil
}

// PublicKeyFromPrivate derives the compressed public key for a private
// scalar.
func PublicKeyFromPrivate(privKey []byte) ([]byte, error) {
	if len(privKey) != PrivateKeyLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrSigning, PrivateKeyLen, len(privKey))
	}
	priv := secp256k1.PrivKeyFromBytes(privKey)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: private key scalar is zero", ErrSigning)
	}
	return priv.PubKey().SerializeCompressed(), nil
}

// AddressFromPublicKey derives an address from a compressed public key as
// the SHA-256 digest of its bytes. Address policy belongs to the wallet
// layer; this is the single place it is defined.
func AddressFromPublicKey(pubKey []byte) []byte {
	return Hash(pubKey)
}
