package common

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, size := range []int{20, 32, 33, 64} {
		b := make([]byte, size)
		_, err := rand.Read(b)
		require.NoError(t, err)

		decoded, err := DecodeHex(EncodeHex(b))
		require.NoError(t, err)
		require.Equal(t, b, decoded)
	}
}

func TestBase58RoundTrip(t *testing.T) {
	for _, size := range []int{20, 32, 33} {
		b := make([]byte, size)
		_, err := rand.Read(b)
		require.NoError(t, err)

		decoded, err := DecodeBase58(EncodeBase58(b))
		require.NoError(t, err)
		require.Equal(t, b, decoded)
	}
}

func TestDecodeHexInvalid(t *testing.T) {
	_, err := DecodeHex("zzzz")
	require.ErrorIs(t, err, ErrTextEncoding)

	_, err = DecodeHex("abc") // odd length
	require.ErrorIs(t, err, ErrTextEncoding)
}

func TestDecodeBase58Invalid(t *testing.T) {
	// 0, O, I, l are outside the base58 alphabet.
	_, err := DecodeBase58("0OIl")
	require.ErrorIs(t, err, ErrTextEncoding)
}
