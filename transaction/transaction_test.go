package transaction

import (
	"crypto/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/cinderchain/cinder/codec"
	"github.com/cinderchain/cinder/common"
	"github.com/cinderchain/cinder/crypto"
)

const testTimestamp = int64(1_600_000_000)

func testKeyPair(t *testing.T) (priv, pub []byte) {
	t.Helper()
	priv, pub, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	return priv, pub
}

func randomAddress(t *testing.T) []byte {
	t.Helper()
	addr := make([]byte, 32)
	_, err := rand.Read(addr)
	require.NoError(t, err)
	return addr
}

func newTestTx(t *testing.T, amount int32, timestamp int64) (*Transaction, []byte) {
	t.Helper()
	priv, pub := testKeyPair(t)
	content := NewContent(crypto.AddressFromPublicKey(pub), pub, randomAddress(t), amount, timestamp)
	tx, err := New(content, priv)
	require.NoError(t, err)
	return tx, priv
}

func TestCreateProducesVerifiableTransaction(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	ok, err := tx.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIDBindsContentAndSignature(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	// id must be the digest of the encoded signed wrapper, not of the
	// content alone.
	require.Equal(t, crypto.Hash(tx.Signed().Encode()), tx.ID())
	require.NotEqual(t, crypto.Hash(tx.Signed().Content().Encode()), tx.ID())
}

func TestContentRoundTrip(t *testing.T) {
	_, pub := testKeyPair(t)
	content := NewContent(crypto.AddressFromPublicKey(pub), pub, randomAddress(t), -7, testTimestamp)

	decoded, err := DecodeContent(content.Encode())
	require.NoError(t, err)
	require.True(t, content.Equal(decoded))
	require.Equal(t, content.Amount(), decoded.Amount())
	require.Equal(t, content.Timestamp(), decoded.Timestamp())
}

func TestContentRoundTripFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 64)
	for i := 0; i < 200; i++ {
		var fields struct {
			SenderAddr   []byte
			SenderPubKey []byte
			ReceiverAddr []byte
			Amount       int32
			Timestamp    int64
		}
		f.Fuzz(&fields)

		content := NewContent(fields.SenderAddr, fields.SenderPubKey, fields.ReceiverAddr, fields.Amount, fields.Timestamp)
		decoded, err := DecodeContent(content.Encode())
		require.NoError(t, err)
		require.True(t, content.Equal(decoded))
	}
}

func TestSignedRoundTrip(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)
	signed := tx.Signed()

	decoded, err := DecodeSigned(signed.Encode())
	require.NoError(t, err)
	require.Equal(t, signed.Encode(), decoded.Encode())
}

func TestFromBytesRoundTrip(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	decoded, err := FromBytes(tx.Encode())
	require.NoError(t, err)
	require.True(t, tx.Equal(decoded))

	ok, err := decoded.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFromBytesTruncatedNeverPanics(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)
	raw := tx.Encode()

	for n := 0; n < len(raw); n++ {
		_, err := FromBytes(raw[:n])
		require.ErrorIs(t, err, codec.ErrMalformedEncoding, "prefix of %d bytes", n)
	}
}

func TestFromBytesTrailingBytes(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	_, err := FromBytes(append(tx.Encode(), 0xff))
	require.ErrorIs(t, err, codec.ErrMalformedEncoding)
}

func TestRowRoundTrip(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	rebuilt, err := tx.Row().Transaction()
	require.NoError(t, err)
	require.True(t, tx.Equal(rebuilt))

	ok, err := rebuilt.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFromFieldsRejectsBadText(t *testing.T) {
	row := func() Row {
		tx, _ := newTestTx(t, 42, testTimestamp)
		return tx.Row()
	}

	r := row()
	r.ID = "not hex"
	_, err := r.Transaction()
	require.ErrorIs(t, err, common.ErrTextEncoding)

	r = row()
	r.ID = "abcd" // valid hex, wrong length
	_, err = r.Transaction()
	require.ErrorIs(t, err, common.ErrTextEncoding)

	r = row()
	r.SenderAddr = "0OIl" // outside the base58 alphabet
	_, err = r.Transaction()
	require.ErrorIs(t, err, common.ErrTextEncoding)

	r = row()
	r.SenderPubKey = "abcd" // wrong length for a compressed key
	_, err = r.Transaction()
	require.ErrorIs(t, err, common.ErrTextEncoding)

	r = row()
	r.Signature = "zz"
	_, err = r.Transaction()
	require.ErrorIs(t, err, common.ErrTextEncoding)
}

func TestTamperedAmountFailsVerify(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	row := tx.Row()
	row.Amount ^= 1
	tampered, err := row.Transaction()
	require.NoError(t, err)

	ok, err := tampered.Verify()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTamperedReceiverFailsVerify(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	row := tx.Row()
	receiver, err := common.DecodeBase58(row.ReceiverAddr)
	require.NoError(t, err)
	receiver[0] ^= 0x01
	row.ReceiverAddr = common.EncodeBase58(receiver)

	tampered, err := row.Transaction()
	require.NoError(t, err)

	ok, err := tampered.Verify()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTamperedSignatureFailsVerify(t *testing.T) {
	tx, _ := newTestTx(t, 42, testTimestamp)

	row := tx.Row()
	sig, err := common.DecodeHex(row.Signature)
	require.NoError(t, err)
	sig[40] ^= 0x01
	row.Signature = common.EncodeHex(sig)

	tampered, err := row.Transaction()
	require.NoError(t, err)

	// Depending on which scalar the flip lands in, the signature either
	// parses and mismatches or fails structural parsing. Both reject.
	ok, _ := tampered.Verify()
	require.False(t, ok)
}

func TestIdentityDeterminism(t *testing.T) {
	priv, pub := testKeyPair(t)
	receiver := randomAddress(t)
	sender := crypto.AddressFromPublicKey(pub)

	first, err := New(NewContent(sender, pub, receiver, 42, testTimestamp), priv)
	require.NoError(t, err)
	second, err := New(NewContent(sender, pub, receiver, 42, testTimestamp), priv)
	require.NoError(t, err)
	require.Equal(t, first.ID(), second.ID())

	later, err := New(NewContent(sender, pub, receiver, 42, testTimestamp+1), priv)
	require.NoError(t, err)
	require.NotEqual(t, first.ID(), later.ID())
}

func TestNewContentDefaultsTimestamp(t *testing.T) {
	_, pub := testKeyPair(t)
	content := NewContent(crypto.AddressFromPublicKey(pub), pub, randomAddress(t), 1, 0)
	require.NotZero(t, content.Timestamp())
}

func TestContentIsImmutable(t *testing.T) {
	priv, pub := testKeyPair(t)
	receiver := randomAddress(t)
	content := NewContent(crypto.AddressFromPublicKey(pub), pub, receiver, 42, testTimestamp)

	tx, err := New(content, priv)
	require.NoError(t, err)

	// Mutating the caller's buffer after construction must not reach the
	// signed bytes.
	receiver[0] ^= 0xff
	ok, err := tx.Verify()
	require.NoError(t, err)
	require.True(t, ok)

	// Accessor results are copies; scribbling on them changes nothing.
	got := tx.Signed().Content().ReceiverAddress()
	got[0] ^= 0xff
	ok, err = tx.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewRejectsInvalidPrivateKey(t *testing.T) {
	_, pub := testKeyPair(t)
	content := NewContent(crypto.AddressFromPublicKey(pub), pub, randomAddress(t), 42, testTimestamp)

	_, err := New(content, []byte{1, 2, 3})
	require.ErrorIs(t, err, crypto.ErrSigning)
}
