// Package transaction models a signed value-transfer record pending block
// inclusion. A record moves through three layers: Content (the payload),
// Signed (content plus a Schnorr signature over the content digest), and
// Transaction (the signed wrapper plus an identity derived from its own
// digest). The two digests are distinct on purpose: the signature covers the
// encoded content alone, while the id covers content and signature together,
// so tampering with either is detectable.
//
// All three types are immutable after construction. Parsing and trust are
// separate: FromBytes and FromFields reconstruct a Transaction without
// checking anything cryptographic, and callers must call Verify before
// extending trust.
package transaction

import (
	"bytes"
	"fmt"

	"github.com/cinderchain/cinder/codec"
	"github.com/cinderchain/cinder/common"
	"github.com/cinderchain/cinder/crypto"
	"github.com/cinderchain/cinder/logx"
	"github.com/cinderchain/cinder/utils"
)

// Content is the economically meaningful payload of a transaction.
// Addresses and the public key are opaque byte fields supplied by the
// wallet layer. Amount carries no range or balance validation here; the
// ledger layer owns that.
type Content struct {
	senderAddr   []byte
	senderPubKey []byte
	receiverAddr []byte
	amount       int32
	timestamp    int64
}

// NewContent assembles an immutable payload. A zero timestamp is replaced
// with the current unix time. Input slices are copied, so later mutation of
// the caller's buffers cannot invalidate a signature.
func NewContent(senderAddr, senderPubKey, receiverAddr []byte, amount int32, timestamp int64) Content {
	if timestamp == 0 {
		timestamp = utils.CurrentTimestamp()
	}
	return Content{
		senderAddr:   bytes.Clone(senderAddr),
		senderPubKey: bytes.Clone(senderPubKey),
		receiverAddr: bytes.Clone(receiverAddr),
		amount:       amount,
		timestamp:    timestamp,
	}
}

func (c Content) SenderAddress() []byte { return bytes.Clone(c.senderAddr) }

func (c Content) SenderPublicKey() []byte { return bytes.Clone(c.senderPubKey) }

func (c Content) ReceiverAddress() []byte { return bytes.Clone(c.receiverAddr) }

func (c Content) Amount() int32 { return c.amount }

func (c Content) Timestamp() int64 { return c.timestamp }

func (c Content) appendTo(w *codec.Writer) {
	w.PutBytes(c.senderAddr)
	w.PutBytes(c.senderPubKey)
	w.PutBytes(c.receiverAddr)
	w.PutInt32(c.amount)
	w.PutInt64(c.timestamp)
}

// Encode returns the canonical encoding of the payload, the bytes the
// signature digest is computed over.
func (c Content) Encode() []byte {
	w := codec.NewWriter()
	c.appendTo(w)
	return w.Bytes()
}

func decodeContentFrom(r *codec.Reader) (Content, error) {
	var c Content
	var err error
	if c.senderAddr, err = r.Bytes(); err != nil {
		return Content{}, err
	}
	if c.senderPubKey, err = r.Bytes(); err != nil {
		return Content{}, err
	}
	if c.receiverAddr, err = r.Bytes(); err != nil {
		return Content{}, err
	}
	if c.amount, err = r.Int32(); err != nil {
		return Content{}, err
	}
	if c.timestamp, err = r.Int64(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// DecodeContent is the left inverse of Content.Encode.
func DecodeContent(raw []byte) (Content, error) {
	r := codec.NewReader(raw)
	c, err := decodeContentFrom(r)
	if err != nil {
		return Content{}, err
	}
	if err := r.Done(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Equal reports whether two payloads encode to identical bytes.
func (c Content) Equal(o Content) bool {
	return bytes.Equal(c.Encode(), o.Encode())
}

// Signed wraps a payload with its detached signature.
type Signed struct {
	content   Content
	signature []byte
}

func (s Signed) Content() Content { return s.content }

func (s Signed) Signature() []byte { return bytes.Clone(s.signature) }

// Encode returns the canonical encoding of content plus signature, the
// bytes the identity digest is computed over.
func (s Signed) Encode() []byte {
	w := codec.NewWriter()
	s.content.appendTo(w)
	w.PutBytes(s.signature)
	return w.Bytes()
}

func decodeSignedFrom(r *codec.Reader) (Signed, error) {
	c, err := decodeContentFrom(r)
	if err != nil {
		return Signed{}, err
	}
	sig, err := r.Bytes()
	if err != nil {
		return Signed{}, err
	}
	return Signed{content: c, signature: sig}, nil
}

// DecodeSigned is the left inverse of Signed.Encode.
func DecodeSigned(raw []byte) (Signed, error) {
	r := codec.NewReader(raw)
	s, err := decodeSignedFrom(r)
	if err != nil {
		return Signed{}, err
	}
	if err := r.Done(); err != nil {
		return Signed{}, err
	}
	return s, nil
}

// Transaction is a signed record with its tamper-evident identity.
type Transaction struct {
	id     []byte
	signed Signed
}

func (t *Transaction) ID() []byte { return bytes.Clone(t.id) }

func (t *Transaction) Signed() Signed { return t.signed }

// New builds the fully formed record: it digests the encoded content, signs
// the digest with the supplied private scalar, and derives the identity
// from the encoded signed wrapper.
func New(content Content, privKey []byte) (*Transaction, error) {
	digest := crypto.Hash(content.Encode())
	sig, err := crypto.Sign(digest, privKey)
	if err != nil {
		return nil, err
	}
	signed := Signed{content: content, signature: sig}
	id := crypto.Hash(signed.Encode())
	return &Transaction{id: id, signed: signed}, nil
}

// Encode returns the canonical encoding: the 32-byte id followed by the
// signed wrapper.
func (t *Transaction) Encode() []byte {
	w := codec.NewWriter()
	w.PutRaw(t.id)
	t.signed.content.appendTo(w)
	w.PutBytes(t.signed.signature)
	return w.Bytes()
}

// FromBytes reconstructs a Transaction from its canonical encoding. The
// result is parsed, not trusted; callers must Verify before use.
func FromBytes(raw []byte) (*Transaction, error) {
	r := codec.NewReader(raw)
	id, err := r.Raw(crypto.DigestLen)
	if err != nil {
		return nil, err
	}
	signed, err := decodeSignedFrom(r)
	if err != nil {
		return nil, err
	}
	if err := r.Done(); err != nil {
		return nil, err
	}
	return &Transaction{id: id, signed: signed}, nil
}

// FromFields reconstructs a Transaction from its text-encoded external
// representation, applying the inverse text projection to every byte field.
// Like FromBytes it performs no cryptographic checks.
func FromFields(idText, senderAddrText, senderPubKeyText, receiverAddrText string, amount int32, timestamp int64, signatureText string) (*Transaction, error) {
	id, err := common.DecodeHex(idText)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	if len(id) != crypto.DigestLen {
		return nil, fmt.Errorf("id: %w: expected %d bytes, got %d", common.ErrTextEncoding, crypto.DigestLen, len(id))
	}
	senderAddr, err := common.DecodeBase58(senderAddrText)
	if err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	senderPubKey, err := common.DecodeHex(senderPubKeyText)
	if err != nil {
		return nil, fmt.Errorf("sender public key: %w", err)
	}
	if len(senderPubKey) != crypto.PublicKeyLen {
		return nil, fmt.Errorf("sender public key: %w: expected %d bytes, got %d", common.ErrTextEncoding, crypto.PublicKeyLen, len(senderPubKey))
	}
	receiverAddr, err := common.DecodeBase58(receiverAddrText)
	if err != nil {
		return nil, fmt.Errorf("receiver address: %w", err)
	}
	sig, err := common.DecodeHex(signatureText)
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	if len(sig) != crypto.SignatureLen {
		return nil, fmt.Errorf("signature: %w: expected %d bytes, got %d", common.ErrTextEncoding, crypto.SignatureLen, len(sig))
	}
	return &Transaction{
		id: id,
		signed: Signed{
			content: Content{
				senderAddr:   senderAddr,
				senderPubKey: senderPubKey,
				receiverAddr: receiverAddr,
				amount:       amount,
				timestamp:    timestamp,
			},
			signature: sig,
		},
	}, nil
}

// Verify checks the signature against the sender's public key, re-deriving
// the digest from the encoded content. A mismatch is a normal false; only
// an unparseable key or signature is an error. This is the single trust
// gate for loaded or received transactions.
func (t *Transaction) Verify() (bool, error) {
	digest := crypto.Hash(t.signed.content.Encode())
	ok, err := crypto.Verify(digest, t.signed.signature, t.signed.content.senderPubKey)
	if err != nil {
		logx.Error("TX_VERIFY", "unparseable key or signature: ", err)
		return false, err
	}
	if !ok {
		logx.Warn("TX_VERIFY", "signature mismatch for tx ", common.EncodeHex(t.id))
	}
	return ok, nil
}

// Equal reports whether two transactions encode to identical bytes.
func (t *Transaction) Equal(o *Transaction) bool {
	if t == nil || o == nil {
		return t == o
	}
	return bytes.Equal(t.Encode(), o.Encode())
}
