package transaction

import "github.com/cinderchain/cinder/common"

// Row is the text projection of a transaction, the boundary format for the
// pending store and any interface exchanging transactions as readable text.
// Id, public key and signature are hex; addresses are base58.
type Row struct {
	ID           string `json:"id"`
	SenderAddr   string `json:"sender_addr"`
	SenderPubKey string `json:"sender_pubkey"`
	ReceiverAddr string `json:"receiver_addr"`
	Amount       int32  `json:"amount"`
	Timestamp    int64  `json:"timestamp"`
	Signature    string `json:"signature"`
}

// Row projects the transaction into its text form.
func (t *Transaction) Row() Row {
	return Row{
		ID:           common.EncodeHex(t.id),
		SenderAddr:   common.EncodeBase58(t.signed.content.senderAddr),
		SenderPubKey: common.EncodeHex(t.signed.content.senderPubKey),
		ReceiverAddr: common.EncodeBase58(t.signed.content.receiverAddr),
		Amount:       t.signed.content.amount,
		Timestamp:    t.signed.content.timestamp,
		Signature:    common.EncodeHex(t.signed.signature),
	}
}

// Transaction rebuilds the record from its text form, decoding every byte
// field back to raw bytes. The result still needs Verify before trust.
func (r Row) Transaction() (*Transaction, error) {
	return FromFields(r.ID, r.SenderAddr, r.SenderPubKey, r.ReceiverAddr, r.Amount, r.Timestamp, r.Signature)
}
