package chain

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// buildTransaction serializes a single-instruction legacy transaction
// and signs it with the provided keys. The fee payer is always the
// first signer.
func buildTransaction(ix Instruction, blockhash string, signers []ed25519.PrivateKey) ([]byte, error) {
	if len(signers) == 0 {
		return nil, fmt.Errorf("transaction needs at least one signer")
	}

	recentBlockhash, err := decodeKey(blockhash)
	if err != nil {
		return nil, fmt.Errorf("parsing blockhash: %w", err)
	}

	keys, header := collectAccounts(ix, signers)
	msg := serializeMessage(keys, header, recentBlockhash, ix)

	var tx bytes.Buffer
	writeCompactU16(&tx, len(signers))
	for _, signer := range signers {
		tx.Write(ed25519.Sign(signer, msg))
	}
	tx.Write(msg)
	return tx.Bytes(), nil
}

type messageHeader struct {
	numRequiredSignatures uint8
	numReadonlySigned     uint8
	numReadonlyUnsigned   uint8
}

// collectAccounts orders account keys per the wire layout: writable
// signers, readonly signers, writable non-signers, readonly non-signers.
// Signer keys come from the actual signing keys so index 0 is the fee
// payer.
func collectAccounts(ix Instruction, signers []ed25519.PrivateKey) ([][32]byte, messageHeader) {
	var keys [][32]byte
	seen := make(map[[32]byte]bool)

	add := func(k [32]byte) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	for _, signer := range signers {
		var pub [32]byte
		copy(pub[:], signer.Public().(ed25519.PublicKey))
		add(pub)
	}
	header := messageHeader{numRequiredSignatures: uint8(len(keys))}

	for _, meta := range ix.Accounts {
		if meta.Writable {
			add(meta.Pubkey)
		}
	}
	writableEnd := len(keys)
	for _, meta := range ix.Accounts {
		if !meta.Writable {
			add(meta.Pubkey)
		}
	}
	add(ix.ProgramID)
	header.numReadonlyUnsigned = uint8(len(keys) - writableEnd)
	return keys, header
}

func serializeMessage(keys [][32]byte, header messageHeader, blockhash [32]byte, ix Instruction) []byte {
	var msg bytes.Buffer
	msg.WriteByte(header.numRequiredSignatures)
	msg.WriteByte(header.numReadonlySigned)
	msg.WriteByte(header.numReadonlyUnsigned)

	writeCompactU16(&msg, len(keys))
	for _, k := range keys {
		msg.Write(k[:])
	}
	msg.Write(blockhash[:])

	index := func(k [32]byte) uint8 {
		for i, key := range keys {
			if key == k {
				return uint8(i)
			}
		}
		return 0
	}

	writeCompactU16(&msg, 1) // one instruction
	msg.WriteByte(index(ix.ProgramID))
	writeCompactU16(&msg, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		msg.WriteByte(index(meta.Pubkey))
	}
	writeCompactU16(&msg, len(ix.Data))
	msg.Write(ix.Data)
	return msg.Bytes()
}

// writeCompactU16 encodes a length in the shortvec format.
func writeCompactU16(buf *bytes.Buffer, n int) {
	v := uint16(n)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			buf.WriteByte(b)
			return
		}
		buf.WriteByte(b | 0x80)
	}
}

// SignatureOf extracts the base58 first signature of a serialized
// transaction, which doubles as its identifier.
func SignatureOf(signedTx []byte) (string, error) {
	if len(signedTx) < 1+ed25519.SignatureSize {
		return "", fmt.Errorf("transaction too short")
	}
	// First byte is the compact signature count; first signature follows.
	return base58.Encode(signedTx[1 : 1+ed25519.SignatureSize]), nil
}
