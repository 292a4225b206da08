package unlock

import (
	"encoding/binary"

	"github.com/nervosnetwork/ckb-sdk-go/v2/crypto/blake2b"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// ScriptSigner generates a signing message for one script group, asks
// a Wallet to sign it, and writes the result into tx.witnesses.
type ScriptSigner interface {
	MatchArgs(args []byte) bool

	SignTx(tx *types.Transaction, group *txbuilder.ScriptGroup, txProvider txbuilder.TransactionDependencyProvider) (*types.Transaction, error)
}

// GenerateMessage computes the canonical signing digest for a script
// group: blake2b-256 over the transaction hash, the script group's
// first witness with its lock field replaced by zeroLock, every other
// witness in the group, and every witness beyond the input count — all
// length-prefixed with a little-endian u64 byte count. This must
// byte-match what the on-chain verifier script reconstructs; any
// deviation here silently invalidates every signature produced from
// it.
func GenerateMessage(tx *types.Transaction, group *txbuilder.ScriptGroup, zeroLock []byte) ([]byte, error) {
	firstIdx := group.InputIndices[0]
	if uint32(len(tx.Witnesses)) <= firstIdx {
		return nil, ErrWitnessNotEnough
	}

	initWitness, err := witnessArgsAt(tx.Witnesses, firstIdx)
	if err != nil {
		return nil, err
	}
	initWitness.Lock = zeroLock
	initBytes := initWitness.Serialize()

	txHash := tx.ComputeHash()

	var buf []byte
	buf = append(buf, txHash[:]...)
	buf = appendLenPrefixed(buf, initBytes)

	for _, idx := range group.InputIndices[1:] {
		if int(idx) >= len(tx.Witnesses) {
			continue
		}
		buf = appendLenPrefixed(buf, tx.Witnesses[idx])
	}

	if int(len(tx.Inputs)) < len(tx.Witnesses) {
		for _, w := range tx.Witnesses[len(tx.Inputs):] {
			buf = appendLenPrefixed(buf, w)
		}
	}

	return blake2b.Blake256(buf), nil
}

func appendLenPrefixed(buf []byte, data []byte) []byte {
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], uint64(len(data)))
	buf = append(buf, lenBytes[:]...)
	buf = append(buf, data...)
	return buf
}

// witnessArgsAt parses the witness at idx, defaulting an empty witness
// to the zero value.
func witnessArgsAt(witnesses [][]byte, idx uint32) (*WitnessArgs, error) {
	data := witnesses[idx]
	if len(data) == 0 {
		return &WitnessArgs{}, nil
	}
	wa, err := ParseWitnessArgs(data)
	if err != nil {
		return nil, &InvalidWitnessArgsError{Cause: err}
	}
	return wa, nil
}
