// Package memwallet is a reference Wallet implementation over raw
// secp256k1 keys, for tests and example wiring. It is not a key-custody
// product: keys live in process memory, unencrypted.
package memwallet

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/google/uuid"
	"github.com/nervosnetwork/ckb-sdk-go/v2/crypto/blake2b"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"go.uber.org/zap"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// Wallet maps a 20-byte owner id (the blake2b-160 of a compressed
// public key) to the private key that owns it.
type Wallet struct {
	keys   map[[20]byte]*secp256k1.PrivateKey
	logger *zap.Logger
}

// New builds an empty wallet.
func New(logger *zap.Logger) *Wallet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wallet{keys: make(map[[20]byte]*secp256k1.PrivateKey), logger: logger}
}

// AddKey registers a private key and returns its owner id.
func (w *Wallet) AddKey(priv *secp256k1.PrivateKey) [20]byte {
	id := OwnerId(priv.PubKey())
	w.keys[id] = priv
	return id
}

// OwnerId computes the 20-byte owner id (blake2b-160 prefix of the
// blake2b-256 hash) of a compressed public key, the same identifier
// the secp256k1 sighash lock script expects in its args.
func OwnerId(pub *secp256k1.PublicKey) [20]byte {
	var id [20]byte
	hash := blake2b.Blake256(pub.SerializeCompressed())
	copy(id[:], hash[0:20])
	return id
}

func (w *Wallet) MatchId(id []byte) bool {
	if len(id) != 20 {
		return false
	}
	var key [20]byte
	copy(key[:], id)
	_, ok := w.keys[key]
	return ok
}

// Sign produces a 65-byte [R(32) || S(32) || recovery(1)] signature
// over message under ownerId.
func (w *Wallet) Sign(ownerId []byte, message []byte, _ *types.Transaction, _ txbuilder.TransactionDependencyProvider) ([]byte, error) {
	if len(ownerId) != 20 {
		return nil, fmt.Errorf("owner id must be 20 bytes, got %d", len(ownerId))
	}
	var key [20]byte
	copy(key[:], ownerId)
	priv, ok := w.keys[key]
	if !ok {
		return nil, fmt.Errorf("no key for owner id %x", ownerId)
	}
	if len(message) != 32 {
		return nil, fmt.Errorf("message must be a 32-byte digest, got %d", len(message))
	}

	requestId := uuid.New()
	w.logger.Debug("signing request",
		zap.String("request_id", requestId.String()),
		zap.Binary("owner_id", ownerId),
	)

	sig := signRecoverable(priv, message)

	w.logger.Debug("signing request complete",
		zap.String("request_id", requestId.String()),
	)
	return sig, nil
}

// signRecoverable produces the chain's 65-byte recoverable signature
// layout from dcrd's [recovery(1) || R(32) || S(32)] compact form.
func signRecoverable(priv *secp256k1.PrivateKey, hash []byte) []byte {
	sig := secp256k1ecdsa.SignCompact(priv, hash, false)
	out := make([]byte, 65)
	copy(out[0:32], sig[1:33])
	copy(out[32:64], sig[33:65])
	out[64] = sig[0] - 27
	return out
}
