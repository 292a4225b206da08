package unlock

import (
	"bytes"
	"fmt"

	"github.com/nervosnetwork/ckb-sdk-go/v2/crypto/blake2b"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"go.uber.org/zap"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// MultisigConfig is an N-of-M secp256k1 multisig configuration: the
// addresses are 20-byte secp256k1 sighash identifiers.
type MultisigConfig struct {
	Addresses     [][20]byte
	RequireFirstN uint8
	Threshold     uint8
}

// NewMultisigConfig validates and builds a MultisigConfig.
func NewMultisigConfig(addresses [][20]byte, requireFirstN, threshold uint8) (*MultisigConfig, error) {
	seen := make(map[[20]byte]struct{}, len(addresses))
	for _, addr := range addresses {
		if _, ok := seen[addr]; ok {
			return nil, &InvalidMultisigConfigError{Reason: fmt.Sprintf("duplicated address: %x", addr)}
		}
		seen[addr] = struct{}{}
	}
	if int(threshold) > len(addresses) {
		return nil, &InvalidMultisigConfigError{Reason: fmt.Sprintf("invalid threshold %d > %d", threshold, len(addresses))}
	}
	if requireFirstN > threshold {
		return nil, &InvalidMultisigConfigError{Reason: fmt.Sprintf("invalid require-first-n %d > %d", requireFirstN, threshold)}
	}
	return &MultisigConfig{Addresses: addresses, RequireFirstN: requireFirstN, Threshold: threshold}, nil
}

// WitnessData is the fixed header (reserved byte, require-first-n,
// threshold, address count) followed by the concatenated addresses —
// the multisig lock script's config preimage.
func (c *MultisigConfig) WitnessData() []byte {
	out := make([]byte, 4, 4+20*len(c.Addresses))
	out[0] = 0x00
	out[1] = c.RequireFirstN
	out[2] = c.Threshold
	out[3] = byte(len(c.Addresses))
	for _, addr := range c.Addresses {
		out = append(out, addr[:]...)
	}
	return out
}

// ConfigHash is blake2b-256 of WitnessData; its first 20 bytes must
// equal the multisig lock script's args.
func (c *MultisigConfig) ConfigHash() []byte {
	return blake2b.Blake256(c.WitnessData())
}

// Secp256k1MultisigSigner signs an N-of-M secp256k1 multisig script
// group. A single SignTx call applies every signature the wallet can
// produce for the configured addresses; partial signing by distinct
// wallets composes by repeated SignTx calls against the same tx.
type Secp256k1MultisigSigner struct {
	wallet     Wallet
	config     *MultisigConfig
	configHash []byte
	logger     *zap.Logger
}

func NewSecp256k1MultisigSigner(wallet Wallet, config *MultisigConfig, logger *zap.Logger) *Secp256k1MultisigSigner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Secp256k1MultisigSigner{
		wallet:     wallet,
		config:     config,
		configHash: config.ConfigHash(),
		logger:     logger,
	}
}

func (s *Secp256k1MultisigSigner) Wallet() Wallet { return s.wallet }

func (s *Secp256k1MultisigSigner) MatchArgs(args []byte) bool {
	if !bytes.Equal(s.configHash[0:20], args) {
		return false
	}
	for _, addr := range s.config.Addresses {
		if s.wallet.MatchId(addr[:]) {
			return true
		}
	}
	return false
}

func (s *Secp256k1MultisigSigner) SignTx(
	tx *types.Transaction,
	group *txbuilder.ScriptGroup,
	txProvider txbuilder.TransactionDependencyProvider,
) (*types.Transaction, error) {
	witnessIdx := group.InputIndices[0]
	witnesses := padWitnesses(tx.Witnesses, witnessIdx)
	txNew := withWitnesses(tx, witnesses)

	configData := s.config.WitnessData()
	zeroLock := make([]byte, len(configData)+65*int(s.config.Threshold))
	copy(zeroLock, configData)

	message, err := GenerateMessage(txNew, group, zeroLock)
	if err != nil {
		return nil, err
	}

	var signatures [][]byte
	for _, addr := range s.config.Addresses {
		if !s.wallet.MatchId(addr[:]) {
			continue
		}
		sig, err := s.wallet.Sign(addr[:], message, tx, txProvider)
		if err != nil {
			return nil, &WalletError{Cause: err}
		}
		signatures = append(signatures, sig)
	}

	current, err := witnessArgsAt(witnesses, witnessIdx)
	if err != nil {
		return nil, err
	}
	lockField := current.Lock
	if lockField == nil {
		lockField = append([]byte(nil), zeroLock...)
	} else {
		lockField = append([]byte(nil), lockField...)
	}

	for _, signature := range signatures {
		idx := len(configData)
		placed := false
		for idx+65 <= len(lockField) {
			slot := lockField[idx : idx+65]
			if bytes.Equal(slot, signature) {
				placed = true
				break
			}
			if isZero(slot) {
				copy(slot, signature)
				placed = true
				break
			}
			idx += 65
		}
		if !placed {
			return nil, ErrTooManySignatures
		}
	}

	current.Lock = lockField
	witnesses[witnessIdx] = current.Serialize()

	s.logger.Debug("multisig signatures installed",
		zap.Uint32("witness_index", witnessIdx),
		zap.Int("signatures", len(signatures)),
	)

	return withWitnesses(tx, witnesses), nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
