package unlock

import (
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"go.uber.org/zap"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// Secp256k1SighashSigner signs a single-key secp256k1 sighash-all
// script group.
type Secp256k1SighashSigner struct {
	wallet Wallet
	logger *zap.Logger
}

func NewSecp256k1SighashSigner(wallet Wallet, logger *zap.Logger) *Secp256k1SighashSigner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Secp256k1SighashSigner{wallet: wallet, logger: logger}
}

func (s *Secp256k1SighashSigner) Wallet() Wallet { return s.wallet }

func (s *Secp256k1SighashSigner) MatchArgs(args []byte) bool {
	return len(args) == 20 && s.wallet.MatchId(args)
}

func (s *Secp256k1SighashSigner) SignTx(
	tx *types.Transaction,
	group *txbuilder.ScriptGroup,
	txProvider txbuilder.TransactionDependencyProvider,
) (*types.Transaction, error) {
	args := group.Script.Args
	return s.SignTxWithOwnerId(args, tx, group, txProvider)
}

// SignTxWithOwnerId signs using ownerId instead of the script group's
// own args. AnyoneCanPaySigner and ChequeSigner reuse this to extract
// a different owner id from their own wider args.
func (s *Secp256k1SighashSigner) SignTxWithOwnerId(
	ownerId []byte,
	tx *types.Transaction,
	group *txbuilder.ScriptGroup,
	txProvider txbuilder.TransactionDependencyProvider,
) (*types.Transaction, error) {
	witnessIdx := group.InputIndices[0]
	witnesses := padWitnesses(tx.Witnesses, witnessIdx)
	txNew := withWitnesses(tx, witnesses)

	zeroLock := make([]byte, 65)
	message, err := GenerateMessage(txNew, group, zeroLock)
	if err != nil {
		return nil, err
	}

	signature, err := s.wallet.Sign(ownerId, message, tx, txProvider)
	if err != nil {
		return nil, &WalletError{Cause: err}
	}

	current, err := witnessArgsAt(witnesses, witnessIdx)
	if err != nil {
		return nil, err
	}
	current.Lock = signature
	witnesses[witnessIdx] = current.Serialize()

	s.logger.Debug("sighash signature installed",
		zap.Uint32("witness_index", witnessIdx),
		zap.ByteString("owner_id", ownerId),
	)

	return withWitnesses(tx, witnesses), nil
}

// padWitnesses returns a copy of witnesses extended with empty entries
// so index idx is addressable.
func padWitnesses(witnesses [][]byte, idx uint32) [][]byte {
	out := make([][]byte, len(witnesses), max(len(witnesses), int(idx)+1))
	copy(out, witnesses)
	for uint32(len(out)) <= idx {
		out = append(out, []byte{})
	}
	return out
}

func withWitnesses(tx *types.Transaction, witnesses [][]byte) *types.Transaction {
	clone := *tx
	clone.Witnesses = witnesses
	return &clone
}
