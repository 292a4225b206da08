package unlock

import (
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// AnyoneCanPaySigner wraps a sighash signer: its args carry a 20-byte
// owner id followed by up to 2 bytes of per-asset minimum-transfer
// parameters this signer ignores.
type AnyoneCanPaySigner struct {
	sighash *Secp256k1SighashSigner
}

func NewAnyoneCanPaySigner(sighash *Secp256k1SighashSigner) *AnyoneCanPaySigner {
	return &AnyoneCanPaySigner{sighash: sighash}
}

func (s *AnyoneCanPaySigner) MatchArgs(args []byte) bool {
	if len(args) < 20 || len(args) > 22 {
		return false
	}
	return s.sighash.Wallet().MatchId(args[0:20])
}

func (s *AnyoneCanPaySigner) SignTx(
	tx *types.Transaction,
	group *txbuilder.ScriptGroup,
	txProvider txbuilder.TransactionDependencyProvider,
) (*types.Transaction, error) {
	args := group.Script.Args
	ownerId := args[0:20]
	return s.sighash.SignTxWithOwnerId(ownerId, tx, group, txProvider)
}
