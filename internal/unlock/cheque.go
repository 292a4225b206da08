package unlock

import (
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// ChequeAction selects which half of a cheque's 40-byte lock args a
// ChequeSigner extracts its owner id from.
type ChequeAction int

const (
	ChequeActionClaim ChequeAction = iota
	ChequeActionWithdraw
)

// ChequeSigner wraps a sighash signer, extracting the owner id
// appropriate to its action from the cheque lock's 40-byte args:
// receiver (bytes [0:20]) when claiming, sender (bytes [20:40]) when
// withdrawing.
type ChequeSigner struct {
	sighash *Secp256k1SighashSigner
	action  ChequeAction
}

func NewChequeSigner(sighash *Secp256k1SighashSigner, action ChequeAction) *ChequeSigner {
	return &ChequeSigner{sighash: sighash, action: action}
}

// OwnerId returns the owner id this signer would extract from args,
// or an empty slice if args is not a 40-byte cheque args.
func (s *ChequeSigner) OwnerId(args []byte) []byte {
	if len(args) != 40 {
		return args[0:0]
	}
	if s.action == ChequeActionClaim {
		return args[0:20]
	}
	return args[20:40]
}

func (s *ChequeSigner) MatchArgs(args []byte) bool {
	return len(args) == 40 && s.sighash.Wallet().MatchId(s.OwnerId(args))
}

func (s *ChequeSigner) SignTx(
	tx *types.Transaction,
	group *txbuilder.ScriptGroup,
	txProvider txbuilder.TransactionDependencyProvider,
) (*types.Transaction, error) {
	args := group.Script.Args
	ownerId := s.OwnerId(args)
	return s.sighash.SignTxWithOwnerId(ownerId, tx, group, txProvider)
}
