package unlock

import (
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// Wallet is the only place raw private key material lives. Builders
// and signers in this module never see a key directly.
type Wallet interface {
	// MatchId reports whether the wallet holds signing material for
	// the given 20-byte owner id.
	MatchId(id []byte) bool

	// Sign returns a 65-byte signature over message under the given
	// owner id.
	Sign(ownerId []byte, message []byte, tx *types.Transaction, txProvider txbuilder.TransactionDependencyProvider) ([]byte, error)
}
