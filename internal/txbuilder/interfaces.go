package txbuilder

import (
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
)

// CellCollector supplies unspent cells meeting some criteria. None of
// the builders in this package use it directly; it is kept in the
// contract so every builder shares one signature with future,
// collector-driven builders.
type CellCollector interface {
	Collect(lock *types.Script, needCapacity uint64) ([]*types.CellInput, uint64, error)
}

// CellDepResolver maps a ScriptId to the cell-dep that makes the
// corresponding code available to a transaction.
type CellDepResolver interface {
	Resolve(id ScriptId) (*types.CellDep, bool)
}

// HeaderDepResolver maps a block hash to a header-dep. Not used by any
// builder in this package; kept for interface symmetry with the
// dependency-injection design (spec.md §9).
type HeaderDepResolver interface {
	Resolve(blockHash types.Hash) (*types.Hash, bool)
}

// TransactionDependencyProvider resolves the cells an in-flight
// transaction spends or reads.
type TransactionDependencyProvider interface {
	GetCell(outPoint *types.OutPoint) (*types.CellOutput, error)
	GetCellData(outPoint *types.OutPoint) ([]byte, error)
}

// TxBuilder is the one operation every builder in this package shares.
type TxBuilder interface {
	BuildBase(
		collector CellCollector,
		depResolver CellDepResolver,
		headerResolver HeaderDepResolver,
		txProvider TransactionDependencyProvider,
	) (*types.Transaction, error)
}
