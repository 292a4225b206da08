package txbuilder

import "github.com/nervosnetwork/ckb-sdk-go/v2/types"

// ScriptGroup is the set of input (and output) positions that share
// one lock or type script — the unit a signer acts on. InputIndices
// must be non-empty and sorted ascending; the signer only ever writes
// to the witness at InputIndices[0].
type ScriptGroup struct {
	Script        *types.Script
	InputIndices  []uint32
	OutputIndices []uint32
}
