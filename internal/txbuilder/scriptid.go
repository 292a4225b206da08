// Package txbuilder constructs unsigned cheque-protocol transactions.
//
// Builders only shape inputs, outputs and cell-deps; they never sign.
// Signing lives in internal/unlock.
package txbuilder

import (
	"bytes"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
)

// ScriptId identifies a script's code without its args, the key used
// to resolve a cell-dep.
type ScriptId struct {
	CodeHash types.Hash
	HashType types.ScriptHashType
}

// ScriptIdFromScript derives the ScriptId of a script.
func ScriptIdFromScript(script *types.Script) ScriptId {
	return ScriptId{
		CodeHash: script.CodeHash,
		HashType: script.HashType,
	}
}

// scriptsEqual compares two scripts field by field. types.Script holds
// a []byte Args, so it is not comparable with ==.
func scriptsEqual(a, b *types.Script) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.CodeHash == b.CodeHash &&
		a.HashType == b.HashType &&
		bytes.Equal(a.Args, b.Args)
}
