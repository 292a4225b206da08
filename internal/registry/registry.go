// Package registry provides a declarative, YAML-described default
// CellDepResolver: the well-known scripts of a network (sighash,
// multisig, cheque, and test fixtures' type scripts), each mapped to
// the cell-dep that makes its code available on chain.
package registry

import (
	"fmt"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"gopkg.in/yaml.v3"

	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// entry is the YAML shape of one script's registration.
type entry struct {
	Name     string `yaml:"name"`
	CodeHash string `yaml:"code_hash"`
	HashType string `yaml:"hash_type"`
	DepType  string `yaml:"dep_type"`
	TxHash   string `yaml:"tx_hash"`
	Index    uint   `yaml:"index"`
}

type document struct {
	Network string  `yaml:"network"`
	Scripts []entry `yaml:"scripts"`
}

// Registry is a static, in-memory CellDepResolver.
type Registry struct {
	Network string
	deps    map[txbuilder.ScriptId]*types.CellDep
}

// Load parses a YAML document in the §4.7 shape into a Registry.
func Load(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse registry yaml: %w", err)
	}

	r := &Registry{
		Network: doc.Network,
		deps:    make(map[txbuilder.ScriptId]*types.CellDep, len(doc.Scripts)),
	}
	for _, e := range doc.Scripts {
		hashType, err := parseHashType(e.HashType)
		if err != nil {
			return nil, fmt.Errorf("script %q: %w", e.Name, err)
		}
		depType, err := parseDepType(e.DepType)
		if err != nil {
			return nil, fmt.Errorf("script %q: %w", e.Name, err)
		}

		id := txbuilder.ScriptId{
			CodeHash: types.HexToHash(e.CodeHash),
			HashType: hashType,
		}
		r.deps[id] = &types.CellDep{
			OutPoint: &types.OutPoint{
				TxHash: types.HexToHash(e.TxHash),
				Index:  e.Index,
			},
			DepType: depType,
		}
	}
	return r, nil
}

// Resolve implements txbuilder.CellDepResolver.
func (r *Registry) Resolve(id txbuilder.ScriptId) (*types.CellDep, bool) {
	dep, ok := r.deps[id]
	return dep, ok
}

func parseHashType(s string) (types.ScriptHashType, error) {
	switch s {
	case "data":
		return types.HashTypeData, nil
	case "type":
		return types.HashTypeType, nil
	case "data1":
		return types.HashTypeData1, nil
	default:
		return "", fmt.Errorf("unknown hash_type %q", s)
	}
}

func parseDepType(s string) (types.DepType, error) {
	switch s {
	case "code":
		return types.DepTypeCode, nil
	case "dep_group":
		return types.DepTypeDepGroup, nil
	default:
		return 0, fmt.Errorf("unknown dep_type %q", s)
	}
}
