package txbuilder

import "github.com/nervosnetwork/ckb-sdk-go/v2/types"

// OutputWithData pairs a cell output with its data, the builder's unit
// of caller-supplied work.
type OutputWithData struct {
	Output *types.CellOutput
	Data   []byte
}

// CapacityTransferBuilder is the minimal builder: it attaches no
// inputs (a later stage supplies them) and resolves a cell-dep for any
// output carrying a type script. It exists mainly to exercise the
// TxBuilder contract with the smallest possible implementation.
type CapacityTransferBuilder struct {
	Outputs []OutputWithData
}

func (b *CapacityTransferBuilder) BuildBase(
	_ CellCollector,
	depResolver CellDepResolver,
	_ HeaderDepResolver,
	_ TransactionDependencyProvider,
) (*types.Transaction, error) {
	cellDeps := newCellDepSet()
	outputs := make([]*types.CellOutput, 0, len(b.Outputs))
	outputsData := make([][]byte, 0, len(b.Outputs))

	for _, o := range b.Outputs {
		if o.Output.Type != nil {
			id := ScriptIdFromScript(o.Output.Type)
			dep, ok := depResolver.Resolve(id)
			if !ok {
				return nil, NewResolveCellDepFailedError(id)
			}
			cellDeps.add(dep)
		}
		outputs = append(outputs, o.Output)
		outputsData = append(outputsData, o.Data)
	}

	return &types.Transaction{
		Version:     0,
		CellDeps:    cellDeps.slice(),
		Inputs:      nil,
		Outputs:     outputs,
		OutputsData: outputsData,
		Witnesses:   nil,
	}, nil
}
