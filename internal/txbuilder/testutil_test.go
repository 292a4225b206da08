package txbuilder

import "github.com/nervosnetwork/ckb-sdk-go/v2/types"

// fakeDepResolver is an in-memory CellDepResolver fake.
type fakeDepResolver struct {
	deps map[ScriptId]*types.CellDep
}

func newFakeDepResolver() *fakeDepResolver {
	return &fakeDepResolver{deps: make(map[ScriptId]*types.CellDep)}
}

func (r *fakeDepResolver) register(s *types.Script, dep *types.CellDep) {
	r.deps[ScriptIdFromScript(s)] = dep
}

func (r *fakeDepResolver) Resolve(id ScriptId) (*types.CellDep, bool) {
	dep, ok := r.deps[id]
	return dep, ok
}

// fakeTxProvider is an in-memory TransactionDependencyProvider fake.
type fakeTxProvider struct {
	cells map[types.OutPoint]*types.CellOutput
	data  map[types.OutPoint][]byte
}

func newFakeTxProvider() *fakeTxProvider {
	return &fakeTxProvider{
		cells: make(map[types.OutPoint]*types.CellOutput),
		data:  make(map[types.OutPoint][]byte),
	}
}

func (p *fakeTxProvider) put(outPoint *types.OutPoint, cell *types.CellOutput, data []byte) {
	p.cells[*outPoint] = cell
	p.data[*outPoint] = data
}

func (p *fakeTxProvider) GetCell(outPoint *types.OutPoint) (*types.CellOutput, error) {
	cell, ok := p.cells[*outPoint]
	if !ok {
		return nil, errNotFound{outPoint: *outPoint}
	}
	return cell, nil
}

func (p *fakeTxProvider) GetCellData(outPoint *types.OutPoint) ([]byte, error) {
	data, ok := p.data[*outPoint]
	if !ok {
		return nil, errNotFound{outPoint: *outPoint}
	}
	return data, nil
}

type errNotFound struct {
	outPoint types.OutPoint
}

func (e errNotFound) Error() string {
	return "cell not found"
}

func outPoint(txHashByte byte, index uint) *types.OutPoint {
	var h types.Hash
	h[0] = txHashByte
	return &types.OutPoint{TxHash: h, Index: index}
}

func codeHash(b byte) types.Hash {
	var h types.Hash
	h[0] = b
	return h
}

func u128LE(v uint64) []byte {
	out := make([]byte, 16)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}
