package txbuilder

import "github.com/nervosnetwork/ckb-sdk-go/v2/types"

// cellDepSet deduplicates cell-deps by value. types.CellDep embeds a
// pointer OutPoint, so map[*types.CellDep]struct{} would dedupe by
// address instead of by value; key on the comparable fields instead.
type cellDepSet struct {
	order []*types.CellDep
	seen  map[cellDepKey]struct{}
}

type cellDepKey struct {
	outPoint types.OutPoint
	depType  types.DepType
}

func newCellDepSet() *cellDepSet {
	return &cellDepSet{seen: make(map[cellDepKey]struct{})}
}

func (s *cellDepSet) add(dep *types.CellDep) {
	key := cellDepKey{outPoint: *dep.OutPoint, depType: dep.DepType}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, dep)
}

func (s *cellDepSet) slice() []*types.CellDep {
	return s.order
}
