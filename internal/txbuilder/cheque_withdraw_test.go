package txbuilder

import (
	"testing"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
)

// S3 — Withdraw, two cheques.
func TestChequeWithdrawBuilder_TwoCheques(t *testing.T) {
	_, senderLock, typeScript, chequeLock := chequeFixture(t)

	depResolver := newFakeDepResolver()
	depResolver.register(chequeLock, &types.CellDep{OutPoint: outPoint(1, 0), DepType: types.DepTypeCode})
	depResolver.register(typeScript, &types.CellDep{OutPoint: outPoint(2, 0), DepType: types.DepTypeCode})

	txProvider := newFakeTxProvider()
	op1 := outPoint(10, 0)
	op2 := outPoint(10, 1)
	txProvider.put(op1, &types.CellOutput{Capacity: 162_00000000, Lock: chequeLock, Type: typeScript}, u128LE(40))
	txProvider.put(op2, &types.CellOutput{Capacity: 162_00000000, Lock: chequeLock, Type: typeScript}, u128LE(60))

	builder := &ChequeWithdrawBuilder{
		OutPoints:        []*types.OutPoint{op1, op2},
		SenderLockScript: senderLock,
	}

	tx, err := builder.BuildBase(nil, depResolver, nil, txProvider)
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}

	if len(tx.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(tx.Inputs))
	}
	for i, in := range tx.Inputs {
		if in.Since != ChequeCellSince {
			t.Errorf("input %d: expected since=%#x, got %#x", i, ChequeCellSince, in.Since)
		}
	}

	if len(tx.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(tx.Outputs))
	}
	if tx.Outputs[0].Capacity != 324_00000000 {
		t.Errorf("expected output capacity 32400000000, got %d", tx.Outputs[0].Capacity)
	}
	gotAmount := u128FromLE(tx.OutputsData[0])
	if gotAmount.Uint64() != 100 {
		t.Errorf("expected output amount 100, got %s", gotAmount.String())
	}
	if tx.Outputs[0].Type == nil {
		t.Error("expected output to carry the shared type script")
	}
}

func TestChequeWithdrawBuilder_EmptyOutPoints(t *testing.T) {
	builder := &ChequeWithdrawBuilder{}
	_, err := builder.BuildBase(nil, newFakeDepResolver(), nil, newFakeTxProvider())
	if err == nil {
		t.Fatal("expected error for empty withdraw inputs")
	}
}

func TestChequeWithdrawBuilder_LockMismatch(t *testing.T) {
	_, senderLock, typeScript, chequeLock := chequeFixture(t)
	otherLock := &types.Script{CodeHash: codeHash(0xD4), HashType: types.HashTypeType, Args: append(append([]byte{}, chequeLock.Args...))}

	txProvider := newFakeTxProvider()
	op1 := outPoint(10, 0)
	op2 := outPoint(10, 1)
	txProvider.put(op1, &types.CellOutput{Capacity: 100, Lock: chequeLock, Type: typeScript}, u128LE(1))
	txProvider.put(op2, &types.CellOutput{Capacity: 100, Lock: otherLock, Type: typeScript}, u128LE(1))

	builder := &ChequeWithdrawBuilder{
		OutPoints:        []*types.OutPoint{op1, op2},
		SenderLockScript: senderLock,
	}
	_, err := builder.BuildBase(nil, newFakeDepResolver(), nil, txProvider)
	if err == nil {
		t.Fatal("expected error for mismatched lock scripts")
	}
}

func TestChequeWithdrawBuilder_ArgsLengthBoundary(t *testing.T) {
	_, senderLock, typeScript, _ := chequeFixture(t)

	for _, length := range []int{39, 41} {
		badLock := &types.Script{CodeHash: codeHash(0xC3), HashType: types.HashTypeType, Args: make([]byte, length)}
		txProvider := newFakeTxProvider()
		op1 := outPoint(10, 0)
		txProvider.put(op1, &types.CellOutput{Capacity: 100, Lock: badLock, Type: typeScript}, u128LE(1))

		builder := &ChequeWithdrawBuilder{
			OutPoints:        []*types.OutPoint{op1},
			SenderLockScript: senderLock,
		}
		_, err := builder.BuildBase(nil, newFakeDepResolver(), nil, txProvider)
		if err == nil {
			t.Errorf("args length %d: expected error", length)
		}
	}
}
