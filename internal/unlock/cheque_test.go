package unlock

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/nervosnetwork/ckb-cheque-core/internal/memwallet"
	"github.com/nervosnetwork/ckb-cheque-core/internal/txbuilder"
)

// S6 — Cheque signer owner-id selection.
func TestChequeSigner_OwnerIdSelection(t *testing.T) {
	receiver := [20]byte{1, 1, 1}
	sender := [20]byte{2, 2, 2}
	args := append(append([]byte{}, receiver[:]...), sender[:]...)

	wallet := memwallet.New(nil)
	sighash := NewSecp256k1SighashSigner(wallet, nil)

	claimSigner := NewChequeSigner(sighash, ChequeActionClaim)
	withdrawSigner := NewChequeSigner(sighash, ChequeActionWithdraw)

	if got := claimSigner.OwnerId(args); string(got) != string(receiver[:]) {
		t.Errorf("claim signer expected receiver id %x, got %x", receiver, got)
	}
	if got := withdrawSigner.OwnerId(args); string(got) != string(sender[:]) {
		t.Errorf("withdraw signer expected sender id %x, got %x", sender, got)
	}
	if got := claimSigner.OwnerId(make([]byte, 39)); len(got) != 0 {
		t.Errorf("expected empty owner id for non-40-byte args, got %x", got)
	}
}

func TestChequeSigner_MatchArgsAndSign(t *testing.T) {
	priv, _ := secp256k1.GeneratePrivateKey()
	wallet := memwallet.New(nil)
	receiverId := wallet.AddKey(priv)

	senderId := [20]byte{9, 9, 9}
	args := append(append([]byte{}, receiverId[:]...), senderId[:]...)

	sighash := NewSecp256k1SighashSigner(wallet, nil)
	claimSigner := NewChequeSigner(sighash, ChequeActionClaim)
	withdrawSigner := NewChequeSigner(sighash, ChequeActionWithdraw)

	if !claimSigner.MatchArgs(args) {
		t.Error("expected claim signer to match when wallet holds the receiver key")
	}
	if withdrawSigner.MatchArgs(args) {
		t.Error("expected withdraw signer to not match when wallet holds only the receiver key")
	}

	lock := &types.Script{CodeHash: types.Hash{6}, HashType: types.HashTypeType, Args: args}
	tx := &types.Transaction{
		Inputs: []*types.CellInput{
			{PreviousOutput: &types.OutPoint{TxHash: types.Hash{1}, Index: 0}},
		},
		Outputs:     []*types.CellOutput{{Capacity: 100, Lock: lock}},
		OutputsData: [][]byte{{}},
		Witnesses:   [][]byte{},
	}
	group := &txbuilder.ScriptGroup{Script: lock, InputIndices: []uint32{0}}

	signed, err := claimSigner.SignTx(tx, group, nil)
	if err != nil {
		t.Fatalf("SignTx failed: %v", err)
	}
	wa, err := ParseWitnessArgs(signed.Witnesses[0])
	if err != nil {
		t.Fatalf("parse witness failed: %v", err)
	}
	if len(wa.Lock) != 65 {
		t.Errorf("expected 65-byte lock, got %d", len(wa.Lock))
	}
}

func TestChequeSigner_MatchArgsRejectsWrongLength(t *testing.T) {
	wallet := memwallet.New(nil)
	sighash := NewSecp256k1SighashSigner(wallet, nil)
	signer := NewChequeSigner(sighash, ChequeActionClaim)
	if signer.MatchArgs(make([]byte, 39)) {
		t.Error("expected MatchArgs to reject non-40-byte args")
	}
}
