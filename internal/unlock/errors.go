// Package unlock implements the canonical signing digest and the four
// script signers (sighash, multisig, anyone-can-pay, cheque) that
// complete a transaction produced by internal/txbuilder.
package unlock

import (
	"errors"
	"fmt"
)

var (
	// ErrWitnessNotEnough is returned when the transaction's witness
	// vector has no entry at the script group's first input index.
	ErrWitnessNotEnough = errors.New("witness count in current transaction not enough to cover current script group")

	// ErrTooManySignatures is returned when a multisig slot region is
	// already full of distinct signatures.
	ErrTooManySignatures = errors.New("there are already too many signatures in current witness lock field")
)

// InvalidWitnessArgsError wraps a failure to parse a non-empty witness
// as WitnessArgs.
type InvalidWitnessArgsError struct {
	Cause error
}

func (e *InvalidWitnessArgsError) Error() string {
	return fmt.Sprintf("the witness is not empty and not in WitnessArgs format: %s", e.Cause)
}

func (e *InvalidWitnessArgsError) Unwrap() error { return e.Cause }

// InvalidMultisigConfigError reports a MultisigConfig invariant
// violation.
type InvalidMultisigConfigError struct {
	Reason string
}

func (e *InvalidMultisigConfigError) Error() string {
	return fmt.Sprintf("invalid multisig config: %s", e.Reason)
}

// WalletError wraps a failure returned by a Wallet.
type WalletError struct {
	Cause error
}

func (e *WalletError) Error() string { return fmt.Sprintf("wallet error: %s", e.Cause) }

func (e *WalletError) Unwrap() error { return e.Cause }

// TxDepError wraps a failure returned by a TransactionDependencyProvider.
type TxDepError struct {
	Cause error
}

func (e *TxDepError) Error() string { return fmt.Sprintf("transaction dependency error: %s", e.Cause) }

func (e *TxDepError) Unwrap() error { return e.Cause }
