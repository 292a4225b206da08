package txbuilder

import (
	"bytes"
	"math/big"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"go.uber.org/zap"
)

// ChequeClaimBuilder builds the receiver-side claim transaction: every
// cheque input's SUDT amount is folded into the receiver's existing
// cell, and the cheque cells' capacity is refunded to the sender in a
// plain cell.
type ChequeClaimBuilder struct {
	// Inputs are the cheque cells to claim. All must share one lock
	// script and one type script, and hold exactly 16 bytes of data.
	Inputs []*types.CellInput

	// ReceiverInput already holds the token balance the claimed
	// amounts are added to. Its lock and type scripts and capacity are
	// carried into outputs[0] unchanged.
	ReceiverInput *types.CellInput

	// SenderLockScript must hash-match the second half of the cheque
	// lock args.
	SenderLockScript *types.Script

	Logger *zap.Logger
}

func (b *ChequeClaimBuilder) logger() *zap.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return zap.NewNop()
}

func (b *ChequeClaimBuilder) BuildBase(
	_ CellCollector,
	depResolver CellDepResolver,
	_ HeaderDepResolver,
	txProvider TransactionDependencyProvider,
) (*types.Transaction, error) {
	if len(b.Inputs) == 0 {
		return nil, NewInvalidParameterError("empty cheque inputs")
	}

	cellDeps := newCellDepSet()

	receiverOutPoint := b.ReceiverInput.PreviousOutput
	receiverCell, err := txProvider.GetCell(receiverOutPoint)
	if err != nil {
		return nil, NewDependencyLookupError(err)
	}
	receiverData, err := txProvider.GetCellData(receiverOutPoint)
	if err != nil {
		return nil, NewDependencyLookupError(err)
	}
	if receiverCell.Type == nil {
		return nil, NewInvalidParameterError("receiver input missing type script")
	}
	if len(receiverData) != 16 {
		return nil, NewInvalidParameterError("invalid receiver input cell data length, expected 16")
	}
	receiverTypeScript := receiverCell.Type
	receiverAmount := u128FromLE(receiverData)

	receiverTypeId := ScriptIdFromScript(receiverTypeScript)
	receiverTypeDep, ok := depResolver.Resolve(receiverTypeId)
	if !ok {
		return nil, NewResolveCellDepFailedError(receiverTypeId)
	}
	receiverLockId := ScriptIdFromScript(receiverCell.Lock)
	receiverLockDep, ok := depResolver.Resolve(receiverLockId)
	if !ok {
		return nil, NewResolveCellDepFailedError(receiverLockId)
	}
	cellDeps.add(receiverTypeDep)
	cellDeps.add(receiverLockDep)

	chequeTotalAmount := new(big.Int)
	var chequeTotalCapacity uint64
	var chequeLockScript *types.Script

	for _, input := range b.Inputs {
		outPoint := input.PreviousOutput
		inputCell, err := txProvider.GetCell(outPoint)
		if err != nil {
			return nil, NewDependencyLookupError(err)
		}
		inputData, err := txProvider.GetCellData(outPoint)
		if err != nil {
			return nil, NewDependencyLookupError(err)
		}
		if inputCell.Type == nil {
			return nil, NewInvalidParameterError("cheque input missing type script")
		}
		if len(inputData) != 16 {
			return nil, NewInvalidParameterError("invalid cheque input cell data length, expected 16")
		}
		if !scriptsEqual(inputCell.Type, receiverTypeScript) {
			return nil, NewInvalidParameterError("cheque input's type script not same with receiver input's type script")
		}

		if chequeLockScript == nil {
			chequeLockScript = inputCell.Lock
		} else if !scriptsEqual(chequeLockScript, inputCell.Lock) {
			return nil, NewInvalidParameterError("all cheque input lock script must be the same")
		}

		lockId := ScriptIdFromScript(inputCell.Lock)
		lockDep, ok := depResolver.Resolve(lockId)
		if !ok {
			return nil, NewResolveCellDepFailedError(lockId)
		}
		cellDeps.add(lockDep)

		chequeTotalAmount.Add(chequeTotalAmount, u128FromLE(inputData))
		chequeTotalCapacity, err = addU64Checked(chequeTotalCapacity, inputCell.Capacity)
		if err != nil {
			return nil, err
		}
	}

	chequeLockArgs := chequeLockScript.Args
	if len(chequeLockArgs) != 40 {
		return nil, NewInvalidParameterError("invalid cheque lock args length, expected 40")
	}
	senderLockHash := b.SenderLockScript.Hash()
	if !bytes.Equal(senderLockHash[0:20], chequeLockArgs[20:40]) {
		return nil, NewInvalidParameterError("sender lock script does not match cheque lock script args")
	}

	b.logger().Debug("cheque claim assembled",
		zap.Int("cheque_inputs", len(b.Inputs)),
		zap.Uint64("cheque_total_capacity", chequeTotalCapacity),
		zap.String("cheque_total_amount", chequeTotalAmount.String()),
	)

	receiverOutputAmount := new(big.Int).Add(receiverAmount, chequeTotalAmount)
	receiverOutputData, err := u128ToLE(receiverOutputAmount)
	if err != nil {
		return nil, err
	}

	senderOutput := &types.CellOutput{
		Capacity: chequeTotalCapacity,
		Lock:     b.SenderLockScript,
		Type:     nil,
	}

	inputs := make([]*types.CellInput, 0, len(b.Inputs)+1)
	inputs = append(inputs, b.Inputs...)
	inputs = append(inputs, b.ReceiverInput)

	return &types.Transaction{
		Version:  0,
		CellDeps: cellDeps.slice(),
		Inputs:   inputs,
		Outputs: []*types.CellOutput{
			{
				Capacity: receiverCell.Capacity,
				Lock:     receiverCell.Lock,
				Type:     receiverCell.Type,
			},
			senderOutput,
		},
		OutputsData: [][]byte{receiverOutputData[:], {}},
		Witnesses:   make([][]byte, len(inputs)),
	}, nil
}
