package txbuilder

import (
	"bytes"
	"math/big"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"go.uber.org/zap"
)

// ChequeWithdrawBuilder builds the sender-side withdraw transaction
// after a cheque's relative timelock has matured: every cheque cell's
// capacity and amount is folded into a single output owned by the
// sender.
type ChequeWithdrawBuilder struct {
	// OutPoints are the cheque cells to withdraw. All must share one
	// lock script and one type script.
	OutPoints []*types.OutPoint

	// SenderLockScript must hash-match the second half of the cheque
	// lock args.
	SenderLockScript *types.Script

	Logger *zap.Logger
}

func (b *ChequeWithdrawBuilder) logger() *zap.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return zap.NewNop()
}

func (b *ChequeWithdrawBuilder) BuildBase(
	_ CellCollector,
	depResolver CellDepResolver,
	_ HeaderDepResolver,
	txProvider TransactionDependencyProvider,
) (*types.Transaction, error) {
	if len(b.OutPoints) == 0 {
		return nil, NewInvalidParameterError("empty withdraw inputs")
	}

	var chequeLockScript, chequeTypeScript *types.Script
	chequeTotalAmount := new(big.Int)
	var chequeTotalCapacity uint64
	inputs := make([]*types.CellInput, 0, len(b.OutPoints))

	for _, outPoint := range b.OutPoints {
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

		if chequeLockScript == nil {
			chequeLockScript = inputCell.Lock
		} else if !scriptsEqual(chequeLockScript, inputCell.Lock) {
			return nil, NewInvalidParameterError("all cheque input lock script must be the same")
		}
		if chequeTypeScript == nil {
			chequeTypeScript = inputCell.Type
		} else if !scriptsEqual(chequeTypeScript, inputCell.Type) {
			return nil, NewInvalidParameterError("all cheque input type script must be the same")
		}

		chequeTotalAmount.Add(chequeTotalAmount, u128FromLE(inputData))
		chequeTotalCapacity, err = addU64Checked(chequeTotalCapacity, inputCell.Capacity)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, &types.CellInput{
			Since:          ChequeCellSince,
			PreviousOutput: outPoint,
		})
	}

	chequeLockArgs := chequeLockScript.Args
	if len(chequeLockArgs) != 40 {
		return nil, NewInvalidParameterError("invalid cheque lock args length, expected 40")
	}
	senderLockHash := b.SenderLockScript.Hash()
	if !bytes.Equal(senderLockHash[0:20], chequeLockArgs[20:40]) {
		return nil, NewInvalidParameterError("sender lock script does not match cheque lock script args")
	}

	lockId := ScriptIdFromScript(chequeLockScript)
	lockDep, ok := depResolver.Resolve(lockId)
	if !ok {
		return nil, NewResolveCellDepFailedError(lockId)
	}
	typeId := ScriptIdFromScript(chequeTypeScript)
	typeDep, ok := depResolver.Resolve(typeId)
	if !ok {
		return nil, NewResolveCellDepFailedError(typeId)
	}
	cellDeps := newCellDepSet()
	cellDeps.add(lockDep)
	cellDeps.add(typeDep)

	b.logger().Debug("cheque withdraw assembled",
		zap.Int("cheque_inputs", len(b.OutPoints)),
		zap.Uint64("cheque_total_capacity", chequeTotalCapacity),
		zap.String("cheque_total_amount", chequeTotalAmount.String()),
	)

	outputData, err := u128ToLE(chequeTotalAmount)
	if err != nil {
		return nil, err
	}

	return &types.Transaction{
		Version:  0,
		CellDeps: cellDeps.slice(),
		Inputs:   inputs,
		Outputs: []*types.CellOutput{
			{
				Capacity: chequeTotalCapacity,
				Lock:     b.SenderLockScript,
				Type:     chequeTypeScript,
			},
		},
		OutputsData: [][]byte{outputData[:]},
		Witnesses:   make([][]byte, len(inputs)),
	}, nil
}
