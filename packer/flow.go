// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package packer

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/freyachain/freya/block"
	"github.com/freyachain/freya/consensus/fork"
	"github.com/freyachain/freya/freya"
	"github.com/freyachain/freya/tx"
)

var logger = log.New("pkg", "packer")

// Flow the flow of packing a new block.
type Flow struct {
	packer       *Packer
	parentHeader *block.Header
	blockNum     uint32
	timestamp    uint64
	gasLimit     uint64
	baseFee      *big.Int
	budget       fork.GasBudgetCalculator

	gasUsed      uint64
	processedTxs map[freya.Bytes32]struct{}
	txs          tx.Transactions
}

func newFlow(
	packer *Packer,
	parentHeader *block.Header,
	blockNum uint32,
	timestamp uint64,
	gasLimit uint64,
	baseFee *big.Int,
	budget fork.GasBudgetCalculator,
) *Flow {
	return &Flow{
		packer:       packer,
		parentHeader: parentHeader,
		blockNum:     blockNum,
		timestamp:    timestamp,
		gasLimit:     gasLimit,
		baseFee:      baseFee,
		budget:       budget,
		processedTxs: make(map[freya.Bytes32]struct{}),
	}
}

// ParentHeader returns parent block header.
func (f *Flow) ParentHeader() *block.Header {
	return f.parentHeader
}

// Number returns the number of the block being packed.
func (f *Flow) Number() uint32 {
	return f.blockNum
}

// GasLimit returns the gas limit of the block being packed.
func (f *Flow) GasLimit() uint64 {
	return f.gasLimit
}

// GasUsed returns the gas used by adopted txs so far.
func (f *Flow) GasUsed() uint64 {
	return f.gasUsed
}

// When the target time to do packing.
func (f *Flow) When() uint64 {
	return f.timestamp
}

// Adopt try to admit the given transaction into the block being packed.
// The tx is checked in admission order against the remaining gas budget of
// the active fee-market phase.
func (f *Flow) Adopt(tr *tx.Transaction) error {
	switch {
	case tr.ChainTag() != f.packer.chainTag:
		return badTxError{"chain tag mismatch"}
	case tr.Type() != tx.TypeLegacy && f.blockNum < f.packer.forkConfig.HELIOS:
		return badTxError{"invalid tx type before HELIOS"}
	case f.blockNum < tr.BlockRef().Number():
		return errTxNotAdoptableNow
	case tr.IsExpired(f.blockNum):
		return badTxError{"expired"}
	}

	if !f.budget.HasBudget(tr, f.blockNum, f.gasLimit, f.gasUsed) {
		return errGasLimitReached
	}

	txID, err := tr.ID()
	if err != nil {
		return badTxError{"unsigned or malformed signature"}
	}
	if _, found := f.processedTxs[txID]; found {
		return errKnownTx
	}

	if dependsOn := tr.DependsOn(); dependsOn != nil {
		if _, found := f.processedTxs[*dependsOn]; !found {
			return errTxNotAdoptableNow
		}
	}

	f.processedTxs[txID] = struct{}{}
	f.gasUsed += tr.Gas()
	f.txs = append(f.txs, tr)

	metricTxAdoptedCounter().AddWithLabel(1, map[string]string{"type": txTypeLabel(tr.Type())})
	return nil
}

// Pack seals the flow into a new signed block.
func (f *Flow) Pack(privateKey *ecdsa.PrivateKey, stateRoot, receiptsRoot freya.Bytes32) (*block.Block, error) {
	builder := new(block.Builder).
		ParentID(f.parentHeader.ID()).
		Timestamp(f.timestamp).
		GasLimit(f.gasLimit).
		GasUsed(f.gasUsed).
		Beneficiary(f.packer.beneficiary).
		StateRoot(stateRoot).
		ReceiptsRoot(receiptsRoot).
		BaseFee(f.baseFee)

	for _, tr := range f.txs {
		builder.Transaction(tr)
	}

	newBlock := builder.Build()

	sig, err := crypto.Sign(newBlock.Header().SigningHash().Bytes(), privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "sign block")
	}
	newBlock = newBlock.WithSignature(sig)

	metricBlockGasUsed().Set(int64(f.gasUsed))
	logger.Debug("block packed",
		"number", newBlock.Header().Number(),
		"txs", len(f.txs),
		"gasUsed", f.gasUsed,
		"gasLimit", f.gasLimit,
	)
	return newBlock, nil
}

func txTypeLabel(txType byte) string {
	if txType == tx.TypeDynamicFee {
		return "dynamicFee"
	}
	return "legacy"
}
