// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fork

import (
	"fmt"

	"github.com/freyachain/freya/tx"
)

// GasBudgetCalculator decides whether including a candidate transaction in a
// block is consistent with the gas limit rules at the given block height.
// Implementations are immutable and safe for concurrent use.
type GasBudgetCalculator interface {
	// HasBudget returns whether the tx fits the remaining gas budget of the
	// block, given the header gas limit and the gas already used by txs
	// admitted before it.
	HasBudget(tr *tx.Transaction, blockNum uint32, blockGasLimit, gasUsed uint64) bool
}

// FrontierGasBudget returns the pre-HELIOS calculator.
// All txs share a single gas pool bounded by the block gas limit.
func FrontierGasBudget() GasBudgetCalculator {
	return frontierBudget{}
}

// MigratingGasBudget returns the HELIOS calculator.
//
// From the fork block on, dynamic-fee txs are budgeted against the full block
// gas limit, while the legacy tx share starts at half of it and decays
// linearly to zero over migrationBlocks blocks. The decay per block is
// floor(blockGasLimit/2/migrationBlocks), so the legacy share can reach zero
// slightly before the window ends when the half limit is not an exact
// multiple. It never re-grows.
//
// migrationBlocks must be > 0.
func MigratingGasBudget(forkBlock, migrationBlocks uint32) GasBudgetCalculator {
	if migrationBlocks == 0 {
		panic("gas budget: zero migration duration")
	}
	return migratingBudget{
		forkBlock:       forkBlock,
		migrationBlocks: migrationBlocks,
	}
}

type frontierBudget struct{}

func (frontierBudget) HasBudget(tr *tx.Transaction, _ uint32, blockGasLimit, gasUsed uint64) bool {
	return hasBudget(blockGasLimit, gasUsed, tr.Gas())
}

type migratingBudget struct {
	forkBlock       uint32
	migrationBlocks uint32
}

func (m migratingBudget) HasBudget(tr *tx.Transaction, blockNum uint32, blockGasLimit, gasUsed uint64) bool {
	if blockNum < m.forkBlock {
		// the caller is responsible for picking the frontier calculator below the fork
		panic(fmt.Sprintf("gas budget: block %d precedes fork block %d", blockNum, m.forkBlock))
	}

	if tr.Type() == tx.TypeDynamicFee {
		// dynamic-fee txs see the full block capacity throughout the migration
		return hasBudget(blockGasLimit, gasUsed, tr.Gas())
	}
	return hasBudget(m.legacyGasBudget(blockNum, blockGasLimit), gasUsed, tr.Gas())
}

// legacyGasBudget computes the decayed gas budget available to legacy txs.
func (m migratingBudget) legacyGasBudget(blockNum uint32, blockGasLimit uint64) uint64 {
	half := blockGasLimit / 2
	decay := half / uint64(m.migrationBlocks)
	if decay == 0 {
		return half
	}

	elapsed := uint64(blockNum - m.forkBlock)
	if elapsed >= (half+decay-1)/decay {
		// decay * elapsed would meet or exceed the half limit,
		// checked divided to stay clear of uint64 wrap
		return 0
	}
	return half - decay*elapsed
}

// hasBudget is the shared admission rule: txGas fits into what is left of
// budget after gasUsed. Phrased as a subtraction so that no intermediate sum
// can wrap; an over-large operand always rejects.
func hasBudget(budget, gasUsed, txGas uint64) bool {
	if gasUsed > budget {
		return false
	}
	return txGas <= budget-gasUsed
}
