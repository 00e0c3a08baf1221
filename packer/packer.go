// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package packer

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/freyachain/freya/block"
	"github.com/freyachain/freya/consensus/fork"
	"github.com/freyachain/freya/freya"
)

// Packer schedules flows to pack new blocks on top of a parent.
type Packer struct {
	chainTag       byte
	forkConfig     freya.ForkConfig
	beneficiary    freya.Address
	targetGasLimit uint64
}

// New create a new Packer instance.
func New(
	chainTag byte,
	forkConfig freya.ForkConfig,
	beneficiary freya.Address,
) *Packer {
	return &Packer{
		chainTag:    chainTag,
		forkConfig:  forkConfig,
		beneficiary: beneficiary,
	}
}

// Schedule starts a flow to pack a block on top of the given parent header.
//
// baseFee is supplied by the fee-market layer and must be non-nil from the
// HELIOS block on, nil before it.
func (p *Packer) Schedule(parent *block.Header, timestamp uint64, baseFee *big.Int) (*Flow, error) {
	blockNum := parent.Number() + 1

	var gasLimit uint64
	if p.targetGasLimit != 0 {
		gasLimit = freya.GasLimit(p.targetGasLimit).Qualify(parent.GasLimit())
	} else {
		gasLimit = parent.GasLimit()
	}

	helios := blockNum >= p.forkConfig.HELIOS
	if helios && baseFee == nil {
		return nil, errors.New("base fee required from HELIOS block on")
	}
	if !helios && baseFee != nil {
		return nil, errors.New("base fee not accepted before HELIOS block")
	}

	var budget fork.GasBudgetCalculator
	if helios {
		budget = fork.MigratingGasBudget(p.forkConfig.HELIOS, freya.HeliosMigrationBlocks)
	} else {
		budget = fork.FrontierGasBudget()
	}

	return newFlow(p, parent, blockNum, timestamp, gasLimit, baseFee, budget), nil
}

// SetTargetGasLimit set the target gas limit of the block to be packed.
// If it's zero, the parent's gas limit is carried over.
func (p *Packer) SetTargetGasLimit(gl uint64) {
	p.targetGasLimit = gl
}
