// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package freya

import (
	"github.com/ethereum/go-ethereum/params"
)

// Constants of block chain.
const (
	BlockInterval uint64 = 10 // time interval between two consecutive blocks.

	TxGas                 uint64 = params.TxGas
	TxGasContractCreation uint64 = params.TxGasContractCreation

	MinGasLimit          uint64 = 1000 * 1000
	InitialGasLimit      uint64 = 10 * 1000 * 1000 // gas limit value in genesis block.
	GasLimitBoundDivisor uint64 = 1024             // from ethereum

	// HeliosMigrationBlocks number of blocks over which the legacy tx share
	// of block gas decays to zero after the HELIOS fork activates.
	HeliosMigrationBlocks uint32 = 800000
)
