// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package packer

import "github.com/freyachain/freya/metrics"

var (
	metricTxAdoptedCounter = metrics.LazyLoadCounterVec("packer_adopted_tx_count", []string{"type"})
	metricBlockGasUsed     = metrics.LazyLoadGauge("packer_block_gas_used")
)
