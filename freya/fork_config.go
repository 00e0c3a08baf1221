// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package freya

import (
	"fmt"
	"math"
	"strings"
)

// ForkConfig config for a fork.
type ForkConfig struct {
	// HELIOS the block number activating the dual fee-market, from which
	// dynamic-fee transactions become valid and the legacy tx gas share
	// starts to decay.
	HELIOS uint32
}

func (fc ForkConfig) String() string {
	var strs []string
	push := func(name string, blockNum uint32) {
		if blockNum != math.MaxUint32 {
			strs = append(strs, fmt.Sprintf("%v: #%v", name, blockNum))
		}
	}

	push("HELIOS", fc.HELIOS)

	return strings.Join(strs, ", ")
}

// NoFork a special config without any forks.
var NoFork = ForkConfig{
	HELIOS: math.MaxUint32,
}

// for well-known networks
var forkConfigs = map[Bytes32]ForkConfig{
	// mainnet
	MustParseBytes32("0x000000004f6a65da860c164bd035ad12a4a0d3f77094e374e2f1f83bb298b18c"): {
		HELIOS: 13752000,
	},
	// testnet
	MustParseBytes32("0x00000000a4fca659e7a97f2a093f0ba43a4cbb2b4a6e78d867ee1d8095d5b296"): {
		HELIOS: 12960000,
	},
}

// GetForkConfig get fork config for given genesis ID.
func GetForkConfig(genesisID Bytes32) ForkConfig {
	if fc, ok := forkConfigs[genesisID]; ok {
		return fc
	}
	return NoFork
}
