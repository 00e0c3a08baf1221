// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/freyachain/freya/freya"
)

// Transactions a slice of transactions.
type Transactions []*Transaction

// Copy makes a shallow copy.
func (txs Transactions) Copy() Transactions {
	return append(Transactions(nil), txs...)
}

// RootHash computes merkle root hash of transactions.
func (txs Transactions) RootHash() freya.Bytes32 {
	if len(txs) == 0 {
		// optimized
		return emptyRoot
	}
	return freya.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, txs)
	})
}

var emptyRoot = freya.Blake2b(rlp.EmptyList)
