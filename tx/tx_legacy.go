// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"math/big"

	"github.com/freyachain/freya/freya"
)

// LegacyTransaction is the pre-HELIOS tx body, priced by gas price coefficient.
type LegacyTransaction struct {
	ChainTag     byte
	BlockRef     uint64
	Expiration   uint32
	Clauses      []*Clause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *freya.Bytes32 `rlp:"nil"`
	Nonce        uint64
	Signature    []byte
}

func (t *LegacyTransaction) txType() byte {
	return TypeLegacy
}

func (t *LegacyTransaction) copy() TxData {
	cpy := &LegacyTransaction{
		ChainTag:     t.ChainTag,
		BlockRef:     t.BlockRef,
		Expiration:   t.Expiration,
		Clauses:      make([]*Clause, len(t.Clauses)),
		GasPriceCoef: t.GasPriceCoef,
		Gas:          t.Gas,
		DependsOn:    t.DependsOn,
		Nonce:        t.Nonce,
		Signature:    t.Signature,
	}
	copy(cpy.Clauses, t.Clauses)
	return cpy
}

func (t *LegacyTransaction) chainTag() byte {
	return t.ChainTag
}

func (t *LegacyTransaction) blockRef() uint64 {
	return t.BlockRef
}

func (t *LegacyTransaction) expiration() uint32 {
	return t.Expiration
}

func (t *LegacyTransaction) clauses() []*Clause {
	return t.Clauses
}

func (t *LegacyTransaction) gas() uint64 {
	return t.Gas
}

func (t *LegacyTransaction) maxFeePerGas() *big.Int {
	// legacy pricing has no fee cap
	return nil
}

func (t *LegacyTransaction) maxPriorityFeePerGas() *big.Int {
	return nil
}

func (t *LegacyTransaction) dependsOn() *freya.Bytes32 {
	return t.DependsOn
}

func (t *LegacyTransaction) nonce() uint64 {
	return t.Nonce
}

func (t *LegacyTransaction) signature() []byte {
	return t.Signature
}

func (t *LegacyTransaction) setSignature(sig []byte) {
	t.Signature = sig
}

func (t *LegacyTransaction) signingFields() []any {
	return []any{
		t.ChainTag,
		t.BlockRef,
		t.Expiration,
		t.Clauses,
		t.GasPriceCoef,
		t.Gas,
		t.DependsOn,
		t.Nonce,
	}
}
