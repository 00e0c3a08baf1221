// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"encoding/binary"
	"math/big"

	"github.com/freyachain/freya/freya"
)

// Builder to make it easy to build transaction.
type Builder struct {
	txType               byte
	chainTag             byte
	blockRef             uint64
	expiration           uint32
	clauses              []*Clause
	gasPriceCoef         uint8
	gas                  uint64
	maxFeePerGas         *big.Int
	maxPriorityFeePerGas *big.Int
	dependsOn            *freya.Bytes32
	nonce                uint64
}

// NewBuilder creates a builder for the given tx type.
func NewBuilder(txType byte) *Builder {
	return &Builder{txType: txType}
}

// ChainTag set chain tag.
func (b *Builder) ChainTag(tag byte) *Builder {
	b.chainTag = tag
	return b
}

// BlockRef set block reference.
func (b *Builder) BlockRef(br BlockRef) *Builder {
	b.blockRef = binary.BigEndian.Uint64(br[:])
	return b
}

// Expiration set expiration in unit block.
func (b *Builder) Expiration(exp uint32) *Builder {
	b.expiration = exp
	return b
}

// Clause add a clause.
func (b *Builder) Clause(c *Clause) *Builder {
	b.clauses = append(b.clauses, c)
	return b
}

// GasPriceCoef set gas price coef, only meaningful for legacy txs.
func (b *Builder) GasPriceCoef(coef uint8) *Builder {
	b.gasPriceCoef = coef
	return b
}

// Gas set gas provision for tx.
func (b *Builder) Gas(gas uint64) *Builder {
	b.gas = gas
	return b
}

// MaxFeePerGas set max fee per gas, only meaningful for dynamic fee txs.
func (b *Builder) MaxFeePerGas(fee *big.Int) *Builder {
	b.maxFeePerGas = new(big.Int).Set(fee)
	return b
}

// MaxPriorityFeePerGas set max priority fee per gas, only meaningful for dynamic fee txs.
func (b *Builder) MaxPriorityFeePerGas(fee *big.Int) *Builder {
	b.maxPriorityFeePerGas = new(big.Int).Set(fee)
	return b
}

// DependsOn set depended tx.
func (b *Builder) DependsOn(txID *freya.Bytes32) *Builder {
	if txID == nil {
		b.dependsOn = nil
	} else {
		cpy := *txID
		b.dependsOn = &cpy
	}
	return b
}

// Nonce set nonce.
func (b *Builder) Nonce(nonce uint64) *Builder {
	b.nonce = nonce
	return b
}

// Build build tx object.
func (b *Builder) Build() *Transaction {
	switch b.txType {
	case TypeDynamicFee:
		maxFee := b.maxFeePerGas
		if maxFee == nil {
			maxFee = new(big.Int)
		}
		maxPriorityFee := b.maxPriorityFeePerGas
		if maxPriorityFee == nil {
			maxPriorityFee = new(big.Int)
		}
		return NewTransaction(&DynamicFeeTransaction{
			ChainTag:             b.chainTag,
			BlockRef:             b.blockRef,
			Expiration:           b.expiration,
			Clauses:              b.clauses,
			Gas:                  b.gas,
			MaxFeePerGas:         maxFee,
			MaxPriorityFeePerGas: maxPriorityFee,
			DependsOn:            b.dependsOn,
			Nonce:                b.nonce,
		})
	default:
		return NewTransaction(&LegacyTransaction{
			ChainTag:     b.chainTag,
			BlockRef:     b.blockRef,
			Expiration:   b.expiration,
			Clauses:      b.clauses,
			GasPriceCoef: b.gasPriceCoef,
			Gas:          b.gas,
			DependsOn:    b.dependsOn,
			Nonce:        b.nonce,
		})
	}
}
