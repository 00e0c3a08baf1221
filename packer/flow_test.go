// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package packer

import (
	"crypto/ecdsa"
	"encoding/binary"
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freyachain/freya/block"
	"github.com/freyachain/freya/freya"
	"github.com/freyachain/freya/tx"
)

const testChainTag = byte(0x4a)

func signTx(t *testing.T, tr *tx.Transaction, key *ecdsa.PrivateKey) *tx.Transaction {
	sig, err := crypto.Sign(tr.SigningHash().Bytes(), key)
	require.NoError(t, err)
	return tr.WithSignature(sig)
}

func newTx(t *testing.T, txType byte, gas uint64, key *ecdsa.PrivateKey) *tx.Transaction {
	tr := tx.NewBuilder(txType).
		ChainTag(testChainTag).
		Expiration(math.MaxUint32).
		Gas(gas).
		Nonce(uint64(gas)). // vary nonce so IDs differ
		Build()
	return signTx(t, tr, key)
}

func parentHeader(num uint32, gasLimit uint64) *block.Header {
	var parentID freya.Bytes32
	binary.BigEndian.PutUint32(parentID[:], num-1)
	return new(block.Builder).ParentID(parentID).GasLimit(gasLimit).Build().Header()
}

func TestFrontierFlow(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	p := New(testChainTag, freya.NoFork, freya.BytesToAddress([]byte("beneficiary")))
	flow, err := p.Schedule(parentHeader(1, 1000), 1000+freya.BlockInterval, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), flow.Number())
	assert.Equal(t, uint64(1000), flow.GasLimit())

	// the whole pool is open to legacy txs
	require.NoError(t, flow.Adopt(newTx(t, tx.TypeLegacy, 600, key)))
	assert.Equal(t, uint64(600), flow.GasUsed())

	err = flow.Adopt(newTx(t, tx.TypeLegacy, 500, key))
	assert.True(t, IsGasLimitReached(err))

	require.NoError(t, flow.Adopt(newTx(t, tx.TypeLegacy, 400, key)))
	assert.Equal(t, uint64(1000), flow.GasUsed())

	// dynamic-fee txs are not valid yet
	err = flow.Adopt(newTx(t, tx.TypeDynamicFee, 100, key))
	assert.True(t, IsBadTx(err))
}

func TestMigratingFlow(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	p := New(testChainTag, freya.ForkConfig{HELIOS: 2}, freya.Address{})
	flow, err := p.Schedule(parentHeader(1, 1000), freya.BlockInterval, big.NewInt(1000))
	require.NoError(t, err)

	// legacy txs only get the half pool at the fork block
	err = flow.Adopt(newTx(t, tx.TypeLegacy, 501, key))
	assert.True(t, IsGasLimitReached(err))
	require.NoError(t, flow.Adopt(newTx(t, tx.TypeLegacy, 500, key)))

	// dynamic-fee txs still fit the full block
	require.NoError(t, flow.Adopt(newTx(t, tx.TypeDynamicFee, 500, key)))
	assert.Equal(t, uint64(1000), flow.GasUsed())

	err = flow.Adopt(newTx(t, tx.TypeDynamicFee, 1, key))
	assert.True(t, IsGasLimitReached(err))
}

func TestFlowRejects(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	p := New(testChainTag, freya.NoFork, freya.Address{})
	flow, err := p.Schedule(parentHeader(1, 1000), freya.BlockInterval, nil)
	require.NoError(t, err)

	// chain tag mismatch
	wrongTag := signTx(t, tx.NewBuilder(tx.TypeLegacy).ChainTag(0xff).Gas(100).Build(), key)
	assert.True(t, IsBadTx(flow.Adopt(wrongTag)))

	// expired
	expired := signTx(t, tx.NewBuilder(tx.TypeLegacy).ChainTag(testChainTag).Expiration(0).Gas(100).Build(), key)
	assert.True(t, IsBadTx(flow.Adopt(expired)))

	// referencing a future block
	future := signTx(t, tx.NewBuilder(tx.TypeLegacy).
		ChainTag(testChainTag).
		BlockRef(tx.NewBlockRef(10)).
		Expiration(math.MaxUint32).
		Gas(100).
		Build(), key)
	assert.True(t, IsTxNotAdoptableNow(flow.Adopt(future)))

	// unsigned
	unsigned := tx.NewBuilder(tx.TypeLegacy).ChainTag(testChainTag).Expiration(math.MaxUint32).Gas(100).Build()
	assert.True(t, IsBadTx(flow.Adopt(unsigned)))

	// duplicated
	tr := newTx(t, tx.TypeLegacy, 100, key)
	require.NoError(t, flow.Adopt(tr))
	assert.True(t, IsKnownTx(flow.Adopt(tr)))

	// depending on an unknown tx
	unknownID := freya.BytesToBytes32([]byte("unknown"))
	dependent := signTx(t, tx.NewBuilder(tx.TypeLegacy).
		ChainTag(testChainTag).
		Expiration(math.MaxUint32).
		Gas(100).
		DependsOn(&unknownID).
		Build(), key)
	assert.True(t, IsTxNotAdoptableNow(flow.Adopt(dependent)))
}

func TestScheduleBaseFee(t *testing.T) {
	p := New(testChainTag, freya.ForkConfig{HELIOS: 2}, freya.Address{})

	_, err := p.Schedule(parentHeader(1, 1000), freya.BlockInterval, nil)
	assert.Error(t, err)

	pre := New(testChainTag, freya.NoFork, freya.Address{})
	_, err = pre.Schedule(parentHeader(1, 1000), freya.BlockInterval, big.NewInt(1))
	assert.Error(t, err)
}

func TestScheduleTargetGasLimit(t *testing.T) {
	p := New(testChainTag, freya.NoFork, freya.Address{})
	p.SetTargetGasLimit(freya.InitialGasLimit * 2)

	flow, err := p.Schedule(parentHeader(1, freya.InitialGasLimit), freya.BlockInterval, nil)
	require.NoError(t, err)

	// moves toward the target, bounded by the divisor
	assert.Equal(t, freya.InitialGasLimit+freya.InitialGasLimit/freya.GasLimitBoundDivisor, flow.GasLimit())
}

func TestFlowPack(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	beneficiary := freya.BytesToAddress([]byte("beneficiary"))
	p := New(testChainTag, freya.ForkConfig{HELIOS: 2}, beneficiary)

	parent := parentHeader(1, 1000)
	flow, err := p.Schedule(parent, freya.BlockInterval, big.NewInt(875000000))
	require.NoError(t, err)

	require.NoError(t, flow.Adopt(newTx(t, tx.TypeDynamicFee, 800, key)))

	stateRoot := freya.BytesToBytes32([]byte("state"))
	receiptsRoot := freya.BytesToBytes32([]byte("receipts"))
	b, err := flow.Pack(key, stateRoot, receiptsRoot)
	require.NoError(t, err)

	h := b.Header()
	assert.Equal(t, uint32(2), h.Number())
	assert.Equal(t, parent.ID(), h.ParentID())
	assert.Equal(t, uint64(800), h.GasUsed())
	assert.Equal(t, uint64(1000), h.GasLimit())
	assert.Equal(t, beneficiary, h.Beneficiary())
	assert.Equal(t, big.NewInt(875000000), h.BaseFee())
	assert.Equal(t, stateRoot, h.StateRoot())
	assert.Equal(t, receiptsRoot, h.ReceiptsRoot())
	assert.Len(t, b.Transactions(), 1)

	signer, err := h.Signer()
	require.NoError(t, err)
	assert.Equal(t, freya.Address(crypto.PubkeyToAddress(key.PublicKey)), signer)
}
