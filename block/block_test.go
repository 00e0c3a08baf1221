// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freyachain/freya/freya"
	"github.com/freyachain/freya/tx"
)

func TestBlockBuilder(t *testing.T) {
	var parentID freya.Bytes32
	binary.BigEndian.PutUint32(parentID[:], 9)

	beneficiary := freya.BytesToAddress([]byte("beneficiary"))
	stateRoot := freya.BytesToBytes32([]byte("state"))

	b := new(Builder).
		ParentID(parentID).
		Timestamp(1234567890).
		GasLimit(freya.InitialGasLimit).
		GasUsed(21000).
		Beneficiary(beneficiary).
		StateRoot(stateRoot).
		BaseFee(big.NewInt(1000)).
		Transaction(tx.NewBuilder(tx.TypeLegacy).Gas(21000).Build()).
		Build()

	h := b.Header()
	assert.Equal(t, uint32(10), h.Number())
	assert.Equal(t, parentID, h.ParentID())
	assert.Equal(t, uint64(1234567890), h.Timestamp())
	assert.Equal(t, freya.InitialGasLimit, h.GasLimit())
	assert.Equal(t, uint64(21000), h.GasUsed())
	assert.Equal(t, beneficiary, h.Beneficiary())
	assert.Equal(t, stateRoot, h.StateRoot())
	assert.Equal(t, big.NewInt(1000), h.BaseFee())
	assert.Equal(t, b.Transactions().RootHash(), h.TxsRoot())
	assert.Len(t, b.Transactions(), 1)
}

func TestHeaderIDCarriesNumber(t *testing.T) {
	var parentID freya.Bytes32
	binary.BigEndian.PutUint32(parentID[:], 41)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	b := new(Builder).ParentID(parentID).GasLimit(freya.InitialGasLimit).Build()
	sig, err := crypto.Sign(b.Header().SigningHash().Bytes(), key)
	require.NoError(t, err)
	b = b.WithSignature(sig)

	id := b.Header().ID()
	assert.Equal(t, uint32(42), Number(id))

	signer, err := b.Header().Signer()
	require.NoError(t, err)
	assert.Equal(t, freya.Address(crypto.PubkeyToAddress(key.PublicKey)), signer)
}

func TestBlockEncoding(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	for _, baseFee := range []*big.Int{nil, big.NewInt(875000000)} {
		b := new(Builder).
			GasLimit(freya.InitialGasLimit).
			BaseFee(baseFee).
			Transaction(tx.NewBuilder(tx.TypeLegacy).Gas(21000).Build()).
			Build()
		sig, err := crypto.Sign(b.Header().SigningHash().Bytes(), key)
		require.NoError(t, err)
		b = b.WithSignature(sig)

		data, err := rlp.EncodeToBytes(b)
		require.NoError(t, err)

		var decoded Block
		require.NoError(t, rlp.DecodeBytes(data, &decoded))

		assert.Equal(t, b.Header().ID(), decoded.Header().ID())
		assert.Equal(t, b.Header().BaseFee(), decoded.Header().BaseFee())
		assert.Len(t, decoded.Transactions(), 1)
	}
}
