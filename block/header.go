// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/freyachain/freya/freya"
)

// Header contains almost all information about a block, except block body.
// It's immutable.
type Header struct {
	body headerBody

	cache struct {
		signingHash atomic.Value
		signer      atomic.Value
		id          atomic.Value
	}
}

// headerBody body of header
type headerBody struct {
	ParentID    freya.Bytes32
	Timestamp   uint64
	GasLimit    uint64
	Beneficiary freya.Address

	GasUsed uint64

	TxsRoot      freya.Bytes32
	StateRoot    freya.Bytes32
	ReceiptsRoot freya.Bytes32

	Signature []byte

	// BaseFee was added by the HELIOS fork, absent in earlier blocks.
	BaseFee *big.Int `rlp:"optional"`
}

// ParentID returns id of parent block.
func (h *Header) ParentID() freya.Bytes32 {
	return h.body.ParentID
}

// Number returns sequential number of this block.
func (h *Header) Number() uint32 {
	// inferred from parent id
	return Number(h.body.ParentID) + 1
}

// Timestamp returns timestamp of this block.
func (h *Header) Timestamp() uint64 {
	return h.body.Timestamp
}

// GasLimit returns gas limit of this block.
func (h *Header) GasLimit() uint64 {
	return h.body.GasLimit
}

// GasUsed returns gas used by txs.
func (h *Header) GasUsed() uint64 {
	return h.body.GasUsed
}

// Beneficiary returns reward recipient.
func (h *Header) Beneficiary() freya.Address {
	return h.body.Beneficiary
}

// TxsRoot returns merkle root of txs contained in this block.
func (h *Header) TxsRoot() freya.Bytes32 {
	return h.body.TxsRoot
}

// StateRoot returns account state merkle root just after this block being applied.
func (h *Header) StateRoot() freya.Bytes32 {
	return h.body.StateRoot
}

// ReceiptsRoot returns merkle root of tx receipts.
func (h *Header) ReceiptsRoot() freya.Bytes32 {
	return h.body.ReceiptsRoot
}

// BaseFee returns the base fee of this block, nil for pre-HELIOS blocks.
func (h *Header) BaseFee() *big.Int {
	if h.body.BaseFee == nil {
		return nil
	}
	return new(big.Int).Set(h.body.BaseFee)
}

// ID computes id of block.
// The block ID is defined as: blockNumber + hash(signingHash, signer)[4:].
func (h *Header) ID() (id freya.Bytes32) {
	if cached := h.cache.id.Load(); cached != nil {
		return cached.(freya.Bytes32)
	}
	defer func() {
		// overwrite first 4 bytes of block hash to block number.
		binary.BigEndian.PutUint32(id[:], h.Number())
		h.cache.id.Store(id)
	}()

	signer, err := h.Signer()
	if err != nil {
		return
	}

	return freya.Blake2b(h.SigningHash().Bytes(), signer.Bytes())
}

// SigningHash computes hash of all header fields excluding signature.
func (h *Header) SigningHash() (hash freya.Bytes32) {
	if cached := h.cache.signingHash.Load(); cached != nil {
		return cached.(freya.Bytes32)
	}
	defer func() { h.cache.signingHash.Store(hash) }()

	return freya.Blake2bFn(func(w io.Writer) {
		fields := []any{
			h.body.ParentID,
			h.body.Timestamp,
			h.body.GasLimit,
			h.body.Beneficiary,

			h.body.GasUsed,

			h.body.TxsRoot,
			h.body.StateRoot,
			h.body.ReceiptsRoot,
		}
		if h.body.BaseFee != nil {
			fields = append(fields, h.body.BaseFee)
		}
		rlp.Encode(w, fields)
	})
}

// Signature returns signature.
func (h *Header) Signature() []byte {
	return append([]byte(nil), h.body.Signature...)
}

// WithSignature create a new Header object with signature set.
func (h *Header) WithSignature(sig []byte) *Header {
	cpy := Header{body: h.body}
	cpy.body.Signature = append([]byte(nil), sig...)
	return &cpy
}

// Signer extract signer of the block from signature.
func (h *Header) Signer() (signer freya.Address, err error) {
	if h.Number() == 0 {
		// special case for genesis block
		return freya.Address{}, nil
	}

	if cached := h.cache.signer.Load(); cached != nil {
		return cached.(freya.Address), nil
	}
	defer func() {
		if err == nil {
			h.cache.signer.Store(signer)
		}
	}()

	pub, err := crypto.SigToPub(h.SigningHash().Bytes(), h.body.Signature)
	if err != nil {
		return freya.Address{}, err
	}

	signer = freya.Address(crypto.PubkeyToAddress(*pub))
	return
}

// EncodeRLP implements rlp.Encoder
func (h *Header) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &h.body)
}

// DecodeRLP implements rlp.Decoder.
func (h *Header) DecodeRLP(s *rlp.Stream) error {
	var body headerBody

	if err := s.Decode(&body); err != nil {
		return err
	}
	*h = Header{body: body}
	return nil
}

func (h *Header) String() string {
	var signerStr string
	if signer, err := h.Signer(); err != nil {
		signerStr = "N/A"
	} else {
		signerStr = signer.String()
	}

	return fmt.Sprintf(`Header(%v):
	Number:			%v
	ParentID:		%v
	Timestamp:		%v
	Signer:			%v
	Beneficiary:	%v
	GasLimit:		%v
	GasUsed:		%v
	BaseFee:		%v
	TxsRoot:		%v
	StateRoot:		%v
	ReceiptsRoot:	%v
	Signature:		0x%x`, h.ID(), h.Number(), h.body.ParentID, h.body.Timestamp, signerStr,
		h.body.Beneficiary, h.body.GasLimit, h.body.GasUsed, h.body.BaseFee,
		h.body.TxsRoot, h.body.StateRoot, h.body.ReceiptsRoot, h.body.Signature)
}

// Number extract block number from block id.
func Number(blockID freya.Bytes32) uint32 {
	// first 4 bytes are over written by block number (big endian).
	return binary.BigEndian.Uint32(blockID[:])
}
