// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"encoding/binary"
	"errors"
	"io"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/freyachain/freya/freya"
)

// Transaction types.
const (
	TypeLegacy     = byte(0x00)
	TypeDynamicFee = byte(0x51)
)

// ErrTxTypeNotSupported is returned when decoding an unknown tx type.
var ErrTxTypeNotSupported = errors.New("transaction type not supported")

// Transaction is an immutable tx type.
type Transaction struct {
	body TxData

	cache struct {
		signingHash atomic.Value
		origin      atomic.Value
		id          atomic.Value
	}
}

// TxData describes details of a tx kind.
type TxData interface {
	txType() byte
	copy() TxData

	chainTag() byte
	blockRef() uint64
	expiration() uint32
	clauses() []*Clause
	gas() uint64
	maxFeePerGas() *big.Int
	maxPriorityFeePerGas() *big.Int
	dependsOn() *freya.Bytes32
	nonce() uint64

	signature() []byte
	setSignature(sig []byte)

	signingFields() []any
}

// NewTransaction wraps the given tx data into an immutable transaction.
func NewTransaction(data TxData) *Transaction {
	return &Transaction{body: data.copy()}
}

// Type returns the type tag of the tx.
func (t *Transaction) Type() byte {
	return t.body.txType()
}

// ChainTag returns chain tag.
func (t *Transaction) ChainTag() byte {
	return t.body.chainTag()
}

// BlockRef returns block reference, which is the first 8 bytes of referenced block ID.
func (t *Transaction) BlockRef() (br BlockRef) {
	binary.BigEndian.PutUint64(br[:], t.body.blockRef())
	return
}

// Expiration returns expiration in unit block.
// A valid transaction requires:
// blockRef.Number() <= blockNum && blockNum <= blockRef.Number() + expiration
func (t *Transaction) Expiration() uint32 {
	return t.body.expiration()
}

// IsExpired returns whether the tx is expired according to the given blockNum.
func (t *Transaction) IsExpired(blockNum uint32) bool {
	return uint64(blockNum) > uint64(t.BlockRef().Number())+uint64(t.body.expiration()) // cast to uint64 to prevent potential overflow
}

// Clauses returns clauses in tx.
func (t *Transaction) Clauses() []*Clause {
	clauses := t.body.clauses()
	cpy := make([]*Clause, len(clauses))
	copy(cpy, clauses)
	return cpy
}

// Gas returns gas provision for this tx.
func (t *Transaction) Gas() uint64 {
	return t.body.gas()
}

// MaxFeePerGas returns max fee per gas.
func (t *Transaction) MaxFeePerGas() *big.Int {
	return t.body.maxFeePerGas()
}

// MaxPriorityFeePerGas returns max priority fee per gas.
func (t *Transaction) MaxPriorityFeePerGas() *big.Int {
	return t.body.maxPriorityFeePerGas()
}

// DependsOn returns ID of tx the tx depends on.
func (t *Transaction) DependsOn() *freya.Bytes32 {
	if dep := t.body.dependsOn(); dep != nil {
		cpy := *dep
		return &cpy
	}
	return nil
}

// Nonce returns nonce value.
func (t *Transaction) Nonce() uint64 {
	return t.body.nonce()
}

// Signature returns signature.
func (t *Transaction) Signature() []byte {
	return append([]byte(nil), t.body.signature()...)
}

// SigningHash returns hash of the tx excluding signature.
func (t *Transaction) SigningHash() (hash freya.Bytes32) {
	if cached := t.cache.signingHash.Load(); cached != nil {
		return cached.(freya.Bytes32)
	}
	defer func() { t.cache.signingHash.Store(hash) }()

	return freya.Blake2bFn(func(w io.Writer) {
		if t.Type() != TypeLegacy {
			w.Write([]byte{t.Type()})
		}
		rlp.Encode(w, t.body.signingFields())
	})
}

// Origin extracts the address of the tx originator from its signature.
func (t *Transaction) Origin() (freya.Address, error) {
	if cached := t.cache.origin.Load(); cached != nil {
		return cached.(freya.Address), nil
	}

	pub, err := crypto.SigToPub(t.SigningHash().Bytes(), t.body.signature())
	if err != nil {
		return freya.Address{}, err
	}
	origin := freya.Address(crypto.PubkeyToAddress(*pub))
	t.cache.origin.Store(origin)
	return origin, nil
}

// ID returns the identifier of the tx.
// ID = blake2b(signingHash ‖ origin).
func (t *Transaction) ID() (id freya.Bytes32, err error) {
	if cached := t.cache.id.Load(); cached != nil {
		return cached.(freya.Bytes32), nil
	}
	origin, err := t.Origin()
	if err != nil {
		return freya.Bytes32{}, err
	}
	id = freya.Blake2b(t.SigningHash().Bytes(), origin.Bytes())
	t.cache.id.Store(id)
	return id, nil
}

// WithSignature create a new tx with signature set.
func (t *Transaction) WithSignature(sig []byte) *Transaction {
	body := t.body.copy()
	body.setSignature(append([]byte(nil), sig...))
	return &Transaction{body: body}
}

// EncodeRLP implements rlp.Encoder.
// A legacy tx is encoded as a bare RLP list, a typed one as
// a byte string of type tag followed by the RLP encoded body.
func (t *Transaction) EncodeRLP(w io.Writer) error {
	if t.Type() == TypeLegacy {
		return rlp.Encode(w, t.body)
	}
	inner, err := rlp.EncodeToBytes(t.body)
	if err != nil {
		return err
	}
	return rlp.Encode(w, append([]byte{t.Type()}, inner...))
}

// DecodeRLP implements rlp.Decoder.
func (t *Transaction) DecodeRLP(s *rlp.Stream) error {
	kind, _, err := s.Kind()
	if err != nil {
		return err
	}

	if kind == rlp.List {
		// legacy tx
		var body LegacyTransaction
		if err := s.Decode(&body); err != nil {
			return err
		}
		*t = Transaction{body: &body}
		return nil
	}

	// typed tx, wrapped as a byte string
	raw, err := s.Bytes()
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("typed tx too short")
	}
	switch raw[0] {
	case TypeDynamicFee:
		var body DynamicFeeTransaction
		if err := rlp.DecodeBytes(raw[1:], &body); err != nil {
			return err
		}
		*t = Transaction{body: &body}
		return nil
	default:
		return ErrTxTypeNotSupported
	}
}

// BlockRef is block reference.
type BlockRef [8]byte

// Number extracts block number.
func (br BlockRef) Number() uint32 {
	return binary.BigEndian.Uint32(br[:])
}

// NewBlockRef create block reference with block number.
func NewBlockRef(blockNum uint32) (br BlockRef) {
	binary.BigEndian.PutUint32(br[:], blockNum)
	return
}
