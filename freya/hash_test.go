// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package freya

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlake2b(t *testing.T) {
	data := []byte("the quick brown fox")

	direct := Blake2b(data)

	hw := NewBlake2b()
	hw.Write(data)
	var sum Bytes32
	hw.Sum(sum[:0])
	assert.Equal(t, direct, sum)

	viaFn := Blake2bFn(func(w io.Writer) {
		w.Write(data)
	})
	assert.Equal(t, direct, viaFn)

	// multi-part input hashes the concatenation
	assert.Equal(t, direct, Blake2b([]byte("the quick"), []byte(" brown fox")))
}

func BenchmarkBlake2b(b *testing.B) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	for b.Loop() {
		Blake2b(data)
	}
}
