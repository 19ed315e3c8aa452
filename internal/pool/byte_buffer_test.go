package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3})
	bb.MustWriteByte(4)
	assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_GrowDoesNotLoseData(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWrite([]byte{1, 2})
	bb.Grow(100)
	assert.GreaterOrEqual(t, bb.Cap(), 102)
	bb.MustWrite([]byte{3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
}

func TestByteBuffer_GrowRoundsUpToChunkQuantum(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.Grow(1)
	assert.Equal(t, growthQuantum, bb.Cap())

	bb2 := NewByteBuffer(0)
	bb2.Grow(growthQuantum + 1)
	assert.Equal(t, 2*growthQuantum, bb2.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3})
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 4)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("hello"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, "hello", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := p.Get()
	bb.Grow(100)
	bb.MustWrite(make([]byte, 100))
	p.Put(bb) // exceeds maxThreshold, should be discarded rather than pooled

	bb2 := p.Get()
	assert.Less(t, bb2.Cap(), 100)
}

func TestMessageAndChunkBufferHelpers(t *testing.T) {
	mb := GetMessageBuffer()
	mb.MustWrite([]byte("Init"))
	PutMessageBuffer(mb)

	cb := GetChunkBuffer()
	cb.MustWrite([]byte{0x00, 0x01})
	PutChunkBuffer(cb)
}
