package iobuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_RoundTripWidths(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteUint8(0xAB)
	w.WriteUint16(0x1234)
	w.WriteUint32(0x01020304)
	w.WriteUint64(0x0102030405060708)
	w.WriteFloat64(0)
	w.WriteBytes([]byte("hi"))

	r := NewReader(w.Bytes())

	u8, err := r.ReadUint8()
	assert.NoError(t, err)
	assert.EqualValues(t, 0xAB, u8)

	u16, err := r.ReadUint16()
	assert.NoError(t, err)
	assert.EqualValues(t, 0x1234, u16)

	u32, err := r.ReadUint32()
	assert.NoError(t, err)
	assert.EqualValues(t, 0x01020304, u32)

	u64, err := r.ReadUint64()
	assert.NoError(t, err)
	assert.EqualValues(t, 0x0102030405060708, u64)

	f, err := r.ReadFloat64()
	assert.NoError(t, err)
	assert.Equal(t, float64(0), f)

	tail, err := r.ReadExact(2)
	assert.NoError(t, err)
	assert.Equal(t, "hi", string(tail))
}

func TestWriter_SignedWidths(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteInt8(-1)
	w.WriteInt16(-2)
	w.WriteInt32(-3)
	w.WriteInt64(-4)

	r := NewReader(w.Bytes())

	i8, _ := r.ReadInt8()
	assert.EqualValues(t, -1, i8)
	i16, _ := r.ReadInt16()
	assert.EqualValues(t, -2, i16)
	i32, _ := r.ReadInt32()
	assert.EqualValues(t, -3, i32)
	i64, _ := r.ReadInt64()
	assert.EqualValues(t, -4, i64)
}
