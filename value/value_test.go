package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boltwire/boltcodec/errs"
)

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindNull, v.Kind())
	assert.Equal(t, KindNull, Null.Kind())
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, true, Boolean(true).Boolean())
	assert.Equal(t, int64(42), Integer(42).Integer())
	assert.Equal(t, 3.5, Float(3.5).Float())
	assert.Equal(t, []byte{1, 2}, Bytes([]byte{1, 2}).Bytes())
	assert.Equal(t, "hi", String("hi").String())

	list := List([]Value{Integer(1), Integer(2)})
	assert.Len(t, list.List(), 2)

	m := Map(map[string]Value{"a": Integer(1)})
	assert.Equal(t, Integer(1), m.Map()["a"])
}

func TestValue_Hashable(t *testing.T) {
	assert.True(t, Integer(1).Hashable())
	assert.True(t, String("x").Hashable())
	assert.False(t, Float(1.5).Hashable())

	assert.False(t, List([]Value{Integer(1), Float(2)}).Hashable())
	assert.True(t, List([]Value{Integer(1), String("a")}).Hashable())

	assert.False(t, Map(map[string]Value{"a": Float(1)}).Hashable())

	node := NodeValue(Node{ID: 1, Labels: []string{"A"}, Properties: map[string]Value{"x": Float(1)}})
	assert.False(t, node.Hashable())

	node2 := NodeValue(Node{ID: 1, Labels: []string{"A"}, Properties: map[string]Value{"x": Integer(1)}})
	assert.True(t, node2.Hashable())

	path := PathValue(Path{
		Nodes: []Node{{ID: 1, Properties: map[string]Value{"f": Float(1)}}},
	})
	assert.False(t, path.Hashable())
}

func TestValue_Key(t *testing.T) {
	k1, err := Integer(5).Key()
	require.NoError(t, err)

	k2, err := Integer(5).Key()
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := Integer(6).Key()
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	_, err = Float(1.5).Key()
	assert.True(t, errors.Is(err, errs.ErrValueNotHashable))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Null", KindNull.String())
	assert.Equal(t, "Time", KindTime.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
