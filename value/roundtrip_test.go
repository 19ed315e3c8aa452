package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRoundTrip(t *testing.T, v Value) {
	t.Helper()

	b, err := Encode(v)
	require.NoError(t, err)

	got, err := Decode(b)
	require.NoError(t, err)

	assert.Equal(t, v, got)
}

func TestRoundTrip_Null(t *testing.T) {
	b, err := Encode(Null)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC0}, b)

	assertRoundTrip(t, Null)
}

func TestRoundTrip_Boolean(t *testing.T) {
	b, err := Encode(Boolean(true))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC3}, b)

	b, err = Encode(Boolean(false))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC2}, b)

	assertRoundTrip(t, Boolean(true))
	assertRoundTrip(t, Boolean(false))
}

func TestRoundTrip_Float(t *testing.T) {
	assertRoundTrip(t, Float(0))
	assertRoundTrip(t, Float(-1.5))
	assertRoundTrip(t, Float(3.14159))
}

func TestRoundTrip_IntegerBoundaries(t *testing.T) {
	boundaries := []int64{
		-17, -16, 0, 127, 128, -128, -129,
		32767, 32768, -32768, -32769,
		2147483647, 2147483648, -2147483648, -2147483649,
		9223372036854775807, -9223372036854775808,
	}

	for _, n := range boundaries {
		assertRoundTrip(t, Integer(n))
	}
}

func TestEncode_IntegerSelectsSmallestWidth(t *testing.T) {
	cases := []struct {
		n    int64
		size int
	}{
		{0, 1},
		{127, 1},
		{-16, 1},
		{-17, 2},
		{-128, 2},
		{128, 3},
		{32767, 3},
		{-32768, 3},
		{32768, 5},
		{2147483647, 5},
		{2147483648, 9},
	}

	for _, c := range cases {
		b, err := Encode(Integer(c.n))
		require.NoError(t, err)
		assert.Len(t, b, c.size, "n=%d", c.n)
	}
}

func TestRoundTrip_Bytes(t *testing.T) {
	for _, n := range []int{0, 15, 16, 255, 256, 65535, 65536} {
		assertRoundTrip(t, Bytes(make([]byte, n)))
	}
}

func TestRoundTrip_String(t *testing.T) {
	for _, n := range []int{0, 15, 16, 255, 256, 65535, 65536} {
		assertRoundTrip(t, String(strings.Repeat("a", n)))
	}
}

func TestRoundTrip_List(t *testing.T) {
	for _, n := range []int{0, 15, 16, 255, 256} {
		elems := make([]Value, n)
		for i := range elems {
			elems[i] = Integer(int64(i))
		}

		assertRoundTrip(t, List(elems))
	}
}

func TestRoundTrip_Map(t *testing.T) {
	m := map[string]Value{
		"a": Integer(1),
		"b": String("x"),
		"c": Boolean(true),
	}

	assertRoundTrip(t, Map(m))

	assertRoundTrip(t, Map(map[string]Value{}))
}

func TestRoundTrip_NestedContainers(t *testing.T) {
	v := List([]Value{
		Map(map[string]Value{"a": List([]Value{Integer(1), Null})}),
		String("x"),
	})

	assertRoundTrip(t, v)
}

func TestRoundTrip_Node(t *testing.T) {
	n := NodeValue(Node{
		ID:         17,
		Labels:     []string{"Person", "Actor"},
		Properties: map[string]Value{"name": String("Alice")},
	})

	assertRoundTrip(t, n)
}

func TestRoundTrip_Relationship(t *testing.T) {
	r := RelationshipValue(Relationship{
		ID:          1,
		StartNodeID: 2,
		EndNodeID:   3,
		Type:        "KNOWS",
		Properties:  map[string]Value{"since": Integer(2020)},
	})

	assertRoundTrip(t, r)
}

func TestRoundTrip_UnboundRelationship(t *testing.T) {
	r := UnboundRelationshipValue(UnboundRelationship{
		ID:         1,
		Type:       "KNOWS",
		Properties: map[string]Value{},
	})

	assertRoundTrip(t, r)
}

func TestRoundTrip_Path(t *testing.T) {
	p := PathValue(Path{
		Nodes: []Node{
			{ID: 1, Labels: []string{}, Properties: map[string]Value{}},
			{ID: 2, Labels: []string{}, Properties: map[string]Value{}},
		},
		Rels:     []UnboundRelationship{{ID: 1, Type: "KNOWS", Properties: map[string]Value{}}},
		Sequence: []int64{1, 1, 1, 2},
	})

	assertRoundTrip(t, p)
}

func TestRoundTrip_Date(t *testing.T) {
	assertRoundTrip(t, DateValue(Date{Days: 19335}))
}

func TestRoundTrip_Time(t *testing.T) {
	assertRoundTrip(t, TimeValue(Time{Nanoseconds: 3600000000000, OffsetSeconds: 3600}))
}

func TestDecode_TinyIntSpansBothSigns(t *testing.T) {
	v, err := Decode([]byte{0x05})
	require.NoError(t, err)
	assert.Equal(t, Integer(5), v)

	v, err = Decode([]byte{0xF5})
	require.NoError(t, err)
	assert.Equal(t, Integer(-11), v)
}

func TestDecode_InvalidMarkerErrors(t *testing.T) {
	_, err := Decode([]byte{0xC4})
	assert.Error(t, err)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := Decode([]byte{0x81, 0xFF})
	assert.Error(t, err)
}

func TestDecode_UnexpectedEOF(t *testing.T) {
	_, err := Decode([]byte{0xD0})
	assert.Error(t, err)
}

func TestDecode_EmptyInputErrors(t *testing.T) {
	_, err := Decode([]byte{})
	assert.Error(t, err)
}
