package value

// Marker is a wire marker byte: the first byte of an encoded value,
// identifying its type and, for small forms, packing its length into the
// low nibble.
//
// Named constants are exposed with a String method in the teacher's
// format.EncodingType/CompressionType style, rather than scattering raw
// byte literals through the codec.
type Marker uint8

const (
	MarkerNull  Marker = 0xC0
	MarkerFloat Marker = 0xC1
	MarkerFalse Marker = 0xC2
	MarkerTrue  Marker = 0xC3

	MarkerInt8  Marker = 0xC8
	MarkerInt16 Marker = 0xC9
	MarkerInt32 Marker = 0xCA
	MarkerInt64 Marker = 0xCB

	MarkerBytes8  Marker = 0xCC
	MarkerBytes16 Marker = 0xCD
	MarkerBytes32 Marker = 0xCE

	MarkerTinyStringBase Marker = 0x80
	MarkerString8        Marker = 0xD0
	MarkerString16       Marker = 0xD1
	MarkerString32       Marker = 0xD2

	MarkerTinyListBase Marker = 0x90
	MarkerList8        Marker = 0xD4
	MarkerList16       Marker = 0xD5
	MarkerList32       Marker = 0xD6

	MarkerTinyMapBase Marker = 0xA0
	MarkerMap8        Marker = 0xD8
	MarkerMap16       Marker = 0xD9
	MarkerMap32       Marker = 0xDA

	MarkerTinyStructBase Marker = 0xB0
	MarkerStruct8        Marker = 0xDC
	MarkerStruct16       Marker = 0xDD
)

// Tiny-form ranges: the low nibble of the marker packs a length 0-15.
const (
	tinyStringHigh = 0x8F
	tinyListHigh   = 0x9F
	tinyMapHigh    = 0xAF
	tinyStructHigh = 0xBF
)

// tinyIntMin and tinyIntMax bound the signed single-byte "tiny int" form,
// which shares its wire range with the 0x80..0xFF unsigned byte space; the
// structural marker ranges above are checked first, and only a byte that
// matches none of them falls into the tiny-int branch (spec.md §4.2's
// tie-break policy).
const (
	tinyIntMin int8 = -16
	tinyIntMax int8 = 127
)

func (m Marker) String() string {
	switch {
	case m == MarkerNull:
		return "Null"
	case m == MarkerFloat:
		return "Float"
	case m == MarkerFalse:
		return "False"
	case m == MarkerTrue:
		return "True"
	case m == MarkerInt8:
		return "Int8"
	case m == MarkerInt16:
		return "Int16"
	case m == MarkerInt32:
		return "Int32"
	case m == MarkerInt64:
		return "Int64"
	case m == MarkerBytes8:
		return "Bytes8"
	case m == MarkerBytes16:
		return "Bytes16"
	case m == MarkerBytes32:
		return "Bytes32"
	case byte(m) >= byte(MarkerTinyStringBase) && byte(m) <= tinyStringHigh:
		return "TinyString"
	case m == MarkerString8:
		return "String8"
	case m == MarkerString16:
		return "String16"
	case m == MarkerString32:
		return "String32"
	case byte(m) >= byte(MarkerTinyListBase) && byte(m) <= tinyListHigh:
		return "TinyList"
	case m == MarkerList8:
		return "List8"
	case m == MarkerList16:
		return "List16"
	case m == MarkerList32:
		return "List32"
	case byte(m) >= byte(MarkerTinyMapBase) && byte(m) <= tinyMapHigh:
		return "TinyMap"
	case m == MarkerMap8:
		return "Map8"
	case m == MarkerMap16:
		return "Map16"
	case m == MarkerMap32:
		return "Map32"
	case byte(m) >= byte(MarkerTinyStructBase) && byte(m) <= tinyStructHigh:
		return "TinyStruct"
	case m == MarkerStruct8:
		return "Struct8"
	case m == MarkerStruct16:
		return "Struct16"
	default:
		return "TinyInt"
	}
}
