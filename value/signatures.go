package value

// Value-structure signatures, the six composite Value variants encoded as
// structures per spec.md §4.3. Unlike message signatures (package message),
// these are fixed-arity: no field count disambiguates between variants
// sharing a signature, because no two value-structures share one.
const (
	SignatureNode                byte = 0x4E
	SignatureRelationship        byte = 0x52
	SignatureUnboundRelationship byte = 0x72
	SignaturePath                byte = 0x50
	SignatureDate                byte = 0x44
	SignatureTime                byte = 0x54
)
