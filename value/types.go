package value

// Node is the payload of a Value of KindNode: (id, labels, properties).
type Node struct {
	ID         int64
	Labels     []string
	Properties map[string]Value
}

// Relationship is the payload of a Value of KindRelationship:
// (id, start_node_id, end_node_id, type, properties).
type Relationship struct {
	ID            int64
	StartNodeID   int64
	EndNodeID     int64
	Type          string
	Properties    map[string]Value
}

// UnboundRelationship is the payload of a Value of
// KindUnboundRelationship: (id, type, properties). It is also the element
// type of Path.Rels.
type UnboundRelationship struct {
	ID         int64
	Type       string
	Properties map[string]Value
}

// Path is the payload of a Value of KindPath: (nodes, rels, sequence).
// Sequence alternates relationship indices and node indices per the Bolt
// spec; this codec preserves it verbatim without interpreting it.
type Path struct {
	Nodes    []Node
	Rels     []UnboundRelationship
	Sequence []int64
}

// Date is the payload of a Value of KindDate: days since the Unix epoch,
// signed.
type Date struct {
	Days int64
}

// Time is the payload of a Value of KindTime: nanoseconds since midnight
// plus an offset in seconds from UTC.
type Time struct {
	Nanoseconds   int64
	OffsetSeconds int32
}
