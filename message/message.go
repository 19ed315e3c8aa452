// Package message implements the 18-variant Bolt protocol message codec of
// spec.md §3.2/§4.3/§4.5: each message is itself a structure (package
// structure) whose fields are values (package value).
package message

import "github.com/boltwire/boltcodec/value"

// Version identifies a negotiated Bolt protocol version.
type Version uint32

const (
	Version1 Version = 1
	Version3 Version = 3
	Version4 Version = 4
)

// Signature bytes, per spec.md §4.3/§6.2.
const (
	sigHelloOrInit         byte = 0x01
	sigRunOrRunWithMeta    byte = 0x10
	sigDiscardAllOrDiscard byte = 0x2F
	sigPullAllOrPull       byte = 0x3F
	sigAckFailure          byte = 0x0E
	sigReset               byte = 0x0F
	sigRecord              byte = 0x71
	sigSuccess             byte = 0x70
	sigFailure             byte = 0x7F
	sigIgnored             byte = 0x7E
	sigGoodbye             byte = 0x02
	sigBegin               byte = 0x11
	sigCommit              byte = 0x12
	sigRollback            byte = 0x13
)

// Kind identifies which of the 18 message variants a Message holds.
type Kind uint8

const (
	KindHello Kind = iota
	KindInit
	KindRun
	KindRunWithMetadata
	KindDiscardAll
	KindDiscard
	KindPullAll
	KindPull
	KindAckFailure
	KindReset
	KindRecord
	KindSuccess
	KindFailure
	KindIgnored
	KindGoodbye
	KindBegin
	KindCommit
	KindRollback
)

func (k Kind) String() string {
	switch k {
	case KindHello:
		return "Hello"
	case KindInit:
		return "Init"
	case KindRun:
		return "Run"
	case KindRunWithMetadata:
		return "RunWithMetadata"
	case KindDiscardAll:
		return "DiscardAll"
	case KindDiscard:
		return "Discard"
	case KindPullAll:
		return "PullAll"
	case KindPull:
		return "Pull"
	case KindAckFailure:
		return "AckFailure"
	case KindReset:
		return "Reset"
	case KindRecord:
		return "Record"
	case KindSuccess:
		return "Success"
	case KindFailure:
		return "Failure"
	case KindIgnored:
		return "Ignored"
	case KindGoodbye:
		return "Goodbye"
	case KindBegin:
		return "Begin"
	case KindCommit:
		return "Commit"
	case KindRollback:
		return "Rollback"
	default:
		return "Unknown"
	}
}

// MinVersion reports the earliest protocol version under which k is legal,
// per spec.md §3.2's version grouping.
func (k Kind) MinVersion() Version {
	switch k {
	case KindHello, KindGoodbye, KindRunWithMetadata, KindBegin, KindCommit, KindRollback:
		return Version3
	case KindDiscard, KindPull:
		return Version4
	default:
		return Version1
	}
}

// Message is the closed 18-variant Bolt message sum type.
type Message struct {
	kind Kind

	clientName string
	auth       map[string]value.Value
	metadata   map[string]value.Value
	statement  string
	params     map[string]value.Value
	fields     []value.Value
}

// Hello constructs a Hello message (V3+).
func Hello(metadata map[string]value.Value) Message {
	return Message{kind: KindHello, metadata: metadata}
}

// Init constructs an Init message (V1+).
func Init(clientName string, auth map[string]value.Value) Message {
	return Message{kind: KindInit, clientName: clientName, auth: auth}
}

// Run constructs a Run message (V1+).
func Run(statement string, params map[string]value.Value) Message {
	return Message{kind: KindRun, statement: statement, params: params}
}

// RunWithMetadata constructs a RunWithMetadata message (V3+).
func RunWithMetadata(statement string, params, metadata map[string]value.Value) Message {
	return Message{kind: KindRunWithMetadata, statement: statement, params: params, metadata: metadata}
}

// DiscardAll constructs a DiscardAll message (V1+).
func DiscardAll() Message { return Message{kind: KindDiscardAll} }

// Discard constructs a Discard message (V4+).
func Discard(metadata map[string]value.Value) Message {
	return Message{kind: KindDiscard, metadata: metadata}
}

// PullAll constructs a PullAll message (V1+).
func PullAll() Message { return Message{kind: KindPullAll} }

// Pull constructs a Pull message (V4+).
func Pull(metadata map[string]value.Value) Message {
	return Message{kind: KindPull, metadata: metadata}
}

// AckFailure constructs an AckFailure message (V1+).
func AckFailure() Message { return Message{kind: KindAckFailure} }

// Reset constructs a Reset message (V1+).
func Reset() Message { return Message{kind: KindReset} }

// Record constructs a Record message (V1+).
func Record(fields []value.Value) Message { return Message{kind: KindRecord, fields: fields} }

// Success constructs a Success message (V1+).
func Success(metadata map[string]value.Value) Message {
	return Message{kind: KindSuccess, metadata: metadata}
}

// Failure constructs a Failure message (V1+).
func Failure(metadata map[string]value.Value) Message {
	return Message{kind: KindFailure, metadata: metadata}
}

// Ignored constructs an Ignored message (V1+).
func Ignored() Message { return Message{kind: KindIgnored} }

// Goodbye constructs a Goodbye message (V3+).
func Goodbye() Message { return Message{kind: KindGoodbye} }

// Begin constructs a Begin message (V3+).
func Begin(metadata map[string]value.Value) Message {
	return Message{kind: KindBegin, metadata: metadata}
}

// Commit constructs a Commit message (V3+).
func Commit() Message { return Message{kind: KindCommit} }

// Rollback constructs a Rollback message (V3+).
func Rollback() Message { return Message{kind: KindRollback} }

// Kind reports which variant this Message holds.
func (m Message) Kind() Kind { return m.kind }

// ClientName returns the Init field, valid only for KindInit.
func (m Message) ClientName() string { return m.clientName }

// Auth returns the Init field, valid only for KindInit.
func (m Message) Auth() map[string]value.Value { return m.auth }

// Metadata returns the metadata field, valid for Hello/RunWithMetadata/
// Discard/Pull/Success/Failure/Begin.
func (m Message) Metadata() map[string]value.Value { return m.metadata }

// Statement returns the Run/RunWithMetadata field.
func (m Message) Statement() string { return m.statement }

// Params returns the Run/RunWithMetadata field.
func (m Message) Params() map[string]value.Value { return m.params }

// Fields returns the Record field.
func (m Message) Fields() []value.Value { return m.fields }
