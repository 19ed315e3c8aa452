package message

import (
	"fmt"

	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/iobuf"
	"github.com/boltwire/boltcodec/structure"
	"github.com/boltwire/boltcodec/value"
)

// Encode returns the wire encoding of m under the given negotiated version,
// failing with ErrUnsupportedForVersion if m's variant is not legal under
// version.
func Encode(m Message, version Version) ([]byte, error) {
	if m.kind.MinVersion() > version {
		return nil, fmt.Errorf("message: encode %s: %w (requires >= %d, negotiated %d)",
			m.kind, errs.ErrUnsupportedForVersion, m.kind.MinVersion(), version)
	}

	w := iobuf.NewWriter()
	defer w.Release()

	if err := WriteTo(w, m); err != nil {
		return nil, err
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

// WriteTo encodes m into w without a version check; Encode calls it after
// its own check, and callers that have already validated m's legality for
// the negotiated version may call it directly.
func WriteTo(w *iobuf.Writer, m Message) error {
	switch m.kind {
	case KindHello:
		return writeStruct(w, 1, sigHelloOrInit, value.Map(m.metadata))
	case KindInit:
		return writeStruct(w, 2, sigHelloOrInit, value.String(m.clientName), value.Map(m.auth))
	case KindRun:
		return writeStruct(w, 2, sigRunOrRunWithMeta, value.String(m.statement), value.Map(m.params))
	case KindRunWithMetadata:
		return writeStruct(w, 3, sigRunOrRunWithMeta, value.String(m.statement), value.Map(m.params), value.Map(m.metadata))
	case KindDiscardAll:
		return writeStruct(w, 0, sigDiscardAllOrDiscard)
	case KindDiscard:
		return writeStruct(w, 1, sigDiscardAllOrDiscard, value.Map(m.metadata))
	case KindPullAll:
		return writeStruct(w, 0, sigPullAllOrPull)
	case KindPull:
		return writeStruct(w, 1, sigPullAllOrPull, value.Map(m.metadata))
	case KindAckFailure:
		return writeStruct(w, 0, sigAckFailure)
	case KindReset:
		return writeStruct(w, 0, sigReset)
	case KindRecord:
		return writeStruct(w, 1, sigRecord, value.List(m.fields))
	case KindSuccess:
		return writeStruct(w, 1, sigSuccess, value.Map(m.metadata))
	case KindFailure:
		return writeStruct(w, 1, sigFailure, value.Map(m.metadata))
	case KindIgnored:
		return writeStruct(w, 0, sigIgnored)
	case KindGoodbye:
		return writeStruct(w, 0, sigGoodbye)
	case KindBegin:
		return writeStruct(w, 1, sigBegin, value.Map(m.metadata))
	case KindCommit:
		return writeStruct(w, 0, sigCommit)
	case KindRollback:
		return writeStruct(w, 0, sigRollback)
	default:
		return fmt.Errorf("message: encode: unknown kind %v", m.kind)
	}
}

func writeStruct(w *iobuf.Writer, fieldCount int, signature byte, fields ...value.Value) error {
	if err := structure.WriteHeader(w, fieldCount, signature); err != nil {
		return err
	}

	for _, f := range fields {
		if err := value.WriteTo(w, f); err != nil {
			return err
		}
	}

	return nil
}
