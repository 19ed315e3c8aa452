package message

import (
	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/iobuf"
	"github.com/boltwire/boltcodec/structure"
	"github.com/boltwire/boltcodec/value"
)

// Decode reads and returns a single Message from data, which must contain
// exactly one encoded message. version is not consulted on decode: a peer
// may legitimately send a message the caller's negotiated version doesn't
// expect (e.g. a Failure while the client thinks it's mid-Run), and
// rejecting on decode rather than at the call site would discard
// information the caller may want to log.
func Decode(data []byte) (m Message, err error) {
	defer iobuf.RecoverDecode(&err)

	r := iobuf.NewReader(data)

	return ReadFrom(r)
}

// ReadFrom decodes a single Message from r, advancing r's cursor past it.
func ReadFrom(r *iobuf.Reader) (Message, error) {
	marker, err := r.ReadByte()
	if err != nil {
		return Message{}, err
	}

	header, err := structure.ReadHeader(r, marker)
	if err != nil {
		return Message{}, err
	}

	switch {
	case header.Signature == sigHelloOrInit && header.Count == 1:
		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Hello(metadata), nil
	case header.Signature == sigHelloOrInit && header.Count == 2:
		name, err := readString(r)
		if err != nil {
			return Message{}, err
		}

		auth, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Init(name, auth), nil
	case header.Signature == sigRunOrRunWithMeta && header.Count == 2:
		stmt, err := readString(r)
		if err != nil {
			return Message{}, err
		}

		params, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Run(stmt, params), nil
	case header.Signature == sigRunOrRunWithMeta && header.Count == 3:
		stmt, err := readString(r)
		if err != nil {
			return Message{}, err
		}

		params, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return RunWithMetadata(stmt, params, metadata), nil
	case header.Signature == sigDiscardAllOrDiscard && header.Count == 0:
		return DiscardAll(), nil
	case header.Signature == sigDiscardAllOrDiscard && header.Count == 1:
		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Discard(metadata), nil
	case header.Signature == sigPullAllOrPull && header.Count == 0:
		return PullAll(), nil
	case header.Signature == sigPullAllOrPull && header.Count == 1:
		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Pull(metadata), nil
	case header.Signature == sigAckFailure && header.Count == 0:
		return AckFailure(), nil
	case header.Signature == sigReset && header.Count == 0:
		return Reset(), nil
	case header.Signature == sigRecord && header.Count == 1:
		fields, err := readFieldList(r)
		if err != nil {
			return Message{}, err
		}

		return Record(fields), nil
	case header.Signature == sigSuccess && header.Count == 1:
		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Success(metadata), nil
	case header.Signature == sigFailure && header.Count == 1:
		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Failure(metadata), nil
	case header.Signature == sigIgnored && header.Count == 0:
		return Ignored(), nil
	case header.Signature == sigGoodbye && header.Count == 0:
		return Goodbye(), nil
	case header.Signature == sigBegin && header.Count == 1:
		metadata, err := readMap(r)
		if err != nil {
			return Message{}, err
		}

		return Begin(metadata), nil
	case header.Signature == sigCommit && header.Count == 0:
		return Commit(), nil
	case header.Signature == sigRollback && header.Count == 0:
		return Rollback(), nil
	default:
		return Message{}, &errs.InvalidSignatureError{Signature: header.Signature, Count: header.Count}
	}
}

func readMap(r *iobuf.Reader) (map[string]value.Value, error) {
	v, err := value.ReadFrom(r)
	if err != nil {
		return nil, err
	}

	return v.Map(), nil
}

func readString(r *iobuf.Reader) (string, error) {
	v, err := value.ReadFrom(r)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

func readFieldList(r *iobuf.Reader) ([]value.Value, error) {
	v, err := value.ReadFrom(r)
	if err != nil {
		return nil, err
	}

	return v.List(), nil
}
