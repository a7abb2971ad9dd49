package service

// Kind tells the handler which response shape an operation produced.
type Kind int

const (
	// KindFound carries data to return verbatim.
	KindFound Kind = iota
	// KindEmpty is a successful write with nothing to echo back.
	KindEmpty
	// KindNotFound means the addressed row does not exist.
	KindNotFound
	// KindError wraps a store failure.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindEmpty:
		return "empty"
	case KindNotFound:
		return "not_found"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one resource operation.
type Outcome struct {
	Kind Kind
	Data any
	Err  error
}

func Found(data any) Outcome {
	return Outcome{Kind: KindFound, Data: data}
}

func Empty() Outcome {
	return Outcome{Kind: KindEmpty}
}

func NotFound() Outcome {
	return Outcome{Kind: KindNotFound}
}

func Failed(err error) Outcome {
	return Outcome{Kind: KindError, Err: err}
}

// Created is the payload of a successful insert.
type Created struct {
	ID int64
}

// Classify maps a store result onto an Outcome:
//   - err set: KindError, whatever else was returned
//   - no data and no rows affected: KindNotFound
//   - no data but rows affected: KindEmpty
//   - otherwise: KindFound with data
//
// Collection reads must not go through Classify. An empty list is a
// result, not an absence, and its operation returns Found directly.
func Classify(err error, data any, rowsAffected int64) Outcome {
	switch {
	case err != nil:
		return Failed(err)
	case data == nil && rowsAffected == 0:
		return NotFound()
	case data == nil:
		return Empty()
	default:
		return Found(data)
	}
}
