package structure

// ResultKind tags an operation outcome.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultError
	ResultInfo
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	case ResultInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single controller operation.
//
// Value carries the element an operation produced (appended, removed, peeked
// or found) and Index its position, or -1 when no single position applies.
// Err is non-nil exactly when Kind is ResultError.
type Result struct {
	Op    Op
	Kind  ResultKind
	Text  string
	Value int
	Index int
	Err   error
}

// OK reports whether the operation was accepted.
func (r Result) OK() bool { return r.Err == nil }

func success(op Op, value, index int, text string) Result {
	return Result{Op: op, Kind: ResultSuccess, Text: text, Value: value, Index: index}
}

func info(op Op, value, index int, text string) Result {
	return Result{Op: op, Kind: ResultInfo, Text: text, Value: value, Index: index}
}

func failure(err *OpError) Result {
	return Result{Op: err.Op, Kind: ResultError, Text: err.Text, Index: -1, Err: err}
}
