package structure

import (
	"errors"

	"github.com/pders01/dsviz/internal/validation"
)

// Request is an operation together with the raw text the learner typed.
// Fields an operation does not use are ignored.
type Request struct {
	Op    Op
	Value string
	Index string
}

// Apply parses the request's text fields and runs the operation. Parse
// failures and operations outside the variant's capability set come back as
// error results; the collection is left untouched in both cases.
func (c *Controller) Apply(req Request) Result {
	if r, bad := c.unsupported(req.Op); bad {
		return r
	}

	switch req.Op {
	case OpAppend:
		value, present, err := validation.ParseOptionalInteger(req.Value)
		if err != nil {
			return failure(opErr(OpAppend, ErrInvalidInput, "%s", MsgInvalidValue))
		}
		if !present {
			return c.AppendAuto()
		}
		return c.Append(value)

	case OpRemoveEnd:
		return c.RemoveEnd()

	case OpRemoveFront:
		return c.RemoveFront()

	case OpInsertAt:
		index, err := validation.ParseInteger(req.Index)
		if err != nil {
			return failure(opErr(OpInsertAt, ErrInvalidInput, "%s", MsgInvalidIndex))
		}
		value, err := validation.ParseInteger(req.Value)
		if errors.Is(err, validation.ErrEmpty) {
			return failure(opErr(OpInsertAt, ErrInvalidInput, "%s", MsgEnterInsertValue))
		}
		if err != nil {
			return failure(opErr(OpInsertAt, ErrInvalidInput, "%s", MsgInvalidValue))
		}
		return c.InsertAt(index, value)

	case OpDeleteAt:
		index, err := validation.ParseInteger(req.Index)
		if err != nil {
			return failure(opErr(OpDeleteAt, ErrInvalidInput, "%s", MsgInvalidIndex))
		}
		return c.DeleteAt(index)

	case OpPeek:
		return c.Peek()

	case OpSearch:
		value, err := validation.ParseInteger(req.Value)
		if errors.Is(err, validation.ErrEmpty) {
			return failure(opErr(OpSearch, ErrInvalidInput, "%s", MsgEnterSearchValue))
		}
		if err != nil {
			return failure(opErr(OpSearch, ErrInvalidInput, "%s", MsgInvalidSearchValue))
		}
		return c.Search(value)

	case OpTraverse:
		return c.Traverse()

	case OpClearSearch:
		return c.ClearSearch()

	case OpClear:
		return c.Clear()

	case OpSetCapacity:
		limit, err := validation.ParseInteger(req.Value)
		if err != nil {
			return failure(opErr(OpSetCapacity, ErrInvalidInput, "%s", msgInvalidLimit(c.variant.Ceiling)))
		}
		return c.SetCapacity(limit)
	}

	return failure(opErr(req.Op, ErrUnsupported, "%s", msgUnsupported(c.variant, req.Op)))
}
