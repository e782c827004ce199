package structure

import "strings"

// Op identifies a controller operation.
type Op int

const (
	OpAppend Op = iota
	OpRemoveEnd
	OpRemoveFront
	OpInsertAt
	OpDeleteAt
	OpPeek
	OpSearch
	OpTraverse
	OpClearSearch
	OpClear
	OpSetCapacity
)

var opNames = map[Op]string{
	OpAppend:      "append",
	OpRemoveEnd:   "remove_end",
	OpRemoveFront: "remove_front",
	OpInsertAt:    "insert_at",
	OpDeleteAt:    "delete_at",
	OpPeek:        "peek",
	OpSearch:      "search",
	OpTraverse:    "traverse",
	OpClearSearch: "clear_search",
	OpClear:       "clear",
	OpSetCapacity: "set_capacity",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOp maps a configuration name such as "remove_front" to its Op.
func ParseOp(name string) (Op, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for op, n := range opNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// OpSet is a set of operations encoded as a bit mask.
type OpSet uint32

// alwaysAvailable lists the operations every variant supports regardless of
// its configured capabilities.
const alwaysAvailable = OpSet(1<<OpClearSearch | 1<<OpClear | 1<<OpSetCapacity)

// NewOpSet returns a set holding ops.
func NewOpSet(ops ...Op) OpSet {
	var s OpSet
	for _, op := range ops {
		s |= 1 << op
	}
	return s
}

func (s OpSet) Has(op Op) bool { return s&(1<<op) != 0 }

// Ops lists the members of s in declaration order.
func (s OpSet) Ops() []Op {
	var ops []Op
	for op := OpAppend; op <= OpSetCapacity; op++ {
		if s.Has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}
