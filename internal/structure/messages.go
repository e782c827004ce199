package structure

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical texts shared across variants.
const (
	MsgEnterSearchValue   = "Enter a value to search."
	MsgInvalidSearchValue = "Please enter a valid integer to search."
	MsgInvalidValue       = "Please enter a valid integer value."
	MsgEnterInsertValue   = "Enter a value to insert."
	MsgInvalidIndex       = "Please enter a valid index."
	MsgSearchCleared      = "Search cleared."
)

func msgInvalidLimit(ceiling int) string {
	return fmt.Sprintf("Please set a valid limit (1-%d).", ceiling)
}

func msgLimitAboveCeiling(v Variant) string {
	return fmt.Sprintf("%s limit must be %d or less.", v.Label(), v.Ceiling)
}

func msgLimitBelowSize(v Variant, size int) string {
	return fmt.Sprintf("Limit must be at least %d (current %s size).", size, v.Noun)
}

func msgFull(v Variant) string {
	return fmt.Sprintf("%s size limit reached. Cannot %s more items.", v.Label(), v.AppendVerb)
}

func msgEmptyRemove(v Variant) string {
	text := fmt.Sprintf("%s is empty. Cannot %s items.", v.Label(), v.RemoveVerb)
	if v.Underflow != "" {
		text = v.Underflow + " " + text
	}
	return text
}

func msgAppended(v Variant, value, size int) string {
	return fmt.Sprintf("Value %d %s successfully! New size: %d", value, v.AppendPast, size)
}

func msgRemoved(v Variant, value, size int) string {
	return fmt.Sprintf("Value %d %s successfully! New size: %d", value, v.RemovePast, size)
}

func msgIndexRange(op Op, size int) string {
	if op == OpDeleteAt {
		return fmt.Sprintf("Index must be between 0 and %d.", size-1)
	}
	return fmt.Sprintf("Index must be between 0 and %d.", size)
}

func msgInserted(value, index, size int) string {
	return fmt.Sprintf("Value %d inserted at index %d! New size: %d", value, index, size)
}

func msgDeletedAt(value, index, size int) string {
	return fmt.Sprintf("Value %d deleted from index %d! New size: %d", value, index, size)
}

func msgEmptyDelete(v Variant) string {
	return fmt.Sprintf("%s is empty. Nothing to delete.", v.Label())
}

func msgPeek(v Variant, value int) string {
	return fmt.Sprintf("%s element is: %d", v.PeekLabel, value)
}

func msgEmptyPeek(v Variant) string {
	return fmt.Sprintf("%s is empty. Nothing to peek.", v.Label())
}

func msgFound(v Variant, value, index int) string {
	if v.PositionBase == 1 {
		return fmt.Sprintf("Value %d found at position %d (from head).", value, index+1)
	}
	return fmt.Sprintf("Value %d found at index %d!", value, index)
}

func msgNotFound(v Variant, value int) string {
	return fmt.Sprintf("Value %d not found in the %s.", value, v.Noun)
}

func msgCleared(v Variant) string {
	return fmt.Sprintf("%s cleared successfully!", v.Label())
}

func msgAlreadyEmpty(v Variant) string {
	return fmt.Sprintf("%s is already empty.", v.Label())
}

func msgLimitSet(limit int) string {
	return fmt.Sprintf("Limit set to %d.", limit)
}

func msgTraversal(items []int) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = strconv.Itoa(it)
	}
	return "Traversal (Head → Tail): " + strings.Join(parts, " → ")
}

func msgEmptyTraverse(v Variant) string {
	return fmt.Sprintf("%s is empty.", v.Label())
}

func msgUnsupported(v Variant, op Op) string {
	return fmt.Sprintf("%s does not support %s.", v.Label(), strings.ReplaceAll(op.String(), "_", " "))
}
