// Package structure implements the bounded collection shown on every
// demonstration page: a capacity-limited sequence of integers whose
// operations validate their input, apply atomically and report a
// learner-facing Result.
//
// A Controller is owned by a single UI loop and is not safe for concurrent
// use.
package structure

// noHighlight marks the absence of a search or peek highlight.
const noHighlight = -1

// Controller owns one collection and its capacity.
type Controller struct {
	variant   Variant
	items     []int
	capacity  int
	highlight int
}

// New creates a controller seeded from v. The variant is expected to come
// from a Catalog, which has already validated it.
func New(v Variant) *Controller {
	room := v.Ceiling
	if room < len(v.Seed) {
		room = len(v.Seed)
	}
	items := make([]int, len(v.Seed), room)
	copy(items, v.Seed)
	return &Controller{
		variant:   v,
		items:     items,
		capacity:  v.Capacity,
		highlight: noHighlight,
	}
}

func (c *Controller) Variant() Variant { return c.variant }

func (c *Controller) Len() int { return len(c.items) }

func (c *Controller) Capacity() int { return c.capacity }

// Items returns a copy of the collection in logical order.
func (c *Controller) Items() []int {
	out := make([]int, len(c.items))
	copy(out, c.items)
	return out
}

// Highlight returns the highlighted index, if any.
func (c *Controller) Highlight() (int, bool) {
	if c.highlight == noHighlight {
		return 0, false
	}
	return c.highlight, true
}

// NextAutoValue returns the smallest positive integer not in the collection.
func (c *Controller) NextAutoValue() int {
	present := make(map[int]struct{}, len(c.items))
	for _, it := range c.items {
		present[it] = struct{}{}
	}
	v := 1
	for {
		if _, ok := present[v]; !ok {
			return v
		}
		v++
	}
}

// checkRoom validates the capacity setting and that one more item fits.
func (c *Controller) checkRoom(op Op) *OpError {
	switch {
	case c.capacity <= 0:
		return opErr(op, ErrInvalidInput, "%s", msgInvalidLimit(c.variant.Ceiling))
	case c.capacity > c.variant.Ceiling:
		return opErr(op, ErrCapacityExceeded, "%s", msgLimitAboveCeiling(c.variant))
	case len(c.items) >= c.capacity:
		return opErr(op, ErrCapacityExceeded, "%s", msgFull(c.variant))
	}
	return nil
}

func (c *Controller) unsupported(op Op) (Result, bool) {
	if c.variant.Supports(op) {
		return Result{}, false
	}
	return failure(opErr(op, ErrUnsupported, "%s", msgUnsupported(c.variant, op))), true
}

// AppendAuto appends NextAutoValue.
func (c *Controller) AppendAuto() Result {
	return c.Append(c.NextAutoValue())
}

// Append adds value at the end (array), top (stack) or rear (queue).
func (c *Controller) Append(value int) Result {
	if r, bad := c.unsupported(OpAppend); bad {
		return r
	}
	if err := c.checkRoom(OpAppend); err != nil {
		return failure(err)
	}
	c.items = append(c.items, value)
	c.highlight = noHighlight
	return success(OpAppend, value, len(c.items)-1, msgAppended(c.variant, value, len(c.items)))
}

// RemoveEnd removes the last element (pop).
func (c *Controller) RemoveEnd() Result {
	if r, bad := c.unsupported(OpRemoveEnd); bad {
		return r
	}
	if len(c.items) == 0 {
		return failure(opErr(OpRemoveEnd, ErrEmptyCollection, "%s", msgEmptyRemove(c.variant)))
	}
	last := len(c.items) - 1
	value := c.items[last]
	c.items = c.items[:last]
	c.highlight = noHighlight
	return success(OpRemoveEnd, value, last, msgRemoved(c.variant, value, len(c.items)))
}

// RemoveFront removes the first element (dequeue).
func (c *Controller) RemoveFront() Result {
	if r, bad := c.unsupported(OpRemoveFront); bad {
		return r
	}
	if len(c.items) == 0 {
		return failure(opErr(OpRemoveFront, ErrEmptyCollection, "%s", msgEmptyRemove(c.variant)))
	}
	value := c.items[0]
	c.items = append(c.items[:0], c.items[1:]...)
	c.highlight = noHighlight
	return success(OpRemoveFront, value, 0, msgRemoved(c.variant, value, len(c.items)))
}

// InsertAt splices value in at index, shifting later elements right.
func (c *Controller) InsertAt(index, value int) Result {
	if r, bad := c.unsupported(OpInsertAt); bad {
		return r
	}
	if index < 0 || index > len(c.items) {
		return failure(opErr(OpInsertAt, ErrIndexOutOfRange, "%s", msgIndexRange(OpInsertAt, len(c.items))))
	}
	if err := c.checkRoom(OpInsertAt); err != nil {
		return failure(err)
	}
	c.items = append(c.items, 0)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = value
	c.highlight = noHighlight
	return success(OpInsertAt, value, index, msgInserted(value, index, len(c.items)))
}

// DeleteAt removes the element at index, shifting later elements left.
func (c *Controller) DeleteAt(index int) Result {
	if r, bad := c.unsupported(OpDeleteAt); bad {
		return r
	}
	if len(c.items) == 0 {
		return failure(opErr(OpDeleteAt, ErrEmptyCollection, "%s", msgEmptyDelete(c.variant)))
	}
	if index < 0 || index >= len(c.items) {
		return failure(opErr(OpDeleteAt, ErrIndexOutOfRange, "%s", msgIndexRange(OpDeleteAt, len(c.items))))
	}
	value := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.highlight = noHighlight
	return success(OpDeleteAt, value, index, msgDeletedAt(value, index, len(c.items)))
}

// Peek reports the top (stack) or front (queue) element and highlights it.
func (c *Controller) Peek() Result {
	if r, bad := c.unsupported(OpPeek); bad {
		return r
	}
	if len(c.items) == 0 {
		return failure(opErr(OpPeek, ErrEmptyCollection, "%s", msgEmptyPeek(c.variant)))
	}
	index := len(c.items) - 1
	if c.variant.PeekFront {
		index = 0
	}
	c.highlight = index
	return info(OpPeek, c.items[index], index, msgPeek(c.variant, c.items[index]))
}

// Search finds the leftmost occurrence of value. A miss clears the highlight.
func (c *Controller) Search(value int) Result {
	if r, bad := c.unsupported(OpSearch); bad {
		return r
	}
	for i, it := range c.items {
		if it == value {
			c.highlight = i
			return success(OpSearch, value, i, msgFound(c.variant, value, i))
		}
	}
	c.highlight = noHighlight
	return failure(opErr(OpSearch, ErrNotFound, "%s", msgNotFound(c.variant, value)))
}

// Traverse lists the values head to tail without changing anything.
func (c *Controller) Traverse() Result {
	if r, bad := c.unsupported(OpTraverse); bad {
		return r
	}
	if len(c.items) == 0 {
		return failure(opErr(OpTraverse, ErrEmptyCollection, "%s", msgEmptyTraverse(c.variant)))
	}
	return info(OpTraverse, 0, -1, msgTraversal(c.items))
}

// ClearSearch drops the highlight.
func (c *Controller) ClearSearch() Result {
	c.highlight = noHighlight
	return info(OpClearSearch, 0, -1, MsgSearchCleared)
}

// Clear empties the collection.
func (c *Controller) Clear() Result {
	if len(c.items) == 0 {
		return info(OpClear, 0, -1, msgAlreadyEmpty(c.variant))
	}
	c.items = c.items[:0]
	c.highlight = noHighlight
	return success(OpClear, 0, -1, msgCleared(c.variant))
}

// SetCapacity changes the limit. It must lie in [1, ceiling] and must not be
// below the current size; otherwise the previous capacity is kept.
func (c *Controller) SetCapacity(limit int) Result {
	switch {
	case limit <= 0:
		return failure(opErr(OpSetCapacity, ErrInvalidInput, "%s", msgInvalidLimit(c.variant.Ceiling)))
	case limit > c.variant.Ceiling:
		return failure(opErr(OpSetCapacity, ErrCapacityExceeded, "%s", msgLimitAboveCeiling(c.variant)))
	case limit < len(c.items):
		return failure(opErr(OpSetCapacity, ErrCapacityExceeded, "%s", msgLimitBelowSize(c.variant, len(c.items))))
	}
	c.capacity = limit
	return success(OpSetCapacity, limit, -1, msgLimitSet(limit))
}
