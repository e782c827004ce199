package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		variant   string
		req       Request
		wantErr   error
		wantText  string
		wantItems []int
	}{
		{
			name:      "append explicit value",
			variant:   "queue",
			req:       Request{Op: OpAppend, Value: " 8 "},
			wantText:  "Value 8 enqueued successfully! New size: 4",
			wantItems: []int{1, 2, 3, 8},
		},
		{
			name:      "append empty uses auto value",
			variant:   "queue",
			req:       Request{Op: OpAppend},
			wantItems: []int{1, 2, 3, 4},
		},
		{
			name:      "append malformed",
			variant:   "stack",
			req:       Request{Op: OpAppend, Value: "4.5"},
			wantErr:   ErrInvalidInput,
			wantText:  MsgInvalidValue,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "insert",
			variant:   "array",
			req:       Request{Op: OpInsertAt, Index: "0", Value: "-1"},
			wantItems: []int{-1, 1, 2, 3},
		},
		{
			name:      "insert bad index text",
			variant:   "array",
			req:       Request{Op: OpInsertAt, Index: "one", Value: "1"},
			wantErr:   ErrInvalidInput,
			wantText:  MsgInvalidIndex,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "insert missing value",
			variant:   "array",
			req:       Request{Op: OpInsertAt, Index: "1"},
			wantErr:   ErrInvalidInput,
			wantText:  MsgEnterInsertValue,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "insert bad value",
			variant:   "linkedlist",
			req:       Request{Op: OpInsertAt, Index: "1", Value: "x"},
			wantErr:   ErrInvalidInput,
			wantText:  MsgInvalidValue,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "insert index out of range",
			variant:   "array",
			req:       Request{Op: OpInsertAt, Index: "9", Value: "1"},
			wantErr:   ErrIndexOutOfRange,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "delete",
			variant:   "linkedlist",
			req:       Request{Op: OpDeleteAt, Index: "2"},
			wantItems: []int{1, 2},
		},
		{
			name:      "search empty",
			variant:   "queue",
			req:       Request{Op: OpSearch},
			wantErr:   ErrInvalidInput,
			wantText:  MsgEnterSearchValue,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "search malformed",
			variant:   "queue",
			req:       Request{Op: OpSearch, Value: "two"},
			wantErr:   ErrInvalidInput,
			wantText:  MsgInvalidSearchValue,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "search miss",
			variant:   "queue",
			req:       Request{Op: OpSearch, Value: "9"},
			wantErr:   ErrNotFound,
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "limit malformed",
			variant:   "array",
			req:       Request{Op: OpSetCapacity, Value: ""},
			wantErr:   ErrInvalidInput,
			wantText:  "Please set a valid limit (1-60).",
			wantItems: []int{1, 2, 3},
		},
		{
			name:      "unsupported",
			variant:   "stack",
			req:       Request{Op: OpTraverse},
			wantErr:   ErrUnsupported,
			wantText:  "Stack does not support traverse.",
			wantItems: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, tt.variant)
			r := c.Apply(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, r.Err, tt.wantErr)
				assert.Equal(t, ResultError, r.Kind)
			} else {
				require.NoError(t, r.Err)
			}
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, r.Text)
			}
			assert.Equal(t, tt.wantItems, c.Items())
		})
	}
}

func TestApply_SetCapacity(t *testing.T) {
	c := newTestController(t, "stack")
	r := c.Apply(Request{Op: OpSetCapacity, Value: "12"})
	require.NoError(t, r.Err)
	assert.Equal(t, 12, c.Capacity())

	r = c.Apply(Request{Op: OpSetCapacity, Value: "25"})
	assert.ErrorIs(t, r.Err, ErrCapacityExceeded)
	assert.Equal(t, 12, c.Capacity())
}

func TestOpError(t *testing.T) {
	c := newTestController(t, "stack")
	require.True(t, c.Clear().OK())
	r := c.RemoveEnd()

	var opErr *OpError
	require.ErrorAs(t, r.Err, &opErr)
	assert.Equal(t, OpRemoveEnd, opErr.Op)
	assert.Contains(t, opErr.Error(), "remove_end")
	assert.Equal(t, r.Text, opErr.Text)
}
