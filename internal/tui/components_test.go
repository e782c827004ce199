package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/dsviz/internal/structure"
)

func newController(t *testing.T, name string) *structure.Controller {
	t.Helper()
	catalog, err := structure.LoadCatalog(nil)
	require.NoError(t, err)
	v, ok := catalog.Lookup(name)
	require.True(t, ok)
	return structure.New(v)
}

func TestRenderCollectionMarkers(t *testing.T) {
	tests := []struct {
		variant string
		want    []string
		absent  []string
	}{
		{"array", []string{"1", "2", "3", "0"}, []string{"FRONT", "HEAD", "TOP"}},
		{"queue", []string{"FRONT", "REAR"}, []string{"HEAD", "TOP"}},
		{"stack", []string{"← TOP"}, []string{"FRONT", "HEAD"}},
		{"linkedlist", []string{"HEAD", "→ NULL", "→"}, []string{"FRONT", "TOP"}},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			out := renderCollection(newController(t, tt.variant), 80)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderCollectionEmpty(t *testing.T) {
	c := newController(t, "stack")
	c.Clear()
	assert.Equal(t, "Stack is empty", renderCollection(c, 80))
}

func TestRenderQueueSingleItem(t *testing.T) {
	c := newController(t, "queue")
	c.RemoveFront()
	c.RemoveFront()
	out := renderCollection(c, 80)
	assert.Contains(t, out, "F/R")
	assert.NotContains(t, out, "REAR")
}

func TestRenderStackTopFirst(t *testing.T) {
	out := renderCollection(newController(t, "stack"), 80)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)

	// Line 0 is the top border; the first item line holds the newest value.
	assert.Contains(t, lines[1], "3")
	assert.Contains(t, lines[1], "TOP")
	assert.Contains(t, lines[3], "1")
}

func TestRenderRowWraps(t *testing.T) {
	c := newController(t, "array")
	c.SetCapacity(30)
	for c.Len() < 30 {
		c.AppendAuto()
	}

	wide := renderCollection(c, 1000)
	narrow := renderCollection(c, 40)

	assert.Equal(t, 4, lipgloss.Height(wide), "one row of boxes plus markers")
	assert.Greater(t, lipgloss.Height(narrow), lipgloss.Height(wide))
	for _, line := range strings.Split(narrow, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestTruncateEnd(t *testing.T) {
	assert.Equal(t, "", truncateEnd("abc", 0))
	assert.Equal(t, "abc", truncateEnd("abc", 3))
	assert.Equal(t, "…", truncateEnd("abc", 1))
	assert.Equal(t, "ab…", truncateEnd("abcd", 3))
}
