package intlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	linked "github.com/snwfog/linked.go"
)

func TestCreate(t *testing.T) {
	l := NewIntList()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.Items())
}

func TestCount(t *testing.T) {
	l := NewIntList(1, 2, 1, 3, 1)
	require.NoError(t, l.GoFirst())
	require.NoError(t, l.GoForth())
	before := l.CurrentPosition()

	assert.Equal(t, 3, l.Count(1))
	assert.Equal(t, 1, l.Count(3))
	assert.True(t, before.Equal(l.CurrentPosition()), "Count leaves the cursor alone")
	assert.False(t, l.ResumingSearches())

	l.ResumeSearches()
	assert.Equal(t, 3, l.Count(1))
	assert.True(t, l.ResumingSearches())
}

func TestDeleteAll(t *testing.T) {
	l := NewIntList(1, 2, 1, 3, 1)

	// Cursor on the item right after the first match.
	require.NoError(t, l.GoFirst())
	require.NoError(t, l.GoForth())

	n, err := l.DeleteAll(1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{2, 3}, l.Items())

	item, err := l.Item()
	require.NoError(t, err)
	assert.Equal(t, 2, item)

	_, err = l.Obtain(1)
	assert.ErrorIs(t, err, linked.ErrItemNotFound)
}

func TestDeleteAllEmpties(t *testing.T) {
	l := NewIntList(1, 1)
	l.ResumeSearches()
	require.NoError(t, l.GoLast())

	n, err := l.DeleteAll(1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Before())
	assert.True(t, l.ResumingSearches())
}

func TestBackward(t *testing.T) {
	l := NewIntList(1, 2, 3)

	var got []int
	for v := range l.Backward() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}
