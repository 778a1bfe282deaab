package linked

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backward[I any](t *testing.T, l *BilinkedList[I]) []I {
	t.Helper()

	var items []I
	if l.IsEmpty() {
		return items
	}

	require.NoError(t, l.GoLast())
	for !l.Before() {
		item, err := l.Item()
		require.NoError(t, err)
		items = append(items, item)
		require.NoError(t, l.GoBack())
	}
	return items
}

func newBilinkedStrings(vs ...string) *BilinkedList[string] {
	l := NewBilinkedList[string]()
	for _, v := range vs {
		l.InsertLast(v)
	}
	return l
}

func TestBilinkedCreate(t *testing.T) {
	l := NewBilinkedList[int]()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)

	assert.ErrorIs(t, l.GoLast(), ErrContainerEmpty)
	assert.ErrorIs(t, l.GoBack(), ErrBeforeTheStart)
	assert.ErrorIs(t, l.DeleteLast(), ErrContainerEmpty)
	assert.ErrorIs(t, l.DeleteFirst(), ErrContainerEmpty)
	assert.ErrorIs(t, l.DeleteItem(), ErrNoCurrentItem)
	assert.ErrorIs(t, l.Delete(1), ErrContainerEmpty)
	checkList(t, &l.List, true)
}

func TestBilinkedScenario(t *testing.T) {
	l := NewBilinkedList[string]()
	l.InsertFirst("but")
	l.InsertFirst("dsaw")
	checkList(t, &l.List, true)

	assert.Equal(t, []string{"dsaw", "but"}, forward(t, &l.List))
	assert.Equal(t, []string{"but", "dsaw"}, backward(t, l))

	l.InsertLast("Strong")
	l.InsertLast("Harwin")
	l.InsertLast("Strong")
	checkList(t, &l.List, true)
	assert.Equal(t, []string{"Strong", "Harwin", "Strong", "but", "dsaw"}, backward(t, l))

	require.NoError(t, l.DeleteLast())
	require.NoError(t, l.DeleteLast())
	require.NoError(t, l.DeleteLast())
	checkList(t, &l.List, true)
	assert.Equal(t, []string{"but", "dsaw"}, backward(t, l))
	assert.Equal(t, []string{"dsaw", "but"}, forward(t, &l.List))

	require.NoError(t, l.DeleteFirst())
	first, err := l.FirstItem()
	require.NoError(t, err)
	last, err := l.LastItem()
	require.NoError(t, err)
	assert.Equal(t, "but", first)
	assert.Equal(t, "but", last)
}

func TestBilinkedDeleteLastOnTail(t *testing.T) {
	l := NewBilinkedList[int]()
	for _, v := range []int{1, 2, 3, 1} {
		l.InsertLast(v)
	}

	require.NoError(t, l.GoFirst())
	assert.Equal(t, 1, current(t, &l.List))
	require.NoError(t, l.GoLast())
	assert.Equal(t, 1, current(t, &l.List))

	require.NoError(t, l.DeleteLast())
	assert.False(t, l.IsEmpty())
	assert.Equal(t, 3, current(t, &l.List), "cursor on the removed tail moves onto the new tail")
	assert.Equal(t, 2, l.prevPosition.item)

	last, err := l.LastItem()
	require.NoError(t, err)
	assert.Equal(t, 3, last)
	checkList(t, &l.List, true)
}

func TestBilinkedDeleteItemThenBack(t *testing.T) {
	l := NewBilinkedList[float64]()
	for _, v := range []float64{1.1, 2.2, 3.1, 1.1, 123.99} {
		l.InsertLast(v)
	}

	require.NoError(t, l.GoFirst())
	assert.Equal(t, 1.1, current(t, &l.List))
	require.NoError(t, l.GoForth())
	assert.Equal(t, 2.2, current(t, &l.List))
	require.NoError(t, l.GoForth())
	require.NoError(t, l.DeleteItem())
	assert.Equal(t, 1.1, current(t, &l.List))
	checkList(t, &l.List, true)

	require.NoError(t, l.GoForth())
	assert.Equal(t, 123.99, current(t, &l.List))
	require.NoError(t, l.GoBack())
	assert.Equal(t, 1.1, current(t, &l.List))
	require.NoError(t, l.GoBack())
	assert.Equal(t, 2.2, current(t, &l.List))
}

func TestBilinkedDeleteLastSingle(t *testing.T) {
	l := newBilinkedStrings("only")
	require.NoError(t, l.GoLast())
	require.NoError(t, l.DeleteLast())

	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)
	assert.True(t, l.Before())
	assert.ErrorIs(t, l.GoLast(), ErrContainerEmpty)
	checkList(t, &l.List, true)
}

func TestGoBack(t *testing.T) {
	l := newBilinkedStrings("a", "b", "c")

	l.GoAfter()
	require.NoError(t, l.GoBack())
	assert.Equal(t, "c", current(t, &l.List))
	assert.Equal(t, "b", l.prevPosition.item)

	require.NoError(t, l.GoBack())
	require.NoError(t, l.GoBack())
	assert.Equal(t, "a", current(t, &l.List))
	assert.Nil(t, l.prevPosition)

	require.NoError(t, l.GoBack())
	assert.True(t, l.Before())

	err := l.GoBack()
	assert.ErrorIs(t, err, ErrBeforeTheStart)
	assert.True(t, l.Before())
}

func TestBilinkedInsertFirst(t *testing.T) {
	l := newBilinkedStrings("b", "c")
	require.NoError(t, l.GoFirst())

	l.InsertFirst("a")
	assert.Equal(t, "b", current(t, &l.List))
	assert.Equal(t, "a", l.prevPosition.item)
	checkList(t, &l.List, true)

	l.GoAfter()
	l.InsertFirst("0")
	assert.True(t, l.After())
	checkList(t, &l.List, true)
	assert.Equal(t, []string{"c", "b", "a", "0"}, backward(t, l))
}

func TestBilinkedInsertLast(t *testing.T) {
	l := NewBilinkedList[string]()
	l.InsertLast("a")
	assert.True(t, l.Before())
	checkList(t, &l.List, true)

	l.GoAfter()
	l.InsertLast("b")
	assert.True(t, l.After())
	assert.Equal(t, "b", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.GoBack())
	assert.Equal(t, "b", current(t, &l.List))
}

func TestBilinkedInsertBefore(t *testing.T) {
	l := newBilinkedStrings("a", "c")
	assert.ErrorIs(t, l.InsertBefore("x"), ErrInvalidState)

	require.NoError(t, l.GoLast())
	require.NoError(t, l.InsertBefore("b"))
	assert.Equal(t, "c", current(t, &l.List))
	assert.Equal(t, "b", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.GoFirst())
	require.NoError(t, l.InsertBefore("0"))
	checkList(t, &l.List, true)

	l.GoAfter()
	require.NoError(t, l.InsertBefore("d"))
	checkList(t, &l.List, true)

	assert.Equal(t, []string{"d", "c", "b", "a", "0"}, backward(t, l))
}

func TestInsertPriorGo(t *testing.T) {
	l := newBilinkedStrings("a", "c")

	assert.ErrorIs(t, l.InsertPriorGo("x"), ErrInvalidState)
	assert.Equal(t, 2, l.Len())

	require.NoError(t, l.GoLast())
	require.NoError(t, l.InsertPriorGo("b"))
	assert.Equal(t, "b", current(t, &l.List))
	checkList(t, &l.List, true)

	l.GoAfter()
	require.NoError(t, l.InsertPriorGo("d"))
	assert.Equal(t, "d", current(t, &l.List))
	checkList(t, &l.List, true)

	assert.Equal(t, []string{"a", "b", "c", "d"}, forward(t, &l.List))
}

func TestInsertNext(t *testing.T) {
	l := NewBilinkedList[string]()

	l.InsertNext("b")
	assert.True(t, l.Before())
	l.InsertNext("a")
	assert.True(t, l.Before(), "from before the item goes first")
	checkList(t, &l.List, true)

	require.NoError(t, l.GoLast())
	l.InsertNext("d")
	assert.Equal(t, "b", current(t, &l.List))
	checkList(t, &l.List, true)

	l.InsertNext("c")
	assert.Equal(t, "b", current(t, &l.List))
	checkList(t, &l.List, true)

	l.GoAfter()
	l.InsertNext("e")
	assert.True(t, l.After())
	assert.Equal(t, "e", l.prevPosition.item)
	checkList(t, &l.List, true)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, forward(t, &l.List))
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, backward(t, l))
}

func TestBilinkedDeleteFirst(t *testing.T) {
	l := newBilinkedStrings("a", "b", "c")

	require.NoError(t, l.GoFirst())
	require.NoError(t, l.GoForth())
	require.NoError(t, l.DeleteFirst())
	assert.Equal(t, "b", current(t, &l.List))
	assert.Nil(t, l.prevPosition)
	assert.Nil(t, l.head.prev)
	checkList(t, &l.List, true)

	require.NoError(t, l.DeleteFirst())
	assert.Equal(t, "c", current(t, &l.List))
	checkList(t, &l.List, true)

	require.NoError(t, l.DeleteFirst())
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Before())
	checkList(t, &l.List, true)
}

func TestBilinkedDeleteLast(t *testing.T) {
	l := newBilinkedStrings("a", "b", "c")

	l.GoAfter()
	require.NoError(t, l.DeleteLast())
	assert.True(t, l.After())
	assert.Equal(t, "b", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.GoLast())
	require.NoError(t, l.DeleteLast())
	assert.Equal(t, "a", current(t, &l.List))
	assert.Nil(t, l.prevPosition)
	checkList(t, &l.List, true)

	require.NoError(t, l.DeleteLast())
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Before())
	checkList(t, &l.List, true)
}

func TestBilinkedDeleteItem(t *testing.T) {
	l := newBilinkedStrings("a", "b", "c")

	require.NoError(t, l.GoLast())
	require.NoError(t, l.GoBack())
	require.NoError(t, l.DeleteItem())
	assert.Equal(t, "c", current(t, &l.List))
	assert.Equal(t, "a", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.DeleteItem())
	assert.True(t, l.After())
	assert.Equal(t, "a", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.GoBack())
	require.NoError(t, l.DeleteItem())
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Before())
	checkList(t, &l.List, true)
}

func TestBilinkedDelete(t *testing.T) {
	l := newBilinkedStrings("a", "b", "c", "d")

	require.NoError(t, l.GoLast())
	require.NoError(t, l.Delete("c"))
	assert.Equal(t, "d", current(t, &l.List))
	assert.Equal(t, "b", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.Delete("d"))
	assert.True(t, l.After())
	assert.Equal(t, "b", l.prevPosition.item)
	checkList(t, &l.List, true)

	require.NoError(t, l.GoFirst())
	require.NoError(t, l.Delete("a"))
	assert.Equal(t, "b", current(t, &l.List))
	assert.Nil(t, l.prevPosition)
	checkList(t, &l.List, true)

	assert.ErrorIs(t, l.Delete("z"), ErrItemNotFound)
	assert.Equal(t, "b", current(t, &l.List))
	assert.Equal(t, 1, l.Len())

	require.NoError(t, l.Delete("b"))
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Before())
	checkList(t, &l.List, true)
}

func TestBilinkedPosition(t *testing.T) {
	a, b := newBilinkedStrings("a"), newBilinkedStrings("a")
	require.NoError(t, a.GoLast())
	p := a.CurrentPosition()

	assert.ErrorIs(t, b.GoPosition(p), ErrInvalidArgument)

	a.GoBefore()
	require.NoError(t, a.GoPosition(p))
	assert.Equal(t, "a", current(t, &a.List))

	has := a.Has("a")
	assert.True(t, has)
	assert.True(t, p.Equal(a.CurrentPosition()))
}

func TestBilinkedBackward(t *testing.T) {
	l := NewOrderedBilinkedList[int]()
	for i := 0; i < 5; i++ {
		l.InsertFirst(i)
	}
	require.NoError(t, l.GoFirst())

	var got []int
	for v := range l.Backward() {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 4, current(t, &l.List), "Backward leaves the cursor alone")
}

func TestBilinkedListFunc(t *testing.T) {
	l := NewBilinkedListFunc[version](Comparing[version], WithResumableSearch[version]())
	l.InsertLast(version{1, 0})
	l.InsertLast(version{1, 0})

	l.Search(version{1, 0})
	l.Search(version{1, 0})
	assert.True(t, l.ItemExists())
	assert.True(t, l.tail == l.position)

	assert.Panics(t, func() { NewBilinkedListFunc[int](nil) })
}
