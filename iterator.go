package linked

import (
	"github.com/pkg/errors"
)

// region Iterator
// Iterator walks a list with its own cursor, leaving the list's cursor alone.
// Mutating the list while iterating leaves the iterator's position undefined.
//
// WARN: NOT CONCURRENT SAFE!!
type Iterator[I any] struct {
	list *List[I]
	prev *Node[I]
	cur  *Node[I]
}

// newIterator starts before the first item.
func newIterator[I any](list *List[I]) *Iterator[I] {
	return &Iterator[I]{list: list}
}

func (it *Iterator[I]) Before() bool {
	return it.cur == nil && it.prev == nil
}

func (it *Iterator[I]) After() bool {
	return it.cur == nil && it.prev != nil
}

func (it *Iterator[I]) ItemExists() bool {
	return it.cur != nil
}

func (it *Iterator[I]) Item() (I, error) {
	if it.cur == nil {
		var zero I
		return zero, errors.Wrap(ErrNoCurrentItem, "iterator has no current item")
	}
	return it.cur.item, nil
}

func (it *Iterator[I]) GoBefore() {
	it.prev, it.cur = nil, nil
}

func (it *Iterator[I]) GoAfter() {
	it.prev, it.cur = it.list.tail, nil
}

func (it *Iterator[I]) GoFirst() error {
	if it.list.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot move iterator to first item of an empty list")
	}
	it.prev, it.cur = nil, it.list.head
	return nil
}

func (it *Iterator[I]) GoForth() error {
	if it.After() {
		return errors.Wrap(ErrAfterTheEnd, "cannot advance iterator past the end")
	}
	if it.Before() {
		return it.GoFirst()
	}
	it.prev, it.cur = it.cur, it.cur.next
	return nil
}

// Next advances and returns the item it lands on. The first call yields the
// first item; false means the iterator is after (or the list is empty).
func (it *Iterator[I]) Next() (I, bool) {
	var zero I
	if err := it.GoForth(); err != nil || it.cur == nil {
		return zero, false
	}
	return it.cur.item, true
}

// Position converts the iterator into a token the list accepts in
// GoPosition.
func (it *Iterator[I]) Position() Position[I] {
	return Position[I]{
		owner: it.list.ident(),
		epoch: it.list.epoch,
		prev:  it.prev,
		cur:   it.cur,
	}
}

// endregion

// region BilinkedIterator
type BilinkedIterator[I any] struct {
	Iterator[I]
}

func (it *BilinkedIterator[I]) GoLast() error {
	if it.list.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot move iterator to last item of an empty list")
	}
	it.prev, it.cur = it.list.tail.prev, it.list.tail
	return nil
}

func (it *BilinkedIterator[I]) GoBack() error {
	if it.Before() {
		return errors.Wrap(ErrBeforeTheStart, "cannot move iterator before the start")
	}
	if it.cur == it.list.head {
		it.GoBefore()
		return nil
	}
	it.cur = it.prev
	it.prev = it.cur.prev
	return nil
}

// Prev is Next in reverse: GoAfter followed by repeated Prev yields the
// items last to first.
func (it *BilinkedIterator[I]) Prev() (I, bool) {
	var zero I
	if err := it.GoBack(); err != nil || it.cur == nil {
		return zero, false
	}
	return it.cur.item, true
}

// endregion

// region CyclicIterator
// CyclicIterator wraps to the first item instead of stopping after the last.
type CyclicIterator[I any] struct {
	Iterator[I]
}

func NewCyclicIterator[I any](list *List[I]) *CyclicIterator[I] {
	return &CyclicIterator[I]{
		*newIterator(list),
	}
}

// Next only reports false for an empty list.
func (it *CyclicIterator[I]) Next() (I, bool) {
	v, ok := it.Iterator.Next()
	if !ok && !it.list.IsEmpty() {
		it.GoBefore()
		return it.Iterator.Next()
	}
	return v, ok
}

// endregion
