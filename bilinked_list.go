package linked

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"
)

// BilinkedList adds back links to List, which makes GoLast, GoBack and
// DeleteLast O(1). Every node's prev is the inverse of its predecessor's next;
// the head's prev is nil.
//
// WARN: NOT CONCURRENT SAFE!!
type BilinkedList[I any] struct {
	List[I]
}

func NewBilinkedList[I comparable](opts ...Option[I]) *BilinkedList[I] {
	return newBilinkedList(newConfig(Equal[I], opts))
}

func NewOrderedBilinkedList[I cmp.Ordered](opts ...Option[I]) *BilinkedList[I] {
	return newBilinkedList(newConfig(Natural[I], opts))
}

func NewBilinkedListFunc[I any](eq EqualFunc[I], opts ...Option[I]) *BilinkedList[I] {
	return newBilinkedList(newConfig(mustEqualFunc(eq), opts))
}

func newBilinkedList[I any](c config[I]) *BilinkedList[I] {
	l := &BilinkedList[I]{}
	l.configure(c)
	return l
}

// region Cursor
func (l *BilinkedList[I]) GoLast() error {
	if l.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot position cursor at last element of an empty list")
	}

	l.position, l.prevPosition = l.tail, l.tail.prev
	return nil
}

// GoBack moves the cursor one item towards the head. From the first item it
// moves before; from after it moves onto the last item.
func (l *BilinkedList[I]) GoBack() error {
	if l.Before() {
		return errors.Wrap(ErrBeforeTheStart, "cannot go back when already before the start")
	}

	if l.position == l.head {
		l.GoBefore()
		return nil
	}

	l.position = l.prevPosition
	l.prevPosition = l.position.prev
	return nil
}

// endregion

// region Insert
func (l *BilinkedList[I]) InsertFirst(x I) {
	n := l.createNewNode(x)
	n.next = l.head

	if !l.IsEmpty() {
		l.head.prev = n
		if l.position == l.head {
			l.prevPosition = n
		}
	} else {
		l.tail = n
	}

	l.head = n
	l.len++
}

func (l *BilinkedList[I]) InsertLast(x I) {
	if l.IsEmpty() {
		l.InsertFirst(x)
		return
	}

	n := l.createNewNode(x)
	n.prev = l.tail
	if l.After() {
		l.prevPosition = n
	}

	l.tail.next = n
	l.tail = n
	l.len++
}

func (l *BilinkedList[I]) Insert(x I) {
	l.InsertFirst(x)
}

func (l *BilinkedList[I]) InsertBefore(x I) error {
	if l.Before() {
		return errors.Wrap(ErrInvalidState, "cannot insertBefore when the cursor is before the first element")
	}

	switch {
	case l.position == l.head:
		l.InsertFirst(x)
	case l.After():
		l.InsertLast(x)
	default:
		n := l.createNewNode(x)
		n.next, n.prev = l.position, l.prevPosition
		l.prevPosition.next = n
		l.position.prev = n
		l.prevPosition = n
		l.len++
	}

	return nil
}

// InsertPriorGo inserts x before the cursor and moves the cursor onto it.
func (l *BilinkedList[I]) InsertPriorGo(x I) error {
	if err := l.InsertBefore(x); err != nil {
		return err
	}
	return l.GoBack()
}

// InsertNext puts x right after the cursor. From before (or on an empty list)
// x becomes the first item; from after it becomes the last. The cursor does
// not move.
func (l *BilinkedList[I]) InsertNext(x I) {
	switch {
	case l.IsEmpty(), l.Before():
		l.InsertFirst(x)
	case l.position == l.tail, l.After():
		l.InsertLast(x)
	default:
		n := l.createNewNode(x)
		n.next, n.prev = l.position.next, l.position
		l.position.next.prev = n
		l.position.next = n
		l.len++
	}
}

// endregion

// region Delete
func (l *BilinkedList[I]) DeleteFirst() error {
	if l.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot delete an item from an empty list")
	}

	if l.prevPosition == l.head {
		l.prevPosition = nil
	} else if l.position == l.head {
		l.position = l.position.next
	}

	if l.head == l.tail {
		l.tail = nil
	}

	old := l.head
	l.head = old.next
	if l.head != nil {
		l.head.prev = nil
	}
	old.unlink()
	l.len--
	return nil
}

// DeleteLast leaves the cursor where List.DeleteLast would, without walking
// the list.
func (l *BilinkedList[I]) DeleteLast() error {
	if l.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot delete an item from an empty list")
	}
	if l.head == l.tail {
		return l.DeleteFirst()
	}

	penultimate := l.tail.prev
	if l.position == l.tail {
		l.position, l.prevPosition = penultimate, penultimate.prev
	} else if l.After() {
		l.prevPosition = penultimate
	}

	old := l.tail
	penultimate.next = nil
	l.tail = penultimate
	old.unlink()
	l.len--
	return nil
}

func (l *BilinkedList[I]) DeleteItem() error {
	if !l.ItemExists() {
		return errors.Wrap(ErrNoCurrentItem, "there is no item at the cursor to delete")
	}

	if l.position == l.head {
		_ = l.DeleteFirst()
		l.position = l.head
		return nil
	}

	old := l.position
	l.unlinkAt(l.prevPosition, old)
	l.position = l.prevPosition.next
	return nil
}

func (l *BilinkedList[I]) Delete(x I) error {
	return l.deleteMatch(x, l.unlinkAt)
}

func (l *BilinkedList[I]) unlinkAt(pred, n *Node[I]) {
	if n.next != nil {
		n.next.prev = pred
	}
	l.List.unlinkAt(pred, n)
}

// endregion

// region Views
// Iterator starts before the first item; GoAfter then Prev walks backwards.
func (l *BilinkedList[I]) Iterator() *BilinkedIterator[I] {
	return &BilinkedIterator[I]{*newIterator(&l.List)}
}

// Backward yields items last to first. It does not touch the cursor.
func (l *BilinkedList[I]) Backward() iter.Seq[I] {
	return func(yield func(I) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.item) {
				return
			}
		}
	}
}

// endregion
