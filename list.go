package linked

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/snwfog/linked.go/pkg/digest"
)

// listids hands out list identities; Position tokens carry the identity of
// the list that produced them.
var listids = atomic.NewUint64(0)

// List is a singly linked list with a cursor. The cursor is either before the
// first item, on an item, or after the last item. An empty list is always
// before.
//
// WARN: NOT CONCURRENT SAFE!!
type List[I any] struct {
	head *Node[I]
	tail *Node[I]

	// position is the cursor node, prevPosition its predecessor.
	position     *Node[I]
	prevPosition *Node[I]

	continueSearch bool

	len   int
	id    uint64
	epoch uint64

	equals  EqualFunc[I]
	newNode NodeFactory[I]
}

func NewList[I comparable](opts ...Option[I]) *List[I] {
	return newList(newConfig(Equal[I], opts))
}

func NewOrderedList[I cmp.Ordered](opts ...Option[I]) *List[I] {
	return newList(newConfig(Natural[I], opts))
}

func NewListFunc[I any](eq EqualFunc[I], opts ...Option[I]) *List[I] {
	return newList(newConfig(mustEqualFunc(eq), opts))
}

func newList[I any](c config[I]) *List[I] {
	l := &List[I]{}
	l.configure(c)
	return l
}

func (l *List[I]) configure(c config[I]) {
	l.equals = c.equals
	l.newNode = c.newNode
	l.continueSearch = c.continueSearch
	l.ident()
}

func (l *List[I]) ident() uint64 {
	if l.id == 0 {
		l.id = listids.Inc()
	}
	return l.id
}

func (l *List[I]) createNewNode(x I) *Node[I] {
	if l.newNode == nil {
		return NewNode(x)
	}
	return l.newNode(x)
}

// region State
func (l *List[I]) Len() int {
	return l.len
}

func (l *List[I]) IsEmpty() bool {
	return l.head == nil
}

func (l *List[I]) Before() bool {
	return l.position == nil && l.prevPosition == nil
}

func (l *List[I]) After() bool {
	return l.position == nil && l.prevPosition != nil
}

func (l *List[I]) ItemExists() bool {
	return l.position != nil
}

func (l *List[I]) Item() (I, error) {
	if !l.ItemExists() {
		var zero I
		return zero, errors.Wrap(ErrNoCurrentItem, "there is no current item to obtain")
	}
	return l.position.item, nil
}

func (l *List[I]) FirstItem() (I, error) {
	if l.IsEmpty() {
		var zero I
		return zero, errors.Wrap(ErrContainerEmpty, "cannot obtain beginning of an empty list")
	}
	return l.head.item, nil
}

func (l *List[I]) LastItem() (I, error) {
	if l.IsEmpty() {
		var zero I
		return zero, errors.Wrap(ErrContainerEmpty, "cannot obtain end of an empty list")
	}
	return l.tail.item, nil
}

func (l *List[I]) FirstNode() (*Node[I], error) {
	if l.IsEmpty() {
		return nil, errors.Wrap(ErrContainerEmpty, "tried to get first node of an empty list")
	}
	return l.head, nil
}

func (l *List[I]) LastNode() (*Node[I], error) {
	if l.IsEmpty() {
		return nil, errors.Wrap(ErrContainerEmpty, "tried to get last node of an empty list")
	}
	return l.tail, nil
}

// endregion

// region Cursor
func (l *List[I]) GoBefore() {
	l.position, l.prevPosition = nil, nil
}

// GoAfter leaves an empty list before.
func (l *List[I]) GoAfter() {
	l.position, l.prevPosition = nil, l.tail
}

func (l *List[I]) GoFirst() error {
	if l.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot position cursor at first element of an empty list")
	}

	l.first()
	return nil
}

// GoForth advances the cursor one item. From before it is GoFirst.
func (l *List[I]) GoForth() error {
	if l.After() {
		return errors.Wrap(ErrAfterTheEnd, "cannot advance to next item when already after the end")
	}

	if l.Before() {
		return l.GoFirst()
	}

	l.forth()
	return nil
}

func (l *List[I]) first() {
	l.position, l.prevPosition = l.head, nil
}

// forth requires the cursor on an item, or before on a non-empty list.
func (l *List[I]) forth() {
	if l.Before() {
		l.first()
		return
	}
	l.prevPosition, l.position = l.position, l.position.next
}

// CurrentPosition returns a token for the cursor. It stays valid until the
// nodes it references are removed or the list is cleared.
func (l *List[I]) CurrentPosition() Position[I] {
	return Position[I]{
		owner: l.ident(),
		epoch: l.epoch,
		prev:  l.prevPosition,
		cur:   l.position,
	}
}

func (l *List[I]) GoPosition(p Position[I]) error {
	if p.owner != l.ident() {
		return errors.Wrap(ErrInvalidArgument, "position belongs to another list")
	}
	if p.epoch != l.epoch {
		return errors.Wrap(ErrInvalidArgument, "position was taken before the list was cleared")
	}

	l.restore(p)
	return nil
}

func (l *List[I]) restore(p Position[I]) {
	l.prevPosition, l.position = p.prev, p.cur
}

// endregion

// region Insert
// InsertFirst makes x the first item. A cursor on the old first item stays on
// it, so its predecessor becomes the new node.
func (l *List[I]) InsertFirst(x I) {
	n := l.createNewNode(x)
	n.next = l.head

	if !l.IsEmpty() && l.position == l.head {
		l.prevPosition = n
	}
	if l.IsEmpty() {
		l.tail = n
	}

	l.head = n
	l.len++
}

// InsertLast makes x the last item. A cursor after the old last item stays
// after, so its predecessor becomes the new node.
func (l *List[I]) InsertLast(x I) {
	n := l.createNewNode(x)

	if !l.IsEmpty() && l.After() {
		l.prevPosition = n
	}

	if l.IsEmpty() {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.len++
}

// Insert is the dictionary insert; it puts x first.
func (l *List[I]) Insert(x I) {
	l.InsertFirst(x)
}

// InsertBefore puts x between the cursor and its predecessor. The cursor does
// not move.
func (l *List[I]) InsertBefore(x I) error {
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
		n.next = l.position
		l.prevPosition.next = n
		l.prevPosition = n
		l.len++
	}

	return nil
}

// endregion

// region Delete
func (l *List[I]) DeleteFirst() error {
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
	old.unlink()
	l.len--
	return nil
}

// DeleteLast is O(n): the new last node is found by walking from the head. A
// cursor on the last item moves back onto the new last item.
func (l *List[I]) DeleteLast() error {
	if l.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot delete an item from an empty list")
	}
	if l.head == l.tail {
		return l.DeleteFirst()
	}

	penultimate := l.predecessor(l.tail)
	if l.position == l.tail {
		l.position, l.prevPosition = l.prevPosition, l.predecessor(l.prevPosition)
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

// predecessor walks from the head; nil for the head itself.
func (l *List[I]) predecessor(n *Node[I]) *Node[I] {
	if n == l.head {
		return nil
	}

	p := l.head
	for p.next != n {
		p = p.next
	}
	return p
}

// DeleteItem removes the item under the cursor and moves the cursor to its
// successor, or after when the last item was removed.
func (l *List[I]) DeleteItem() error {
	if !l.ItemExists() {
		return errors.Wrap(ErrNoCurrentItem, "there is no item at the cursor to delete")
	}

	if l.position == l.head {
		_ = l.DeleteFirst()
		l.position = l.head
		return nil
	}

	old := l.position
	l.prevPosition.next = old.next
	if old == l.tail {
		l.tail = l.prevPosition
	}
	l.position = old.next
	old.unlink()
	l.len--
	return nil
}

// Delete removes the first item equal to x. The cursor is preserved: if it was
// on the removed item it moves to the successor, if it was just past it the
// predecessor is repaired.
func (l *List[I]) Delete(x I) error {
	return l.deleteMatch(x, l.unlinkAt)
}

func (l *List[I]) unlinkAt(pred, n *Node[I]) {
	if pred != nil {
		pred.next = n.next
	}
	if n == l.head {
		l.head = n.next
	}
	if n == l.tail {
		l.tail = pred
	}
	n.unlink()
	l.len--
}

// deleteMatch runs the save, search, repair, restore sequence shared by both
// list kinds. unlink must detach n, whose predecessor is pred.
func (l *List[I]) deleteMatch(x I, unlink func(pred, n *Node[I])) error {
	if l.IsEmpty() {
		return errors.Wrap(ErrContainerEmpty, "cannot delete from an empty list")
	}

	saved := l.CurrentPosition()

	l.Search(x)
	if !l.ItemExists() {
		l.restore(saved)
		return errors.Wrap(ErrItemNotFound, "item to be deleted wasn't in the list")
	}

	found, pred := l.position, l.prevPosition
	if saved.cur == found {
		saved.cur = found.next
	}
	if saved.prev == found {
		saved.prev = pred
	}

	unlink(pred, found)
	l.restore(saved)
	return nil
}

func (l *List[I]) Clear() {
	l.head, l.tail = nil, nil
	l.position, l.prevPosition = nil, nil
	l.len = 0
	l.epoch++
}

// endregion

// region Search
func (l *List[I]) RestartSearches() {
	l.continueSearch = false
}

// ResumeSearches makes Search continue from the item after the cursor, so
// repeated calls visit every match.
func (l *List[I]) ResumeSearches() {
	l.continueSearch = true
}

func (l *List[I]) ResumingSearches() bool {
	return l.continueSearch
}

func (l *List[I]) MembershipEquals(x, y I) bool {
	if l.equals == nil {
		return deepEqual(x, y)
	}
	return l.equals(x, y)
}

// Search moves the cursor to the next item equal to x, or after if there is
// none.
func (l *List[I]) Search(x I) {
	if l.IsEmpty() {
		l.GoAfter()
		return
	}

	if !l.continueSearch {
		l.first()
	} else if !l.After() {
		l.forth()
	}

	for !l.After() && !l.MembershipEquals(x, l.position.item) {
		l.forth()
	}
}

// Has reports whether x is in the list. The cursor is left where it was.
func (l *List[I]) Has(x I) bool {
	saved := l.CurrentPosition()
	defer l.restore(saved)

	l.Search(x)
	return l.ItemExists()
}

// Obtain returns the item equal to x. The cursor is left where it was.
func (l *List[I]) Obtain(x I) (I, error) {
	saved := l.CurrentPosition()
	defer l.restore(saved)

	l.Search(x)
	if !l.ItemExists() {
		var zero I
		return zero, errors.Wrap(ErrItemNotFound, "can't obtain an item that is not in the list")
	}
	return l.position.item, nil
}

// endregion

// region Views
// All yields items first to last. It does not touch the cursor.
func (l *List[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

func (l *List[I]) Iterator() *Iterator[I] {
	return newIterator(l)
}

func (l *List[I]) CyclicIterator() *CyclicIterator[I] {
	return NewCyclicIterator(l)
}

// Digest fingerprints the items in order; equal sequences of supported item
// types give equal digests.
func (l *List[I]) Digest() (uint64, error) {
	d := digest.New()
	for n := l.head; n != nil; n = n.next {
		if err := d.Add(n.item); err != nil {
			return 0, errors.Wrapf(err, "digest item %v", n.item)
		}
	}
	return d.Sum64(), nil
}

func (l *List[I]) String() string {
	if l.IsEmpty() {
		return "<Empty>"
	}

	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, "%v, ", n.item)
	}
	return sb.String()
}

// endregion
