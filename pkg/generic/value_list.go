package generic

import (
	"github.com/cheekybits/genny/generic"
	"github.com/pkg/errors"

	linked "github.com/snwfog/linked.go"
)

//go:generate genny -in=$GOFILE -out=../intlist/int_list.go -pkg=intlist gen "Value=int"
//go:generate genny -in=$GOFILE -out=../strlist/string_list.go -pkg=strlist gen "Value=string"

type Value generic.Type

// ValueList is a bilinked cursor list of Value with dictionary helpers that
// leave the cursor where they found it.
type ValueList struct {
	*linked.BilinkedList[Value]
}

func NewValueList(vs ...Value) *ValueList {
	l := &ValueList{linked.NewBilinkedList[Value]()}
	for _, v := range vs {
		l.InsertLast(v)
	}
	return l
}

// Items copies the items first to last.
func (l *ValueList) Items() []Value {
	vs := make([]Value, 0, l.Len())
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// Count returns how many items equal x.
func (l *ValueList) Count(x Value) int {
	saved := l.CurrentPosition()
	resuming := l.ResumingSearches()
	defer func() {
		if !resuming {
			l.RestartSearches()
		}
		_ = l.GoPosition(saved)
	}()

	l.GoBefore()
	l.ResumeSearches()

	n := 0
	for l.Search(x); l.ItemExists(); l.Search(x) {
		n++
	}
	return n
}

// DeleteAll removes every item equal to x and returns how many were removed.
// The cursor is repaired after each removal.
func (l *ValueList) DeleteAll(x Value) (int, error) {
	if l.ResumingSearches() {
		l.RestartSearches()
		defer l.ResumeSearches()
	}

	n := 0
	for {
		err := l.Delete(x)
		switch errors.Cause(err) {
		case nil:
			n++
		case linked.ErrItemNotFound, linked.ErrContainerEmpty:
			return n, nil
		default:
			return n, err
		}
	}
}
