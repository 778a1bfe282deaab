// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package strlist

import (
	"github.com/pkg/errors"

	linked "github.com/snwfog/linked.go"
)

// StringList is a bilinked cursor list of string with dictionary helpers that
// leave the cursor where they found it.
type StringList struct {
	*linked.BilinkedList[string]
}

func NewStringList(vs ...string) *StringList {
	l := &StringList{linked.NewBilinkedList[string]()}
	for _, v := range vs {
		l.InsertLast(v)
	}
	return l
}

// Items copies the items first to last.
func (l *StringList) Items() []string {
	vs := make([]string, 0, l.Len())
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// Count returns how many items equal x.
func (l *StringList) Count(x string) int {
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
func (l *StringList) DeleteAll(x string) (int, error) {
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
