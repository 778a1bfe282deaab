package linked

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/snwfog/linked.go/pkg/util"
)

// EqualFunc reports whether x and y are the same member of a list. It is the
// membership test used by Search, Has, Obtain and Delete.
type EqualFunc[I any] func(x, y I) bool

// Equal compares with ==.
func Equal[I comparable](x, y I) bool {
	return x == y
}

// Natural compares with the natural ordering of I. Unlike ==, two NaNs are
// members of each other.
func Natural[I cmp.Ordered](x, y I) bool {
	return cmp.Compare(x, y) == 0
}

// Comparing compares through I's own Compare method.
func Comparing[I interface{ Compare(I) int }](x, y I) bool {
	return x.Compare(y) == 0
}

func deepEqual[I any](x, y I) bool {
	return reflect.DeepEqual(x, y)
}

func mustEqualFunc[I any](eq EqualFunc[I]) EqualFunc[I] {
	if util.IsNil(eq) {
		panic("linked: nil EqualFunc")
	}
	return eq
}

// region Options
type config[I any] struct {
	equals         EqualFunc[I]
	newNode        NodeFactory[I]
	continueSearch bool
}

type Option[I any] func(*config[I])

func WithEquality[I any](eq EqualFunc[I]) Option[I] {
	eq = mustEqualFunc(eq)
	return func(c *config[I]) {
		c.equals = eq
	}
}

func WithNodeFactory[I any](f NodeFactory[I]) Option[I] {
	if util.IsNil(f) {
		panic("linked: nil NodeFactory")
	}

	return func(c *config[I]) {
		c.newNode = f
	}
}

// WithResumableSearch starts the list with ResumeSearches in effect.
func WithResumableSearch[I any]() Option[I] {
	return func(c *config[I]) {
		c.continueSearch = true
	}
}

func newConfig[I any](eq EqualFunc[I], opts []Option[I]) config[I] {
	c := config[I]{equals: eq, newNode: NewNode[I]}
	for _, opt := range opts {
		if opt == nil {
			panic(fmt.Sprintf("linked: nil Option[%T]", *new(I)))
		}
		opt(&c)
	}

	return c
}

// endregion
