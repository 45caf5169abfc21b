// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass

import (
	"fmt"
	"reflect"
)

// Handle is a reference to an object viewed as class V that remembers the
// object's runtime (most-derived) class.
//
// A Handle is created once from a concrete object with [From] or
// [Class.From]; [Upcast] and [Root] produce new handles with a different
// view over the same object. The runtime class never changes.
// Handles are small comparable values. The zero Handle refers to nothing.
type Handle[V any] struct {
	view  *V
	obj   Instance
	rt    *Info
	depth int
}

// From creates a Handle over a concrete object whose class was defined
// with [Define]. p must be the object itself, not a base part embedded in
// a larger object; the runtime class is taken from T.
// Panics if p is nil or T is not a defined class.
func From[T any](p *T) Handle[T] {
	info := Of[T]()
	if info == nil {
		panic("klass: " + reflect.TypeFor[T]().String() + " is not a defined class")
	}
	if p == nil {
		panic("klass: handle from nil " + info.name)
	}
	return Handle[T]{view: p, obj: p, rt: info, depth: info.depth}
}

// View returns the object as seen through class V.
func (h Handle[V]) View() *V { return h.view }

// Runtime returns the runtime class of the object, or nil for the zero Handle.
func (h Handle[V]) Runtime() *Info { return h.rt }

// Depth returns the depth of the view class.
func (h Handle[V]) Depth() int { return h.depth }

// IsZero reports whether h is the zero Handle.
func (h Handle[V]) IsZero() bool { return h.rt == nil }

// Is reports whether the runtime class of the object is c or descends from c.
func (h Handle[V]) Is(c *Info) bool {
	return h.rt != nil && h.rt.IsSubclassOf(c)
}

// Format formats the viewed object.
func (h Handle[V]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), h.view)
}

func (h Handle[V]) mustValid() {
	if h.rt == nil {
		panic("klass: use of zero Handle")
	}
}
