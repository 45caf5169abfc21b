// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass

// Upcast moves the view of h to its direct base class A.
//
// The constraint on V requires *V to project to *A through Base, so casting
// to anything other than the declared base does not compile. Upcast never
// consults the runtime class and cannot fail. Casts to further ancestors
// compose:
//
//	a := klass.Upcast(klass.Upcast(h, CatClass), AnimalClass)
func Upcast[A, AD, V any, PV interface {
	*V
	Base() *A
}](h Handle[V], to *Class[A, AD]) Handle[A] {
	h.mustValid()
	return Handle[A]{view: PV(h.view).Base(), obj: h.obj, rt: h.rt, depth: to.info.depth}
}

// Root moves the view of h to [Object]. Like [Upcast] it cannot fail.
func Root[V any](h Handle[V]) Handle[Object] {
	h.mustValid()
	return Handle[Object]{view: h.rt.project(h.obj, 0).(*Object), obj: h.obj, rt: h.rt}
}

// Downcast returns the T part of the object referenced by h.
//
// It succeeds iff T lies on the chain between the view class and the
// runtime class: T is the runtime class or one of its ancestors, and T is
// the view class or one of its descendants. Otherwise, including for
// sibling branches, classes more derived than the runtime class, strict
// ancestors of the view and the zero Handle, it returns (nil, false).
func Downcast[T, TD, V any](h Handle[V], to *Class[T, TD]) (*T, bool) {
	if h.rt == nil || to == nil {
		return nil, false
	}
	t := to.info
	if t.depth < h.depth || h.rt.Ancestor(t.depth) != t {
		return nil, false
	}
	return h.rt.project(h.obj, t.depth).(*T), true
}
