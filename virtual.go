// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass

// Virtual returns the virtual interface of the view class V bound through
// the runtime class's [VTable].
//
// Calls on the result reach the override declared by the most-derived
// class in the chain, whatever V is. Plain method calls on h.View() are
// resolved statically against V instead.
//
// Panics on the zero Handle.
func Virtual[V, D any](h Handle[V], of *Class[V, D]) D {
	h.mustValid()
	return h.rt.table.bind(of.info.depth, h.obj).(D)
}
