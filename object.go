// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass

import "reflect"

// Object is the root of every class hierarchy.
// Every class embeds Object, either directly or through its base.
type Object struct{}

// Stub is the virtual interface of [Object].
// It declares no methods and terminates every [VTable].
type Stub interface{}

// Instance is a type-erased pointer to a class value, such as a *Cat held
// as any. The concrete pointer type is recovered by type assertion at the
// boundary that knows it.
type Instance = any

// ObjectClass is the root class. Its ID is always 0.
var ObjectClass = defineRoot()

func defineRoot() *Class[Object, Stub] {
	typ := reflect.TypeFor[Object]()
	info := &Info{
		name: typ.String(),
		typ:  typ,
	}
	info.chain = []*Info{info}
	info.table = &VTable{
		class: info,
		slots: []slot{{owner: info, bind: func(o Instance) Instance { return o.(*Object) }}},
	}
	register(info)
	return &Class[Object, Stub]{info: info}
}
