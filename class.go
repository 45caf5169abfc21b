// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass

import (
	"reflect"
	"sync"
)

// ID is a process-unique class identity token.
type ID uint32

// defineMu serializes registration; nextID is guarded by it.
var (
	defineMu sync.Mutex
	nextID   ID
)

// registry maps reflect.Type -> *Info for every defined class.
var registry sync.Map

// Info is the static metadata of a class: its position in the ancestor
// chain, its identity token and its virtual table.
// Info values are created once by [Define] and never mutated afterwards.
type Info struct {
	id    ID
	name  string
	depth int
	base  *Info
	chain []*Info
	up    func(Instance) Instance
	table *VTable
	typ   reflect.Type
}

// ID returns the identity token of the class.
func (c *Info) ID() ID { return c.id }

// Name returns the Go type name of the class, e.g. "zoo.Cat".
func (c *Info) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Info) String() string { return c.name }

// Depth returns the distance from the root. [Object] has depth 0.
func (c *Info) Depth() int { return c.depth }

// Base returns the direct base class, or nil for [Object].
func (c *Info) Base() *Info { return c.base }

// VTable returns the virtual table of the class.
func (c *Info) VTable() *VTable { return c.table }

// Chain returns the ancestor chain ordered from the root to c inclusive.
func (c *Info) Chain() []*Info {
	out := make([]*Info, len(c.chain))
	copy(out, c.chain)
	return out
}

// Ancestor returns the ancestor of c at the given depth, or nil if depth
// is out of range. Ancestor(c.Depth()) is c itself.
func (c *Info) Ancestor(depth int) *Info {
	if depth < 0 || depth >= len(c.chain) {
		return nil
	}
	return c.chain[depth]
}

// IsSubclassOf reports whether c is other or descends from other.
func (c *Info) IsSubclassOf(other *Info) bool {
	if other == nil {
		return false
	}
	return c.Ancestor(other.depth) == other
}

// IsSuperclassOf reports whether c is other or one of its ancestors.
func (c *Info) IsSuperclassOf(other *Info) bool {
	return other != nil && other.IsSubclassOf(c)
}

// project walks an instance of c up to the ancestor at depth.
func (c *Info) project(o Instance, depth int) Instance {
	for i := c; i.depth > depth; i = i.base {
		o = i.up(o)
	}
	return o
}

// Class is the typed descriptor of a class T whose virtual interface is D.
// Descriptors are obtained from [Define]; the root is [ObjectClass].
type Class[T, D any] struct {
	info *Info
}

// Info returns the metadata of the class.
func (c *Class[T, D]) Info() *Info { return c.info }

// From creates a [Handle] over a concrete object of class T.
// The runtime class of the handle is T. Panics if p is nil.
func (c *Class[T, D]) From(p *T) Handle[T] {
	if p == nil {
		panic("klass: handle from nil " + c.info.name)
	}
	return Handle[T]{view: p, obj: p, rt: c.info, depth: c.info.depth}
}

// Of returns the metadata of a defined class, or nil if T was never
// passed to [Define].
func Of[T any]() *Info {
	v, ok := registry.Load(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	return v.(*Info)
}

// Define declares the class T with base B and virtual interface D.
//
// *T must provide Base() *B returning the address of the B value embedded
// in T; dyn binds *T to its own virtual interface and is the default
// implementation at T's level. Overrides of ancestor levels are passed as
// [Override] options.
//
// Define is meant to initialize package-level variables:
//
//	var CatClass = klass.Define(AnimalClass, func(c *Cat) CatDyn { return c })
//
// Violations that the compiler cannot reject panic, so a misdeclared
// program fails during initialization.
func Define[T, D any, PT interface {
	*T
	Base() *B
}, B, BD any](base *Class[B, BD], dyn func(*T) D, opts ...Option[T]) *Class[T, D] {
	typ := reflect.TypeFor[T]()
	if base == nil || base.info == nil {
		panic("klass: nil base class for " + typ.String())
	}
	if dyn == nil {
		panic("klass: nil virtual binding for " + typ.String())
	}
	checkEmbedding[T, PT, B](typ, base.info)

	b := base.info
	info := &Info{
		name:  typ.String(),
		depth: b.depth + 1,
		base:  b,
		up:    func(o Instance) Instance { return PT(o.(*T)).Base() },
		typ:   typ,
	}
	info.chain = append(b.Chain(), info)

	def := &definition{info: info, table: inherit(info, b.table)}
	def.table.slots[info.depth] = slot{owner: info, bind: func(o Instance) Instance { return dyn(o.(*T)) }}
	for _, opt := range opts {
		opt(def)
	}

	info.table = def.table
	register(info)
	return &Class[T, D]{info: info}
}

// register assigns the next ID to info and records it. IDs are only
// consumed by classes the registry accepts.
func register(info *Info) {
	defineMu.Lock()
	defer defineMu.Unlock()
	if _, loaded := registry.Load(info.typ); loaded {
		panic("klass: class " + info.name + " already defined")
	}
	info.id = nextID
	nextID++
	registry.Store(info.typ, info)
}

// checkEmbedding verifies that T is a struct with exactly one embedded field
// of the base class, declared directly in T, and that Base returns the
// address of that field.
func checkEmbedding[T any, PT interface {
	*T
	Base() *B
}, B any](typ reflect.Type, base *Info) {
	if typ.Kind() != reflect.Struct {
		panic("klass: class " + typ.String() + " is not a struct")
	}
	index := -1
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.Anonymous || f.Type != base.typ {
			continue
		}
		if index >= 0 {
			panic("klass: " + typ.String() + " embeds " + base.name + " more than once")
		}
		index = i
	}
	if index < 0 {
		panic("klass: " + typ.String() + " does not embed " + base.name)
	}
	zero := new(T)
	want := reflect.ValueOf(zero).Elem().Field(index).Addr().Interface()
	if PT(zero).Base() != want.(*B) {
		panic("klass: " + typ.String() + ".Base does not return its embedded " + base.name)
	}
}
