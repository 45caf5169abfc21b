// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass

// VTable is the immutable virtual table of a class.
//
// It holds one slot per level of the ancestor chain, indexed by depth:
// slot 0 is the [Object] level and slot Len()-1 is the class's own level.
// Each slot binds an instance of the table's class to the implementation
// of that level's virtual interface chosen by the closest class that
// overrode it.
type VTable struct {
	class *Info
	slots []slot
}

type slot struct {
	owner *Info
	bind  func(Instance) Instance
}

// Class returns the class the table belongs to.
func (vt *VTable) Class() *Info { return vt.class }

// Len returns the number of levels in the table.
func (vt *VTable) Len() int { return len(vt.slots) }

// Owner returns the class whose implementation fills the given level,
// or nil if level is out of range.
func (vt *VTable) Owner(level int) *Info {
	if level < 0 || level >= len(vt.slots) {
		return nil
	}
	return vt.slots[level].owner
}

// bind resolves level for o, an instance of vt.class.
func (vt *VTable) bind(level int, o Instance) Instance {
	return vt.slots[level].bind(o)
}

// inherit returns a table for class c whose inherited levels route
// through the base table. The slot at c's own level is left empty.
func inherit(c *Info, base *VTable) *VTable {
	up := c.up
	slots := make([]slot, len(base.slots)+1)
	for i, s := range base.slots {
		bind := s.bind
		slots[i] = slot{owner: s.owner, bind: func(o Instance) Instance { return bind(up(o)) }}
	}
	return &VTable{class: c, slots: slots}
}

// definition is the class under construction handed to each [Option].
type definition struct {
	info       *Info
	table      *VTable
	overridden []*Info
}

// Option configures a class passed to [Define].
type Option[T any] func(*definition)

// Override replaces the entry of an ancestor level in T's table with T's
// own implementation of that level's virtual interface.
//
// impl is usually the identity conversion, which only compiles when *T
// implements every method of LD:
//
//	klass.Override(AnimalClass, func(s *StrayCat) AnimalDyn { return s })
//
// The level must be a strict ancestor of T and may be named once.
func Override[T, L, LD any](level *Class[L, LD], impl func(*T) LD) Option[T] {
	return func(d *definition) {
		if level == nil || level.info == nil || impl == nil {
			panic("klass: nil override for " + d.info.name)
		}
		l := level.info
		if l == d.info || !d.info.base.IsSubclassOf(l) {
			panic("klass: " + d.info.name + " cannot override " + l.name + ": not an ancestor")
		}
		for _, o := range d.overridden {
			if o == l {
				panic("klass: " + d.info.name + " overrides " + l.name + " twice")
			}
		}
		d.overridden = append(d.overridden, l)
		d.table.slots[l.depth] = slot{owner: d.info, bind: func(o Instance) Instance { return impl(o.(*T)) }}
	}
}
