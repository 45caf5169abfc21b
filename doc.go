// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package klass provides a minimal single-inheritance object model for Go.
//
// A class is a struct that embeds exactly one base class, forming a linear
// ancestor chain rooted at [Object]. On top of plain embedding, klass adds
// per-class virtual tables and a [Handle] that remembers an object's
// runtime (most-derived) class, so a reference that has been cast toward
// the root can be checked and cast back.
//
// # Design Philosophy
//
// klass provides:
//   - Structural, compile-time checked navigation toward the root
//   - Identity-checked navigation back toward the runtime class
//   - Virtual tables composed once per class from the base table and
//     explicit per-interface overrides
//
// Runtime type identity is captured exactly once, when a [Handle] is created
// from a concrete object, and carried unchanged through every cast. klass
// never recovers a forgotten type after the fact.
//
// # Declaring Classes
//
// Each class embeds its base, projects to it with a Base method and names
// one virtual interface ("Dyn") that it implements itself:
//
//	type Animal struct {
//		klass.Object
//		Name string
//	}
//
//	func (a *Animal) Base() *klass.Object { return &a.Object }
//	func (a *Animal) MakeNoise() string   { return "..." }
//
//	type AnimalDyn interface{ MakeNoise() string }
//
//	var AnimalClass = klass.Define(klass.ObjectClass, func(a *Animal) AnimalDyn { return a })
//
// A class that re-implements an ancestor's virtual interface names that
// ancestor in an [Override] option. Overrides are per interface, never per
// method: the binding function only compiles when the class implements the
// whole interface.
//
//	var StrayCatClass = klass.Define(CatClass,
//		func(s *StrayCat) klass.Stub { return s },
//		klass.Override(AnimalClass, func(s *StrayCat) AnimalDyn { return s }),
//	)
//
//   - [Define]: Declare a class from its base class and virtual binding
//   - [Override]: Replace an ancestor level of the new class's table
//   - [ObjectClass]: The root class, whose interface is [Stub]
//   - [Of]: Look up the metadata of a defined type
//
// # Class Identity
//
// [Info] is the static metadata of a class: a process-unique [ID], the
// depth in the chain, the ancestor chain itself and the [VTable].
//
//   - [Info.Chain]: Ancestors ordered from the root to the class
//   - [Info.IsSubclassOf], [Info.IsSuperclassOf]: Chain predicates
//   - [VTable.Owner]: The class whose implementation fills a level
//
// # Handles and Casts
//
//   - [From], [Class.From]: Create a handle from a concrete object
//   - [Upcast]: Move the view to the direct base (compile-time checked, infallible)
//   - [Root]: Move the view to [Object] (infallible)
//   - [Downcast]: Recover a class between the view and the runtime class
//     (runtime checked, returns false on a miss)
//   - [Virtual]: Call through the runtime class's table
//
// Non-virtual calls need nothing from klass: Go method promotion resolves a
// method on the closest ancestor that declares it, and a method no ancestor
// declares is a compile error.
//
// # Example
//
//	h := StrayCatClass.From(&StrayCat{Cat: Cat{Animal: Animal{Name: "Tom"}, Color: "grey"}})
//	a := klass.Upcast(klass.Upcast(h, CatClass), AnimalClass)
//
//	a.View().MakeNoise()                          // Animal's implementation
//	klass.Virtual(a, AnimalClass).MakeNoise()     // StrayCat's override
//
//	if c, ok := klass.Downcast(a, CatClass); ok { // Cat lies between Animal and StrayCat
//		_ = c.Color
//	}
//	_, ok := klass.Downcast(a, DogClass)          // false: unrelated branch
//
// # Concurrency
//
// Classes are defined during package initialization. Tables and class
// metadata are immutable afterwards and may be read from any number of
// goroutines. A Handle adds no synchronization of its own; concurrent use
// of the underlying object follows the usual Go rules.
package klass
