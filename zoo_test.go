// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package klass_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/klass"
)

// Hierarchy shared by the tests:
//
//	Object ─┬─ Animal ─┬─ Cat ── StrayCat   (StrayCat overrides Animal)
//	        │          └─ Dog ── Puppy      (Dog overrides Animal)
//	        └─ Plant                        (Plant overrides Object)

type Animal struct {
	klass.Object
	Name string
}

func (a *Animal) Base() *klass.Object { return &a.Object }
func (a *Animal) MakeNoise() string   { return "..." }
func (a *Animal) Legs() int           { return 4 }

type AnimalDyn interface {
	MakeNoise() string
	Legs() int
}

type Cat struct {
	Animal
	Color string
}

func (c *Cat) Base() *Animal { return &c.Animal }
func (c *Cat) Purr() string  { return "purr" }

type CatDyn interface {
	Purr() string
}

type StrayCat struct {
	Cat
	Scars int
}

func (s *StrayCat) Base() *Cat        { return &s.Cat }
func (s *StrayCat) MakeNoise() string { return "hiss" }

// Purr shadows Cat.Purr for direct calls only; StrayCat does not override
// the Cat level of its table.
func (s *StrayCat) Purr() string { return "growl" }

type Dog struct {
	Animal
	Breed string
}

func (d *Dog) Base() *Animal     { return &d.Animal }
func (d *Dog) MakeNoise() string { return "woof" }
func (d *Dog) Fetch() string     { return d.Name + " fetches" }

type DogDyn interface {
	Fetch() string
}

type Puppy struct {
	Dog
}

func (p *Puppy) Base() *Dog { return &p.Dog }

type Plant struct {
	klass.Object
	Species string
}

func (p *Plant) Base() *klass.Object { return &p.Object }

var (
	AnimalClass = klass.Define(klass.ObjectClass, func(a *Animal) AnimalDyn { return a })
	CatClass    = klass.Define(AnimalClass, func(c *Cat) CatDyn { return c })

	StrayCatClass = klass.Define(CatClass,
		func(s *StrayCat) klass.Stub { return s },
		klass.Override(AnimalClass, func(s *StrayCat) AnimalDyn { return s }),
	)

	DogClass = klass.Define(AnimalClass,
		func(d *Dog) DogDyn { return d },
		klass.Override(AnimalClass, func(d *Dog) AnimalDyn { return d }),
	)

	PuppyClass = klass.Define(DogClass, func(p *Puppy) klass.Stub { return p })

	PlantClass = klass.Define(klass.ObjectClass,
		func(p *Plant) klass.Stub { return p },
		klass.Override(klass.ObjectClass, func(p *Plant) klass.Stub { return p }),
	)
)

// allClasses lists every class of the test hierarchy, root first.
func allClasses() []*klass.Info {
	return []*klass.Info{
		klass.ObjectClass.Info(),
		AnimalClass.Info(),
		CatClass.Info(),
		StrayCatClass.Info(),
		DogClass.Info(),
		PuppyClass.Info(),
		PlantClass.Info(),
	}
}

func newStrayCat() *StrayCat {
	return &StrayCat{
		Cat:   Cat{Animal: Animal{Name: "Tom"}, Color: "grey"},
		Scars: 3,
	}
}

// mustPanic runs f and fails unless it panics with a message containing want.
func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		s, ok := r.(string)
		if !ok || !strings.Contains(s, want) {
			t.Fatalf("unexpected panic: %v, want message containing %q", r, want)
		}
	}()
	f()
}
