package silo

import "iter"

// matches reports whether slot's chunk is live (notEmpty) and its
// archetype is a superset of selector, per spec.md §4.1's Select
// semantics. Iteration order follows archetype-map probe order and is
// documented as unspecified.
func (s *Store) matches(slot int, selector Archetype) bool {
	return s.notEmpty.Get(slot) && s.archetypes[slot].archetype&selector == selector
}

// View1 selects every chunk whose archetype carries T1.
type View1[T1 any] struct {
	store    *Store
	id1      ComponentID
	selector Archetype
}

// Select1 builds a view over every live chunk carrying T1.
func Select1[T1 any](s *Store) View1[T1] {
	id1 := GetID[T1](s)
	return View1[T1]{store: s, id1: id1, selector: Archetype(1) << uint(id1)}
}

// All iterates every matching chunk as a SubView1.
func (v View1[T1]) All() iter.Seq[SubView1[T1]] {
	return func(yield func(SubView1[T1]) bool) {
		for slot := range v.store.archetypes {
			if !v.store.matches(slot, v.selector) {
				continue
			}
			c := v.store.chunkAt(slot)
			if !yield((SubView1[T1]{chunk: c, id1: v.id1})) {
				return
			}
		}
	}
}

// SubView1 exposes one matching chunk's rows.
type SubView1[T1 any] struct {
	chunk *chunk
	id1   ComponentID
}

func (sv SubView1[T1]) Size() int        { return sv.chunk.size }
func (sv SubView1[T1]) IDs() []EntityID  { return sv.chunk.idSlice() }
func (sv SubView1[T1]) Read1() []T1      { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView1[T1]) Write1() []T1     { return componentColumn[T1](sv.chunk, sv.id1) }

// View2 selects every chunk whose archetype carries both T1 and T2.
type View2[T1, T2 any] struct {
	store    *Store
	id1, id2 ComponentID
	selector Archetype
}

// Select2 builds a view over every live chunk carrying T1 and T2.
func Select2[T1, T2 any](s *Store) View2[T1, T2] {
	id1, id2 := GetID[T1](s), GetID[T2](s)
	return View2[T1, T2]{
		store: s, id1: id1, id2: id2,
		selector: Archetype(1)<<uint(id1) | Archetype(1)<<uint(id2),
	}
}

func (v View2[T1, T2]) All() iter.Seq[SubView2[T1, T2]] {
	return func(yield func(SubView2[T1, T2]) bool) {
		for slot := range v.store.archetypes {
			if !v.store.matches(slot, v.selector) {
				continue
			}
			c := v.store.chunkAt(slot)
			if !yield(SubView2[T1, T2]{chunk: c, id1: v.id1, id2: v.id2}) {
				return
			}
		}
	}
}

// SubView2 exposes one matching chunk's rows for two component types.
type SubView2[T1, T2 any] struct {
	chunk    *chunk
	id1, id2 ComponentID
}

func (sv SubView2[T1, T2]) Size() int       { return sv.chunk.size }
func (sv SubView2[T1, T2]) IDs() []EntityID { return sv.chunk.idSlice() }
func (sv SubView2[T1, T2]) Read1() []T1     { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView2[T1, T2]) Write1() []T1    { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView2[T1, T2]) Read2() []T2     { return componentColumn[T2](sv.chunk, sv.id2) }
func (sv SubView2[T1, T2]) Write2() []T2    { return componentColumn[T2](sv.chunk, sv.id2) }

// View3 selects every chunk whose archetype carries T1, T2, and T3.
type View3[T1, T2, T3 any] struct {
	store         *Store
	id1, id2, id3 ComponentID
	selector      Archetype
}

// Select3 builds a view over every live chunk carrying T1, T2, and T3.
func Select3[T1, T2, T3 any](s *Store) View3[T1, T2, T3] {
	id1, id2, id3 := GetID[T1](s), GetID[T2](s), GetID[T3](s)
	return View3[T1, T2, T3]{
		store: s, id1: id1, id2: id2, id3: id3,
		selector: Archetype(1)<<uint(id1) | Archetype(1)<<uint(id2) | Archetype(1)<<uint(id3),
	}
}

func (v View3[T1, T2, T3]) All() iter.Seq[SubView3[T1, T2, T3]] {
	return func(yield func(SubView3[T1, T2, T3]) bool) {
		for slot := range v.store.archetypes {
			if !v.store.matches(slot, v.selector) {
				continue
			}
			c := v.store.chunkAt(slot)
			if !yield(SubView3[T1, T2, T3]{chunk: c, id1: v.id1, id2: v.id2, id3: v.id3}) {
				return
			}
		}
	}
}

// SubView3 exposes one matching chunk's rows for three component types.
type SubView3[T1, T2, T3 any] struct {
	chunk         *chunk
	id1, id2, id3 ComponentID
}

func (sv SubView3[T1, T2, T3]) Size() int       { return sv.chunk.size }
func (sv SubView3[T1, T2, T3]) IDs() []EntityID { return sv.chunk.idSlice() }
func (sv SubView3[T1, T2, T3]) Read1() []T1     { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView3[T1, T2, T3]) Write1() []T1    { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView3[T1, T2, T3]) Read2() []T2     { return componentColumn[T2](sv.chunk, sv.id2) }
func (sv SubView3[T1, T2, T3]) Write2() []T2    { return componentColumn[T2](sv.chunk, sv.id2) }
func (sv SubView3[T1, T2, T3]) Read3() []T3     { return componentColumn[T3](sv.chunk, sv.id3) }
func (sv SubView3[T1, T2, T3]) Write3() []T3    { return componentColumn[T3](sv.chunk, sv.id3) }

// View4 selects every chunk whose archetype carries T1, T2, T3, and T4.
type View4[T1, T2, T3, T4 any] struct {
	store              *Store
	id1, id2, id3, id4 ComponentID
	selector           Archetype
}

// Select4 builds a view over every live chunk carrying all four types.
func Select4[T1, T2, T3, T4 any](s *Store) View4[T1, T2, T3, T4] {
	id1, id2, id3, id4 := GetID[T1](s), GetID[T2](s), GetID[T3](s), GetID[T4](s)
	return View4[T1, T2, T3, T4]{
		store: s, id1: id1, id2: id2, id3: id3, id4: id4,
		selector: Archetype(1)<<uint(id1) | Archetype(1)<<uint(id2) |
			Archetype(1)<<uint(id3) | Archetype(1)<<uint(id4),
	}
}

func (v View4[T1, T2, T3, T4]) All() iter.Seq[SubView4[T1, T2, T3, T4]] {
	return func(yield func(SubView4[T1, T2, T3, T4]) bool) {
		for slot := range v.store.archetypes {
			if !v.store.matches(slot, v.selector) {
				continue
			}
			c := v.store.chunkAt(slot)
			if !yield(SubView4[T1, T2, T3, T4]{
				chunk: c, id1: v.id1, id2: v.id2, id3: v.id3, id4: v.id4,
			}) {
				return
			}
		}
	}
}

// SubView4 exposes one matching chunk's rows for four component types.
type SubView4[T1, T2, T3, T4 any] struct {
	chunk              *chunk
	id1, id2, id3, id4 ComponentID
}

func (sv SubView4[T1, T2, T3, T4]) Size() int       { return sv.chunk.size }
func (sv SubView4[T1, T2, T3, T4]) IDs() []EntityID { return sv.chunk.idSlice() }
func (sv SubView4[T1, T2, T3, T4]) Read1() []T1     { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView4[T1, T2, T3, T4]) Write1() []T1    { return componentColumn[T1](sv.chunk, sv.id1) }
func (sv SubView4[T1, T2, T3, T4]) Read2() []T2     { return componentColumn[T2](sv.chunk, sv.id2) }
func (sv SubView4[T1, T2, T3, T4]) Write2() []T2    { return componentColumn[T2](sv.chunk, sv.id2) }
func (sv SubView4[T1, T2, T3, T4]) Read3() []T3     { return componentColumn[T3](sv.chunk, sv.id3) }
func (sv SubView4[T1, T2, T3, T4]) Write3() []T3    { return componentColumn[T3](sv.chunk, sv.id3) }
func (sv SubView4[T1, T2, T3, T4]) Read4() []T4     { return componentColumn[T4](sv.chunk, sv.id4) }
func (sv SubView4[T1, T2, T3, T4]) Write4() []T4    { return componentColumn[T4](sv.chunk, sv.id4) }
