package silo

import "testing"

// TestScenarioACompositionAndSelection reproduces the reference scenario
// from the design notes: three entities with overlapping component sets,
// selected two different ways.
func TestScenarioACompositionAndSelection(t *testing.T) {
	s := newTestStore(t)
	e1 := s.CreateEntity()
	e2 := s.CreateEntity()
	e3 := s.CreateEntity()

	must(t, AddComponent1(s, e1, Position{X: 1, Y: 2}))
	must(t, AddComponent2(s, e2, Position{X: 10, Y: 20}, Velocity{X: 10, Y: 0}))
	must(t, AddComponent1(s, e1, Velocity{X: 1, Y: 1}))
	must(t, AddComponent1(s, e3, Position{X: 1, Y: 2}))
	must(t, DelComponents1[Velocity](s, e2))

	both := map[EntityID]bool{}
	for sv := range Select2[Position, Velocity](s).All() {
		for _, id := range sv.IDs() {
			both[id] = true
		}
	}
	if len(both) != 1 || !both[e1] {
		t.Fatalf("Select2[Position,Velocity] = %v, want exactly {e1}", both)
	}

	posOnly := map[EntityID]bool{}
	for sv := range Select1[Position](s).All() {
		for _, id := range sv.IDs() {
			posOnly[id] = true
		}
	}
	if len(posOnly) != 3 || !posOnly[e1] || !posOnly[e2] || !posOnly[e3] {
		t.Fatalf("Select1[Position] = %v, want {e1,e2,e3}", posOnly)
	}
}

// TestScenarioDCompactionAfterTombstone forces two entity handles to
// collide modulo the entity map's capacity, destroys the first, and
// checks that inserting a third entity (which also collides) lands in
// the tombstoned slot rather than probing further.
func TestScenarioDCompactionAfterTombstone(t *testing.T) {
	s := newTestStore(t)
	capE := len(s.entityIDs)

	e1 := s.CreateEntity() // handle 1
	must(t, AddComponent1(s, e1, Position{X: 1}))

	// e2 collides with e1 modulo capE by construction.
	e2 := e1 + EntityID(capE)
	emi2, err := s.findAvailableEntityMapIndex(e2)
	if err != nil {
		t.Fatalf("findAvailableEntityMapIndex(e2): %v", err)
	}
	must(t, AddComponent1(s, e2, Position{X: 2}))
	if gotEmi, err := s.findEntityMapIndex(e2); err != nil || gotEmi != emi2 {
		t.Fatalf("findEntityMapIndex(e2) = (%d, %v), want (%d, nil)", gotEmi, err, emi2)
	}

	if err := s.DestroyEntity(e1); err != nil {
		t.Fatalf("DestroyEntity(e1): %v", err)
	}

	// e3 also collides with e1/e2 modulo capE, and e1's original slot is
	// now tombstoned; insertion should land there instead of probing past
	// e2's slot.
	e3 := e1 + EntityID(2*capE)
	emi1 := int(e1) % capE
	emi3, err := s.findAvailableEntityMapIndex(e3)
	if err != nil {
		t.Fatalf("findAvailableEntityMapIndex(e3): %v", err)
	}
	if emi3 != emi1 {
		t.Fatalf("findAvailableEntityMapIndex(e3) = %d, want the tombstoned slot %d", emi3, emi1)
	}
}

// TestScenarioEMultipleChunksPerArchetype inserts more entities of one
// archetype than two chunks can hold (2K+1 for chunk capacity K), and
// checks that three archetype-map slots are claimed and rows are
// distributed across their chunks without loss.
func TestScenarioEMultipleChunksPerArchetype(t *testing.T) {
	s := NewStore(Config{MaxEntities: 256, MaxChunks: 8, ChunkSize: 256})
	must2(t)(RegisterComponent[Position](s))

	slot, err := s.resolveArchetypeSlot(maskFor[Position](s))
	if err != nil {
		t.Fatalf("resolveArchetypeSlot: %v", err)
	}
	k := s.chunkAt(slot).capacity
	if k < 1 {
		t.Fatalf("need positive chunk capacity, got %d", k)
	}

	total := 2*k + 1
	ids := make([]EntityID, total)
	for i := 0; i < total; i++ {
		ids[i] = s.CreateEntity()
		must(t, AddComponent1(s, ids[i], Position{X: float64(i)}))
	}

	occupiedSlots := 0
	rowsSeen := 0
	byX := map[float64]bool{}
	for slotIdx := range s.archetypes {
		if !s.notEmpty.Get(slotIdx) {
			continue
		}
		if s.archetypes[slotIdx].archetype != maskFor[Position](s) {
			continue
		}
		occupiedSlots++
		c := s.chunkAt(slotIdx)
		rowsSeen += c.size
		for _, p := range componentColumn[Position](c, GetID[Position](s)) {
			byX[p.X] = true
		}
	}

	if occupiedSlots != 3 {
		t.Fatalf("occupied archetype-map slots = %d, want 3 for %d entities of chunk capacity %d", occupiedSlots, total, k)
	}
	if rowsSeen != total {
		t.Fatalf("rows seen = %d, want %d", rowsSeen, total)
	}
	if len(byX) != total {
		t.Fatalf("distinct X values seen = %d, want %d (no row lost or duplicated)", len(byX), total)
	}
}
