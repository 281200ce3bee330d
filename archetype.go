package silo

// Archetype is the bitmask over the component roster that an entity, or a
// chunk of entities, currently carries. Bit i set means component with
// ComponentID(i) is present. The zero Archetype is the "empty" archetype
// and is never stored in the archetype map.
type Archetype uint32

// has reports whether the archetype carries the component at id.
func (a Archetype) has(id ComponentID) bool {
	return a&(Archetype(1)<<uint(id)) != 0
}

// archetypeSlot is one entry of the store's open-addressed archetype map:
// an archetype bitmask paired with the index of the chunk backing it.
type archetypeSlot struct {
	archetype  Archetype
	chunkIndex int
}

// resolveArchetypeSlot finds the archetype-map slot for archetype using
// the probe described in spec.md §4.1 (findAvailableArchetypeMapIndex):
// walk from archetype%P_A, skipping slots that are occupied by a
// different archetype or are full, until an empty slot or a non-full
// matching slot is found. If the found slot is empty, a fresh chunk is
// allocated and initialized for it.
func (s *Store) resolveArchetypeSlot(archetype Archetype) (int, error) {
	mapCap := len(s.archetypes)
	idx := int(archetype) % mapCap
	for s.archetypes[idx].archetype != 0 &&
		(s.archetypes[idx].archetype != archetype || s.full.Get(idx)) {
		idx = (idx + 1) % mapCap
	}

	if s.archetypes[idx].archetype == 0 {
		if s.nextChunkIndex >= int(s.cfg.MaxChunks) {
			return 0, ErrOutOfChunks
		}
		grew := s.hasAnySlotFor(archetype)

		chunkIdx := s.nextChunkIndex
		s.nextChunkIndex++
		s.chunks[chunkIdx] = s.newChunk(archetype)
		s.archetypes[idx] = archetypeSlot{archetype: archetype, chunkIndex: chunkIdx}

		if Instrumentation.OnChunkAllocated != nil {
			Instrumentation.OnChunkAllocated(archetype, idx, s.chunks[chunkIdx].capacity)
		}
		if grew && Instrumentation.OnArchetypeSlotGrowth != nil {
			Instrumentation.OnArchetypeSlotGrowth(archetype, idx)
		}
	}
	return idx, nil
}

// hasAnySlotFor reports whether archetype already occupies some slot in
// the archetype map, used only to fire the instrumentation hook that
// distinguishes a brand-new archetype from a same-archetype overflow slot.
func (s *Store) hasAnySlotFor(archetype Archetype) bool {
	for i := range s.archetypes {
		if s.archetypes[i].archetype == archetype {
			return true
		}
	}
	return false
}

func (s *Store) chunkAt(slot int) *chunk {
	return &s.chunks[s.archetypes[slot].chunkIndex]
}
