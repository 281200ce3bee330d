package silo

// AddComponent1 adds or overwrites one component on h, per spec.md
// §4.1's addComponents: if h has no row yet, this is its first row;
// otherwise its row migrates to the union archetype. New values always
// overwrite any previous value for the same type.
func AddComponent1[T1 any](s *Store, h EntityID, v1 T1) error {
	id1 := GetID[T1](s)
	addition := Archetype(1) << uint(id1)
	write := func(c *chunk, row int) { setComponent(c, id1, row, v1) }
	return s.addComponents(h, addition, write)
}

// AddComponent2 adds or overwrites two components on h in one migration.
func AddComponent2[T1, T2 any](s *Store, h EntityID, v1 T1, v2 T2) error {
	id1, id2 := GetID[T1](s), GetID[T2](s)
	addition := Archetype(1)<<uint(id1) | Archetype(1)<<uint(id2)
	write := func(c *chunk, row int) {
		setComponent(c, id1, row, v1)
		setComponent(c, id2, row, v2)
	}
	return s.addComponents(h, addition, write)
}

// AddComponent3 adds or overwrites three components on h in one migration.
func AddComponent3[T1, T2, T3 any](s *Store, h EntityID, v1 T1, v2 T2, v3 T3) error {
	id1, id2, id3 := GetID[T1](s), GetID[T2](s), GetID[T3](s)
	addition := Archetype(1)<<uint(id1) | Archetype(1)<<uint(id2) | Archetype(1)<<uint(id3)
	write := func(c *chunk, row int) {
		setComponent(c, id1, row, v1)
		setComponent(c, id2, row, v2)
		setComponent(c, id3, row, v3)
	}
	return s.addComponents(h, addition, write)
}

// AddComponent4 adds or overwrites four components on h in one migration.
func AddComponent4[T1, T2, T3, T4 any](s *Store, h EntityID, v1 T1, v2 T2, v3 T3, v4 T4) error {
	id1, id2, id3, id4 := GetID[T1](s), GetID[T2](s), GetID[T3](s), GetID[T4](s)
	addition := Archetype(1)<<uint(id1) | Archetype(1)<<uint(id2) | Archetype(1)<<uint(id3) | Archetype(1)<<uint(id4)
	write := func(c *chunk, row int) {
		setComponent(c, id1, row, v1)
		setComponent(c, id2, row, v2)
		setComponent(c, id3, row, v3)
		setComponent(c, id4, row, v4)
	}
	return s.addComponents(h, addition, write)
}

// addComponents is the arity-independent core of the AddComponentN family:
// resolve (or reserve) h's entity-map slot and either start its first row
// or migrate it to the union archetype.
func (s *Store) addComponents(h EntityID, addition Archetype, write func(*chunk, int)) error {
	emi, err := s.findAvailableEntityMapIndex(h)
	if err != nil {
		return err
	}
	if !s.hasRow(emi) {
		return s.insertFirstRow(h, emi, addition, write)
	}
	current := s.archetypes[s.positions[emi].slot].archetype
	return s.transferRow(emi, current|addition, write)
}

// DelComponents1 removes one component type from h, per spec.md §4.1's
// delComponents: the row migrates to the difference archetype, or the
// entity is removed entirely if that difference is empty. Deleting a
// component h does not have is a no-op on that bit.
func DelComponents1[T1 any](s *Store, h EntityID) error {
	return s.delComponents(h, maskFor[T1](s))
}

// DelComponents2 removes two component types from h in one migration.
func DelComponents2[T1, T2 any](s *Store, h EntityID) error {
	return s.delComponents(h, maskFor[T1](s)|maskFor[T2](s))
}

// DelComponents3 removes three component types from h in one migration.
func DelComponents3[T1, T2, T3 any](s *Store, h EntityID) error {
	return s.delComponents(h, maskFor[T1](s)|maskFor[T2](s)|maskFor[T3](s))
}

// DelComponents4 removes four component types from h in one migration.
func DelComponents4[T1, T2, T3, T4 any](s *Store, h EntityID) error {
	return s.delComponents(h, maskFor[T1](s)|maskFor[T2](s)|maskFor[T3](s)|maskFor[T4](s))
}

func (s *Store) delComponents(h EntityID, removal Archetype) error {
	emi, err := s.findEntityMapIndex(h)
	if err != nil {
		return err
	}
	current := s.archetypes[s.positions[emi].slot].archetype
	remainder := current &^ removal
	if remainder == 0 {
		s.removeRow(emi)
		s.entityIDs[emi] = tombstone
		return nil
	}
	return s.transferRow(emi, remainder, nil)
}
