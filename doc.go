/*
Package silo provides a data-oriented entity store with an archetype-chunked
column layout.

Silo keeps a fixed-size population of opaque entity handles, each holding a
dynamic subset of a statically known, fixed roster of component types.
Entities that share the same set of components live in the same archetype,
and archetypes are stored as a chain of fixed-size chunks with column-major
memory, so iterating over any selected component subset reads dense,
contiguous memory.

Core Concepts:

  - EntityID: an opaque handle identifying an entity.
  - Component: a registered value type attached to entities.
  - Archetype: the bitmask of component types an entity currently carries.
  - Chunk: a fixed-size byte block holding column-major storage for one
    archetype's rows.

Basic Usage:

	store := silo.NewStore(silo.Config{
		MaxEntities: 1000,
		MaxChunks:   100,
		ChunkSize:   16 * 1024,
	})

	if _, err := silo.RegisterComponent[Position](store); err != nil {
		panic(err)
	}
	if _, err := silo.RegisterComponent[Velocity](store); err != nil {
		panic(err)
	}

	e := store.CreateEntity()
	silo.AddComponent1(store, e, Position{X: 1, Y: 2, Z: 3})

	view := silo.Select2[Position, Velocity](store)
	for sv := range view.All() {
		positions := sv.Write1()
		velocities := sv.Read2()
		for i := 0; i < sv.Size(); i++ {
			positions[i].X += velocities[i].X
		}
	}

The companion package silo/jobs provides a bounded worker pool with a
sync-point barrier primitive; a typical caller submits jobs that iterate a
Select view, and uses ScheduleNotConcurrent to run store-mutating work in
isolation from the parallel worker jobs. Silo itself is not thread-safe:
mutation must be externally serialized, see the jobs package doc.
*/
package silo
