package silo

import "testing"

func TestSelect1OnlyMatchesSupersetArchetypes(t *testing.T) {
	s := newTestStore(t)
	posOnly := s.CreateEntity()
	posVel := s.CreateEntity()
	velOnly := s.CreateEntity()

	must(t, AddComponent1(s, posOnly, Position{X: 1}))
	must(t, AddComponent2(s, posVel, Position{X: 2}, Velocity{X: 2}))
	must(t, AddComponent1(s, velOnly, Velocity{X: 3}))

	seen := map[EntityID]Position{}
	for sv := range Select1[Position](s).All() {
		ids := sv.IDs()
		positions := sv.Read1()
		for i := range ids {
			seen[ids[i]] = positions[i]
		}
	}
	if len(seen) != 2 {
		t.Fatalf("seen = %v, want 2 entries", seen)
	}
	if seen[posOnly] != (Position{X: 1}) {
		t.Errorf("seen[posOnly] = %v", seen[posOnly])
	}
	if seen[posVel] != (Position{X: 2}) {
		t.Errorf("seen[posVel] = %v", seen[posVel])
	}
	if _, ok := seen[velOnly]; ok {
		t.Errorf("velOnly should not appear in a Position selection")
	}
}

func TestSelectSkipsEmptyChunks(t *testing.T) {
	s := newTestStore(t)
	e := s.CreateEntity()
	must(t, AddComponent1(s, e, Position{X: 1}))
	must(t, s.DestroyEntity(e))

	count := 0
	for sv := range Select1[Position](s).All() {
		count += sv.Size()
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0 after the only row was destroyed", count)
	}
}

func TestViewWriteMutatesBackingChunk(t *testing.T) {
	s := newTestStore(t)
	e := s.CreateEntity()
	must(t, AddComponent2(s, e, Position{X: 0, Y: 0}, Velocity{X: 1, Y: 2}))

	for sv := range Select2[Position, Velocity](s).All() {
		positions := sv.Write1()
		velocities := sv.Read2()
		for i := 0; i < sv.Size(); i++ {
			positions[i].X += velocities[i].X
			positions[i].Y += velocities[i].Y
		}
	}

	var got Position
	for sv := range Select1[Position](s).All() {
		got = sv.Read1()[0]
	}
	if got != (Position{X: 1, Y: 2}) {
		t.Fatalf("got %v, want {1 2}", got)
	}
}

func TestSelectAllEarlyExitStopsIteration(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		e := s.CreateEntity()
		must(t, AddComponent1(s, e, Position{X: float64(i)}))
		if i%2 == 1 {
			// Spread the rows over two matching chunks so there is a
			// second SubView the break must skip.
			must(t, AddComponent1(s, e, Velocity{X: 1}))
		}
	}

	visited := 0
	for range Select1[Position](s).All() {
		visited++
		break
	}
	if visited != 1 {
		t.Fatalf("visited = %d, want 1 (iteration should stop on break)", visited)
	}
}
