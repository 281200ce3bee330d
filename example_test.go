package silo_test

import (
	"fmt"

	"github.com/TheBitDrifter/silo"
)

type Position struct {
	X, Y, Z float64
}

type Velocity struct {
	X, Y, Z float64
}

// Example_velocityIntegration builds a small store, attaches Position and
// Velocity to a couple of entities, and integrates velocity into position
// over every row that carries both.
func Example_velocityIntegration() {
	store := silo.NewStore(silo.Config{
		MaxEntities: 100,
		MaxChunks:   10,
		ChunkSize:   4096,
	})
	if _, err := silo.RegisterComponent[Position](store); err != nil {
		panic(err)
	}
	if _, err := silo.RegisterComponent[Velocity](store); err != nil {
		panic(err)
	}

	first := store.CreateEntity()
	second := store.CreateEntity()

	if err := silo.AddComponent2(store, first, Position{X: 1, Y: 2, Z: 3}, Velocity{X: 1, Y: 0, Z: 0}); err != nil {
		panic(err)
	}
	if err := silo.AddComponent1(store, second, Position{X: 10, Y: 20, Z: 30}); err != nil {
		panic(err)
	}

	view := silo.Select2[Position, Velocity](store)
	for sv := range view.All() {
		positions := sv.Write1()
		velocities := sv.Read2()
		for i := 0; i < sv.Size(); i++ {
			positions[i].X += velocities[i].X
			positions[i].Y += velocities[i].Y
			positions[i].Z += velocities[i].Z
		}
	}

	// Row order follows archetype-map slot order, not creation order.
	for sv := range silo.Select1[Position](store).All() {
		ids := sv.IDs()
		positions := sv.Read1()
		for i := 0; i < sv.Size(); i++ {
			fmt.Printf("entity %d: %.0f %.0f %.0f\n", ids[i], positions[i].X, positions[i].Y, positions[i].Z)
		}
	}

	// Output:
	// entity 2: 10 20 30
	// entity 1: 2 2 3
}
