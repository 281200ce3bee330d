// Command silodemo builds a Store and a JobSystem, populates three
// entities, schedules a velocity-integration job over a Position+Velocity
// view, and prints the resulting positions from a not-concurrent critical
// section.
//
// Run with -profile to wrap the run in a CPU profile written to the
// current directory.
package main

import (
	"flag"
	"fmt"

	"github.com/TheBitDrifter/silo"
	"github.com/TheBitDrifter/silo/jobs"
	"github.com/pkg/profile"
)

type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	X, Y, Z float32
}

type Health struct {
	Value uint32
}

func main() {
	doProfile := flag.Bool("profile", false, "wrap the run in a CPU profile")
	flag.Parse()

	if *doProfile {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

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
	if _, err := silo.RegisterComponent[Health](store); err != nil {
		panic(err)
	}

	js := jobs.NewJobSystem(64)
	fmt.Println(js.Workers())

	first := store.CreateEntity()
	second := store.CreateEntity()
	third := store.CreateEntity()

	must(silo.AddComponent1(store, first, Position{1, 2, 3}))
	must(silo.AddComponent2(store, second, Position{10, 20, 30}, Velocity{10, 0, 1}))
	must(silo.AddComponent1(store, first, Velocity{1, 1, 1}))
	must(silo.AddComponent1(store, third, Position{1, 2, 3}))
	must(silo.DelComponents1[Velocity](store, second))

	view := silo.Select2[Position, Velocity](store)
	for sv := range view.All() {
		sv := sv
		js.Schedule(func() {
			size := sv.Size()
			positions := sv.Write1()
			velocities := sv.Read2()
			for i := 0; i < size; i++ {
				positions[i].X += velocities[i].X
				positions[i].Y += velocities[i].Y
				positions[i].Z += velocities[i].Z
			}
		})
	}

	printed := make(chan struct{})
	js.ScheduleNotConcurrent(func() {
		defer close(printed)
		for sv := range silo.Select1[Position](store).All() {
			size := sv.Size()
			positions := sv.Read1()
			ids := sv.IDs()
			for i := 0; i < size; i++ {
				fmt.Printf("Entity %d position: %v %v %v\n", ids[i], positions[i].X, positions[i].Y, positions[i].Z)
			}
		}
	})

	js.ScheduleSyncPoint()
	<-printed
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
