package silo

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

var errNotRegistered = errors.New("unregistered component")

// ComponentID is the 0-based index of a registered component type within a
// Store's roster. It is the position of that component's bit within an
// Archetype bitmask.
type ComponentID uint8

// componentRoster holds the statically registered component types for one
// Store. Registration is expected to happen once, before any entity is
// given a row; the roster never shrinks or reorders afterward.
type componentRoster struct {
	typeToID map[reflect.Type]ComponentID
	sizes    [maxComponents]int
	aligns   [maxComponents]int
	count    int
}

func newComponentRoster() componentRoster {
	return componentRoster{typeToID: make(map[reflect.Type]ComponentID, maxComponents)}
}

// RegisterComponent adds T to store's component roster and returns its
// ComponentID. Registering the same type twice returns the existing ID.
// It returns ErrTooManyComponents once the roster already holds
// maxComponents entries, and ErrCapacityTooSmall if admitting T would make
// the worst-case archetype (every registered component present at once)
// no longer fit in a single chunk.
func RegisterComponent[T any](s *Store) (ComponentID, error) {
	var zero T
	t := reflect.TypeOf(zero)

	if id, ok := s.roster.typeToID[t]; ok {
		return id, nil
	}
	if s.roster.count >= maxComponents {
		return 0, ErrTooManyComponents
	}

	id := ComponentID(s.roster.count)
	s.roster.typeToID[t] = id
	s.roster.sizes[id] = int(t.Size())
	align := t.Align()
	if align < 1 {
		align = 1
	}
	s.roster.aligns[id] = align
	s.roster.count++

	fullRoster := Archetype(1)<<uint(s.roster.count) - 1
	if s.capacityFor(fullRoster) < 1 {
		// Roll back: this registration made the worst case unrealizable.
		delete(s.roster.typeToID, t)
		s.roster.count--
		return 0, ErrCapacityTooSmall
	}
	return id, nil
}

// GetID returns the ComponentID for T. It panics if T was never
// registered on s, mirroring the registration-is-build-time contract: a
// caller referencing an unregistered type is a programming error, not a
// recoverable runtime condition.
func GetID[T any](s *Store) ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	id, ok := s.roster.typeToID[t]
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("silo: component type %s not registered: %w", t, errNotRegistered)))
	}
	return id
}

func maskFor[T any](s *Store) Archetype {
	return Archetype(1) << uint(GetID[T](s))
}
