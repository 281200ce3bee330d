package silo

import "errors"

// ErrNotFound is returned when an entity handle is not present in the
// entity map, e.g. from DestroyEntity or a component-removal call on a
// handle that was never given a row or was already destroyed.
var ErrNotFound = errors.New("silo: entity not found")

// ErrOutOfSpace is returned when the entity map cannot admit a new handle
// because linear probing scanned the whole table without finding an empty
// or tombstoned slot.
var ErrOutOfSpace = errors.New("silo: entity map is out of space")

// ErrOutOfChunks is returned when a row needs a fresh chunk for a new
// archetype-map slot but the store has already allocated MaxChunks chunks.
var ErrOutOfChunks = errors.New("silo: out of chunks")

// ErrCapacityTooSmall is returned at registration time when ChunkSize is
// too small to hold even one row of the worst-case archetype (every
// registered component present at once).
var ErrCapacityTooSmall = errors.New("silo: chunk size too small for registered components")

// ErrTooManyComponents is returned by RegisterComponent once the roster
// already holds maxComponents entries.
var ErrTooManyComponents = errors.New("silo: component roster is full")
