package core

// Entity identifies a body owned by the physics collaborator.
type Entity uint32

// NoEntity is the zero Entity; no body ever receives it.
const NoEntity Entity = 0

// BodySpec describes a body to be created in the physics collaborator.
type BodySpec struct {
	Box                Box
	GravityY           float64 // Downward acceleration in units per second squared
	Immovable          bool    // Not pushed by collisions
	CollideWorldBounds bool    // Clamp inside the field instead of leaving it
}
