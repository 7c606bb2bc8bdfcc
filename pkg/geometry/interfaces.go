package geometry

import (
	"math"

	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// Epsilon is the minimum hit distance. Intersections closer than this are
// rejected so that rays spawned on a surface do not immediately re-hit it.
const Epsilon = 1e-9

// HitRecord contains information about a ray-surface intersection.
// T == +Inf is the one and only miss sentinel; callers must check Miss()
// before reading any other field.
type HitRecord struct {
	T        float64           // Parameter t along the ray, +Inf on a miss
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal, facing the incoming ray
	Material material.Material // Material of the hit surface, copied by value
	UV       core.Vec2         // Surface parameterization at the hit
}

// NewMissRecord returns a hit record in the miss state
func NewMissRecord() HitRecord {
	return HitRecord{T: math.Inf(1), UV: core.NewVec2(0.5, 0.5)}
}

// Miss reports whether the record represents "no intersection"
func (h HitRecord) Miss() bool {
	return math.IsInf(h.T, 1)
}

// Surface interface for geometric primitives that can be hit by rays
type Surface interface {
	// FindIntersect tests the ray against the surface. On a miss the
	// returned record has T == +Inf.
	FindIntersect(ray core.Ray) HitRecord
}
