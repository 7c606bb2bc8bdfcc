package geometry

import (
	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// Plane represents an infinite implicit plane defined by a point and normal.
// The plane is one-sided: only rays approaching against the normal register
// a hit, so the back face is invisible.
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane from a point and a normal
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// NewPlaneFromPoints creates a plane through three non-collinear vertices.
// The normal follows the winding convention cross(v2-v1, v0-v1).
func NewPlaneFromPoints(v0, v1, v2 core.Vec3, mat material.Material) *Plane {
	normal := v2.Subtract(v1).Cross(v0.Subtract(v1)).Normalize()
	return &Plane{
		Point:    v0,
		Normal:   normal,
		Material: mat,
	}
}

// FindIntersect tests a ray against the plane
func (p *Plane) FindIntersect(ray core.Ray) HitRecord {
	hit := NewMissRecord()

	denominator := ray.Direction.Dot(p.Normal)

	// Front-face rule: the ray must oppose the normal. Parallel rays and
	// rays approaching from behind the plane miss.
	if denominator >= 0 {
		return hit
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < Epsilon {
		return hit
	}

	hit.T = t
	hit.Point = ray.At(t)
	hit.Normal = p.Normal
	hit.Material = p.Material
	return hit
}
