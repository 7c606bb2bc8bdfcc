package geometry

import (
	"math"

	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// Sphere represents a sphere surface
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// FindIntersect tests a ray against the sphere
func (s *Sphere) FindIntersect(ray core.Ray) HitRecord {
	hit := NewMissRecord()

	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return hit
	}

	// Nearest root not closer than Epsilon
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < Epsilon {
		root = (-halfB + sqrtD) / a
		if root < Epsilon {
			return hit
		}
	}

	hit.T = root
	hit.Point = ray.At(root)
	hit.Material = s.Material

	// Outward normal, flipped to face the incoming ray for interior hits
	normal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}
	hit.Normal = normal

	// Spherical parameterization of the outward hit direction
	p := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	hit.UV = core.NewVec2(phi/(2*math.Pi), theta/math.Pi)

	return hit
}
