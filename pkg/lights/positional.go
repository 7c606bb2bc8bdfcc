package lights

import (
	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// PositionalLight simulates a light source with an explicit world-space
// position that shines equally in all directions.
type PositionalLight struct {
	LightColors
	Position core.Vec3 // World-space position of the light
}

// NewPositionalLight creates a positional light at the given position
func NewPositionalLight(position, diffuse core.Vec3) *PositionalLight {
	return &PositionalLight{
		LightColors: NewLightColors(diffuse),
		Position:    position,
	}
}

// LightVector returns the unit vector from the surface point to the light
func (pl *PositionalLight) LightVector(point core.Vec3) core.Vec3 {
	return pl.Position.Subtract(point).Normalize()
}

// LightDistance returns the Euclidean distance from the point to the light
func (pl *PositionalLight) LightDistance(point core.Vec3) float64 {
	return pl.Position.Subtract(point).Length()
}

// LocalIllumination evaluates ambient, diffuse, and specular reflection at
// the surface point
func (pl *PositionalLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	return pl.shade(pl.LightVector(point), eyeVector, normal, mat)
}
