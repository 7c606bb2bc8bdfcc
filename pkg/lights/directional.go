package lights

import (
	"math"

	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// DirectionalLight simulates a light source so distant that its rays are
// parallel: it has a direction but no position.
type DirectionalLight struct {
	LightColors

	// toSource is the unit vector pointing back toward the light, i.e. the
	// negation of the direction the light travels.
	toSource core.Vec3
}

// NewDirectionalLight creates a directional light. direction is the
// direction in which the light shines.
func NewDirectionalLight(direction, diffuse core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		LightColors: NewLightColors(diffuse),
		toSource:    direction.Normalize().Negate(),
	}
}

// LightVector returns the constant toward-source vector for every point
func (dl *DirectionalLight) LightVector(point core.Vec3) core.Vec3 {
	return dl.toSource
}

// LightDistance returns +Inf: a directional light is infinitely far away,
// so distance attenuation never applies
func (dl *DirectionalLight) LightDistance(point core.Vec3) float64 {
	return math.Inf(1)
}

// LocalIllumination evaluates ambient, diffuse, and specular reflection at
// the surface point
func (dl *DirectionalLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	return dl.shade(dl.toSource, eyeVector, normal, mat)
}
