package lights

import (
	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// AmbientLight simulates bounced light that has been scattered so much that
// its source direction is unrecoverable. It has no position and no light
// vector; its only contribution is the ambient term. Keep the intensity low
// to avoid washing out shadows and highlights.
type AmbientLight struct {
	LightColors
}

// NewAmbientLight creates an ambient-only light
func NewAmbientLight(ambient core.Vec3) *AmbientLight {
	colors := NewLightColors(core.Vec3{})
	colors.Ambient = ambient
	return &AmbientLight{LightColors: colors}
}

// LightVector returns the zero vector: ambient light has no direction
func (al *AmbientLight) LightVector(point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// LightDistance returns zero: ambient light has no position
func (al *AmbientLight) LightDistance(point core.Vec3) float64 {
	return 0
}

// LocalIllumination returns the ambient term only
func (al *AmbientLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	if !al.Enabled {
		return core.Vec3{}
	}
	return al.Ambient.MultiplyVec(mat.Diffuse)
}
