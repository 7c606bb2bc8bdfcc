// Package lights implements the light source hierarchy used by the local
// illumination model: an ambient-only base, plus positional, directional,
// and spot variants.
package lights

import (
	"math"

	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// LightSource interface for lights that can be queried during shading
type LightSource interface {
	// LightVector returns the unit vector from the surface point toward the
	// light. Directional lights return a constant regardless of position.
	LightVector(point core.Vec3) core.Vec3

	// LightDistance returns the distance from the surface point to the
	// light. Directional lights return +Inf so that distance-based
	// attenuation degrades to "no attenuation".
	LightDistance(point core.Vec3) float64

	// LocalIllumination evaluates the light's contribution at a surface
	// point. eyeVector is the unit direction from the point to the viewer.
	// Disabled lights contribute exactly black.
	LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3
}

// LightColors holds the color state common to every light variant
type LightColors struct {
	Ambient  core.Vec3 // Ambient color and intensity, black by default
	Diffuse  core.Vec3 // Diffuse color and intensity
	Specular core.Vec3 // Specular color and intensity, white by default
	Enabled  bool      // Shading is performed if true, black is returned otherwise
}

// NewLightColors creates the default color state for a light with the given
// diffuse color
func NewLightColors(diffuse core.Vec3) LightColors {
	return LightColors{
		Diffuse:  diffuse,
		Specular: core.NewVec3(1, 1, 1),
		Enabled:  true,
	}
}

// shade combines the ambient, diffuse, and Blinn-Phong specular terms for a
// light whose unit surface-to-light vector is toLight
func (lc LightColors) shade(toLight, eyeVector, normal core.Vec3, mat material.Material) core.Vec3 {
	if !lc.Enabled {
		return core.Vec3{}
	}

	result := lc.Ambient.MultiplyVec(mat.Diffuse)

	// Surfaces facing away from the light receive only the ambient term
	nDotL := normal.Dot(toLight)
	if nDotL <= 0 {
		return result
	}

	result = result.Add(lc.Diffuse.MultiplyVec(mat.Diffuse).Multiply(nDotL))

	half := toLight.Add(eyeVector).Normalize()
	if nDotH := normal.Dot(half); nDotH > 0 {
		specular := math.Pow(nDotH, mat.Shininess)
		result = result.Add(lc.Specular.MultiplyVec(mat.Specular).Multiply(specular))
	}

	return result
}
