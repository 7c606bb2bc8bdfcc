// Package material defines the surface appearance values consumed by the
// shading model. Materials are plain values: a surface's material is copied
// into the hit record at intersection time, so shading never aliases back
// into scene storage.
package material

import "github.com/EpikSushi21/CSE287/pkg/core"

// Material describes how a surface responds to light
type Material struct {
	Emissive     core.Vec3 // Light emitted by the surface itself
	Diffuse      core.Vec3 // Diffuse reflectance color
	Specular     core.Vec3 // Specular reflectance color
	Shininess    float64   // Specular exponent for the Blinn-Phong highlight
	Reflectivity float64   // Mirror reflection weight in [0,1], zero disables reflection rays
}

// NewMaterial creates a non-emissive material with the given diffuse color
// and sensible highlight defaults
func NewMaterial(diffuse core.Vec3) Material {
	return Material{
		Diffuse:   diffuse,
		Specular:  core.NewVec3(1, 1, 1),
		Shininess: 32.0,
	}
}

// NewEmissive creates a material that only emits light
func NewEmissive(emission core.Vec3) Material {
	return Material{Emissive: emission}
}
