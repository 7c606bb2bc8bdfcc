package lights

import (
	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/material"
)

// SpotLight is a positional light restricted to a cone. Points outside the
// cone receive no light; inside the cone the positional contribution is
// scaled by a linear falloff from 1 on the axis to 0 at the cutoff edge.
type SpotLight struct {
	PositionalLight
	Direction    core.Vec3 // Unit spot axis, the direction the light shines
	CutoffCosine float64   // Cosine of the cone half-angle
}

// NewSpotLight creates a spot light at position aiming along direction.
// cutoffCosine is the cosine of the cone's half-angle, compared directly
// against the axis dot product.
func NewSpotLight(position, direction core.Vec3, cutoffCosine float64, diffuse core.Vec3) *SpotLight {
	return &SpotLight{
		PositionalLight: *NewPositionalLight(position, diffuse),
		Direction:       direction.Normalize(),
		CutoffCosine:    cutoffCosine,
	}
}

// LocalIllumination evaluates the positional contribution scaled by the
// cone falloff. The cutoff comparison is strict, so a point exactly on the
// cone edge is excluded.
func (sl *SpotLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	negToLight := sl.Position.Subtract(point).Normalize().Negate()

	cosAngle := negToLight.Dot(sl.Direction)
	if cosAngle <= sl.CutoffCosine {
		return core.Vec3{}
	}

	// Linear ramp: 1 on the axis, 0 at the cutoff edge
	falloff := 1 - (1-cosAngle)/(1-sl.CutoffCosine)

	return sl.PositionalLight.LocalIllumination(eyeVector, point, normal, mat, uv).Multiply(falloff)
}
