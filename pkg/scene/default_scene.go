package scene

import (
	"math"

	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/geometry"
	"github.com/EpikSushi21/CSE287/pkg/lights"
	"github.com/EpikSushi21/CSE287/pkg/material"
	"github.com/EpikSushi21/CSE287/pkg/renderer"
)

// NewDefaultScene creates a room corner with a reflective sphere, lit by an
// ambient fill, a directional sun, a positional lamp, and a spot light
// aimed at the sphere
func NewDefaultScene() *Scene {
	camera := renderer.NewCamera()
	// Defaults are valid, so frame and projection setup cannot fail
	_ = camera.SetCameraFrame(
		core.NewVec3(0, 3, 9),
		core.NewVec3(0, -0.25, -1),
		core.NewVec3(0, 1, 0),
	)
	_ = camera.SetPerspectiveProjection(60)

	s := &Scene{
		Camera:     camera,
		Background: core.NewVec3(0.2, 0.2, 0.25),
	}

	// Room corner: floor plus two walls, all one-sided planes facing in
	floor := material.NewMaterial(core.NewVec3(0.7, 0.7, 0.65))
	backWall := material.NewMaterial(core.NewVec3(0.4, 0.5, 0.7))
	sideWall := material.NewMaterial(core.NewVec3(0.7, 0.45, 0.4))

	s.AddSurface(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor))
	s.AddSurface(geometry.NewPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), backWall))
	s.AddSurface(geometry.NewPlane(core.NewVec3(-6, 0, 0), core.NewVec3(1, 0, 0), sideWall))

	mirror := material.NewMaterial(core.NewVec3(0.3, 0.3, 0.35))
	mirror.Reflectivity = 0.6
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 1.5, -2), 1.5, mirror))

	matte := material.NewMaterial(core.NewVec3(0.8, 0.3, 0.3))
	s.AddSurface(geometry.NewSphere(core.NewVec3(2.5, 0.8, 0.5), 0.8, matte))

	s.AddLight(lights.NewAmbientLight(core.NewVec3(0.08, 0.08, 0.08)))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-0.4, -1, -0.3), core.NewVec3(0.35, 0.35, 0.3)))

	lamp := lights.NewPositionalLight(core.NewVec3(4, 5, 3), core.NewVec3(0.5, 0.5, 0.55))
	s.AddLight(lamp)

	// Spot aimed at the mirror sphere with a 25 degree half-angle
	spotPos := core.NewVec3(-3, 6, 2)
	spotDir := core.NewVec3(0, 1.5, -2).Subtract(spotPos).Normalize()
	spot := lights.NewSpotLight(spotPos, spotDir, math.Cos(25*math.Pi/180), core.NewVec3(0.9, 0.9, 0.8))
	s.AddLight(spot)

	return s
}

// NewEmissiveScene creates a single camera-facing emissive plane over a
// gray background with no lights, so every pixel is either the background
// or the plane's emissive color
func NewEmissiveScene() *Scene {
	camera := renderer.NewCamera()
	_ = camera.SetCameraFrame(
		core.NewVec3(0, 0, 5),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
	)
	_ = camera.SetPerspectiveProjection(90)

	s := &Scene{
		Camera:     camera,
		Background: core.NewVec3(0.5, 0.5, 0.5),
	}

	glow := material.NewEmissive(core.NewVec3(1, 0.8, 0.2))
	s.AddSurface(geometry.NewPlane(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1), glow))

	return s
}
