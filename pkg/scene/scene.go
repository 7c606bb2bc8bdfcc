// Package scene assembles surfaces, lights, and a camera into renderable
// scenes. Collections are ordered: insertion order decides ties when two
// surfaces intersect a ray at the same distance.
package scene

import (
	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/geometry"
	"github.com/EpikSushi21/CSE287/pkg/lights"
	"github.com/EpikSushi21/CSE287/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera     *renderer.Camera
	Surfaces   []geometry.Surface
	Lights     []lights.LightSource
	Background core.Vec3 // Color for rays that miss every surface
}

// GetSurfaces implements renderer.Scene
func (s *Scene) GetSurfaces() []geometry.Surface {
	return s.Surfaces
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []lights.LightSource {
	return s.Lights
}

// AddSurface appends a surface to the scene
func (s *Scene) AddSurface(surface geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surface)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.LightSource) {
	s.Lights = append(s.Lights, light)
}
