package renderer

import (
	"github.com/EpikSushi21/CSE287/pkg/core"
	"github.com/EpikSushi21/CSE287/pkg/geometry"
	"github.com/EpikSushi21/CSE287/pkg/lights"
)

// rayOffsetEpsilon is how far secondary ray origins are pushed along the
// surface normal to avoid spurious self-intersection.
const rayOffsetEpsilon = 1e-4

// FrameSink receives the rendered pixels. The pixel origin is the bottom
// left corner, matching the image plane mapping: pixel (0,0) samples the
// (left, bottom) region of the view plane.
type FrameSink interface {
	Width() int
	Height() int
	SetPixel(x, y int, color core.Vec3)
}

// Scene interface to avoid circular imports
type Scene interface {
	GetSurfaces() []geometry.Surface
	GetLights() []lights.LightSource
}

// Config contains rendering configuration
type Config struct {
	RecursionDepth int  // Maximum reflection recursion depth
	Shadows        bool // Cast shadow rays toward each light
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		RecursionDepth: 2,
		Shadows:        true,
	}
}

// Raytracer orchestrates per-pixel ray generation, closest-hit search, and
// illumination accumulation, writing results to the frame sink
type Raytracer struct {
	sink         FrameSink
	camera       *Camera
	scene        Scene
	defaultColor core.Vec3 // Background color for rays that miss everything
	config       Config
	logger       core.Logger
}

// NewRaytracer creates a new raytracer writing to the given sink
func NewRaytracer(sink FrameSink, camera *Camera, scene Scene, defaultColor core.Vec3) *Raytracer {
	return &Raytracer{
		sink:         sink,
		camera:       camera,
		scene:        scene,
		defaultColor: defaultColor,
		config:       DefaultConfig(),
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// SetLogger enables render progress logging
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// RenderScene traces one ray through every pixel of the frame sink in
// raster order. The viewport is recomputed from the sink dimensions on
// every call.
func (rt *Raytracer) RenderScene() {
	width, height := rt.sink.Width(), rt.sink.Height()
	rt.camera.updateViewport(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := rt.camera.GetRay(x, y)
			rt.sink.SetPixel(x, y, rt.TraceRay(ray, rt.config.RecursionDepth))
		}
	}
	rt.logf("rendered %dx%d pixels", width, height)
}

// RenderProgressive renders the frame in horizontal bands, invoking
// callback after each band so callers can stream partial results. A
// callback error aborts the render and is returned unchanged.
func (rt *Raytracer) RenderProgressive(bands int, callback func(completed, total int) error) error {
	width, height := rt.sink.Width(), rt.sink.Height()
	rt.camera.updateViewport(width, height)

	if bands < 1 {
		bands = 1
	}
	if bands > height {
		bands = height
	}
	bandHeight := (height + bands - 1) / bands
	totalBands := (height + bandHeight - 1) / bandHeight

	completed := 0
	for yStart := 0; yStart < height; yStart += bandHeight {
		yEnd := min(yStart+bandHeight, height)
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < width; x++ {
				ray := rt.camera.GetRay(x, y)
				rt.sink.SetPixel(x, y, rt.TraceRay(ray, rt.config.RecursionDepth))
			}
		}

		completed++
		if err := callback(completed, totalBands); err != nil {
			return err
		}
	}
	return nil
}

// TraceRay returns the color seen along a ray. A miss returns the
// configured background color; a hit accumulates the material's emissive
// color, each enabled light's local illumination (subject to shadowing),
// and a reflected contribution for reflective materials.
func (rt *Raytracer) TraceRay(ray core.Ray, recursionLevel int) core.Vec3 {
	closestHit := rt.findClosestIntersection(ray)
	if closestHit.Miss() {
		return rt.defaultColor
	}

	totalColor := closestHit.Material.Emissive
	eyeVector := ray.Direction.Negate()

	for _, light := range rt.scene.GetLights() {
		if rt.config.Shadows && rt.inShadow(closestHit, light) {
			continue
		}
		totalColor = totalColor.Add(light.LocalIllumination(
			eyeVector, closestHit.Point, closestHit.Normal, closestHit.Material, closestHit.UV))
	}

	if recursionLevel > 0 && closestHit.Material.Reflectivity > 0 {
		reflectDirection := ray.Direction.Reflect(closestHit.Normal)
		reflectRay := core.NewRay(
			closestHit.Point.Add(closestHit.Normal.Multiply(rayOffsetEpsilon)),
			reflectDirection)

		reflected := rt.TraceRay(reflectRay, recursionLevel-1)
		totalColor = totalColor.Add(
			reflected.MultiplyVec(closestHit.Material.Specular).Multiply(closestHit.Material.Reflectivity))
	}

	return totalColor
}

// findClosestIntersection scans every surface and keeps the smallest finite
// t. The comparison is strict, so the first surface in insertion order wins
// exact ties.
func (rt *Raytracer) findClosestIntersection(ray core.Ray) geometry.HitRecord {
	closestHit := geometry.NewMissRecord()
	for _, surface := range rt.scene.GetSurfaces() {
		if hit := surface.FindIntersect(ray); hit.T < closestHit.T {
			closestHit = hit
		}
	}
	return closestHit
}

// inShadow reports whether an occluder lies strictly between the hit point
// and the light. Lights without a direction (ambient) are never shadowed.
func (rt *Raytracer) inShadow(hit geometry.HitRecord, light lights.LightSource) bool {
	shadowFeeler := light.LightVector(hit.Point)
	if shadowFeeler == (core.Vec3{}) {
		return false
	}

	shadowRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(rayOffsetEpsilon)), shadowFeeler)
	occluder := rt.findClosestIntersection(shadowRay)

	return occluder.T < light.LightDistance(hit.Point)
}
