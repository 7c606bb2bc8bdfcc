package renderer

import (
	"fmt"
	"math"

	"github.com/EpikSushi21/CSE287/pkg/core"
)

// Camera builds per-pixel view rays from a viewing specification: an eye
// position with an orthonormal frame and a view plane parameterized by
// left/right/top/bottom limits.
type Camera struct {
	eye core.Vec3

	// Right-handed orthonormal basis: u is right, v is up, w is backward
	// (the negative viewing direction).
	u, v, w core.Vec3

	// View plane limits and pixel counts
	left, right, top, bottom float64
	nx, ny                   float64

	distToPlane float64 // Eye to view plane distance, zero for orthographic
	perspective bool

	// Projection inputs retained so the viewport can be recomputed whenever
	// the frame sink dimensions change.
	verticalFOV     float64
	viewPlaneHeight float64
}

// NewCamera creates a camera at the origin looking down -z with a 90 degree
// vertical field of view
func NewCamera() *Camera {
	c := &Camera{
		verticalFOV: 90.0,
		perspective: true,
	}
	// Defaults cannot fail
	_ = c.SetCameraFrame(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0))
	return c
}

// SetCameraFrame derives the orthonormal viewing basis from an eye
// position, viewing direction, and up hint. The up hint must not be
// parallel to the viewing direction.
func (c *Camera) SetCameraFrame(eye, viewDirection, up core.Vec3) error {
	w := viewDirection.Negate().Normalize()
	uRaw := up.Cross(w)
	if uRaw.LengthSquared() < 1e-12 {
		return fmt.Errorf("up vector %v is parallel to viewing direction %v", up, viewDirection)
	}

	c.eye = eye
	c.w = w
	c.u = uRaw.Normalize()
	c.v = c.w.Cross(c.u)
	return nil
}

// SetPerspectiveProjection configures perspective ray generation with the
// given vertical field of view in degrees, which must lie in (0, 180)
func (c *Camera) SetPerspectiveProjection(verticalFOVDegrees float64) error {
	if verticalFOVDegrees <= 0 || verticalFOVDegrees >= 180 {
		return fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %g", verticalFOVDegrees)
	}
	c.verticalFOV = verticalFOVDegrees
	c.perspective = true
	return nil
}

// SetOrthographicProjection configures orthographic ray generation with the
// given view plane height in world units
func (c *Camera) SetOrthographicProjection(viewPlaneHeight float64) error {
	if viewPlaneHeight == 0 {
		return fmt.Errorf("view plane height must be non-zero")
	}
	c.viewPlaneHeight = viewPlaneHeight
	c.perspective = false
	return nil
}

// updateViewport recomputes the view plane limits for the given pixel
// dimensions. Called at the start of every render since the viewport
// derives from the frame sink size.
func (c *Camera) updateViewport(nx, ny int) {
	c.nx = float64(nx)
	c.ny = float64(ny)

	if c.perspective {
		c.top = 1.0
		c.distToPlane = c.top / math.Tan(c.verticalFOV*math.Pi/180.0/2.0)
	} else {
		c.top = math.Abs(c.viewPlaneHeight) / 2.0
		c.distToPlane = 0.0
	}

	c.bottom = -c.top
	c.right = c.top * (c.nx / c.ny)
	c.left = -c.right
}

// ImagePlaneCoordinates maps a pixel to view plane coordinates, sampling
// the center of the pixel cell
func (c *Camera) ImagePlaneCoordinates(x, y int) core.Vec2 {
	return core.NewVec2(
		(float64(x)+0.5)*((c.right-c.left)/c.nx)+c.left,
		(float64(y)+0.5)*((c.top-c.bottom)/c.ny)+c.bottom,
	)
}

// GetRay builds the view ray for a pixel, dispatching on projection mode
func (c *Camera) GetRay(x, y int) core.Ray {
	s := c.ImagePlaneCoordinates(x, y)

	if !c.perspective {
		origin := c.eye.Add(c.u.Multiply(s.X)).Add(c.v.Multiply(s.Y))
		return core.NewRay(origin, c.w.Negate())
	}

	direction := c.w.Negate().Multiply(c.distToPlane).
		Add(c.u.Multiply(s.X)).
		Add(c.v.Multiply(s.Y)).
		Normalize()
	return core.NewRay(c.eye, direction)
}
