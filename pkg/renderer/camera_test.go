package renderer

import (
	"math"
	"testing"

	"github.com/EpikSushi21/CSE287/pkg/core"
)

func TestCamera_SetCameraFrame_Basis(t *testing.T) {
	camera := NewCamera()
	err := camera.SetCameraFrame(
		core.NewVec3(1, 2, 3),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Looking down -z with +y up gives the canonical frame
	if !vecNear(camera.w, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected w=(0,0,1), got %v", camera.w)
	}
	if !vecNear(camera.u, core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected u=(1,0,0), got %v", camera.u)
	}
	if !vecNear(camera.v, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected v=(0,1,0), got %v", camera.v)
	}
}

func TestCamera_SetCameraFrame_Orthonormality(t *testing.T) {
	camera := NewCamera()
	err := camera.SetCameraFrame(
		core.NewVec3(5, -2, 7),
		core.NewVec3(1, -0.5, -2),
		core.NewVec3(0.2, 1, 0.1),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tolerance := 1e-12
	for name, vec := range map[string]core.Vec3{"u": camera.u, "v": camera.v, "w": camera.w} {
		if math.Abs(vec.Length()-1.0) > tolerance {
			t.Errorf("Basis vector %s not unit length: %f", name, vec.Length())
		}
	}
	if math.Abs(camera.u.Dot(camera.v)) > tolerance ||
		math.Abs(camera.u.Dot(camera.w)) > tolerance ||
		math.Abs(camera.v.Dot(camera.w)) > tolerance {
		t.Errorf("Basis vectors not mutually orthogonal")
	}

	// Right-handed: u × v = w
	if !vecNear(camera.u.Cross(camera.v), camera.w, 1e-12) {
		t.Errorf("Expected u×v=w, got %v vs %v", camera.u.Cross(camera.v), camera.w)
	}
}

func TestCamera_SetCameraFrame_ParallelUp(t *testing.T) {
	camera := NewCamera()
	err := camera.SetCameraFrame(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
	)
	if err == nil {
		t.Error("Expected error for up vector parallel to viewing direction")
	}

	// Anti-parallel is degenerate too
	err = camera.SetCameraFrame(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
	)
	if err == nil {
		t.Error("Expected error for up vector anti-parallel to viewing direction")
	}
}

func TestCamera_PerspectiveProjection_Validation(t *testing.T) {
	camera := NewCamera()

	for _, fov := range []float64{0, -10, 180, 250} {
		if err := camera.SetPerspectiveProjection(fov); err == nil {
			t.Errorf("Expected error for field of view %g", fov)
		}
	}
	if err := camera.SetPerspectiveProjection(90); err != nil {
		t.Errorf("Unexpected error for field of view 90: %v", err)
	}
}

func TestCamera_PerspectiveProjection_Distance(t *testing.T) {
	camera := NewCamera()
	if err := camera.SetPerspectiveProjection(90); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera.updateViewport(100, 100)

	// distToPlane = top / tan(fov/2) = 1 / tan(45°) = 1
	if math.Abs(camera.distToPlane-1.0) > 1e-12 {
		t.Errorf("Expected distToPlane=1 for 90 degree FOV, got %f", camera.distToPlane)
	}
	if camera.top != 1.0 || camera.bottom != -1.0 {
		t.Errorf("Expected top=1 bottom=-1, got %f %f", camera.top, camera.bottom)
	}

	// Aspect ratio widens the horizontal limits
	camera.updateViewport(200, 100)
	if camera.right != 2.0 || camera.left != -2.0 {
		t.Errorf("Expected right=2 left=-2 at 2:1 aspect, got %f %f", camera.right, camera.left)
	}
}

func TestCamera_OrthographicProjection_Viewport(t *testing.T) {
	camera := NewCamera()
	if err := camera.SetOrthographicProjection(2.0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera.updateViewport(100, 100)

	if camera.top != 1.0 || camera.bottom != -1.0 || camera.right != 1.0 || camera.left != -1.0 {
		t.Errorf("Expected unit viewport, got l=%f r=%f t=%f b=%f",
			camera.left, camera.right, camera.top, camera.bottom)
	}
	if camera.distToPlane != 0 {
		t.Errorf("Orthographic distToPlane must be zero, got %f", camera.distToPlane)
	}

	// Height is taken by magnitude
	if err := camera.SetOrthographicProjection(-4.0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera.updateViewport(100, 100)
	if camera.top != 2.0 {
		t.Errorf("Expected top=2 for height -4, got %f", camera.top)
	}

	if err := camera.SetOrthographicProjection(0); err == nil {
		t.Error("Expected error for zero view plane height")
	}
}

func TestCamera_ImagePlaneCoordinates(t *testing.T) {
	camera := NewCamera()
	if err := camera.SetOrthographicProjection(2.0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera.updateViewport(100, 100)

	tests := []struct {
		x, y     int
		expected core.Vec2
	}{
		{0, 0, core.NewVec2(-0.99, -0.99)},
		{49, 49, core.NewVec2(-0.01, -0.01)},
		{50, 50, core.NewVec2(0.01, 0.01)},
		{99, 99, core.NewVec2(0.99, 0.99)},
	}

	tolerance := 1e-12
	for _, tt := range tests {
		s := camera.ImagePlaneCoordinates(tt.x, tt.y)
		if math.Abs(s.X-tt.expected.X) > tolerance || math.Abs(s.Y-tt.expected.Y) > tolerance {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, s)
		}
	}
}

func TestCamera_GetRay_Orthographic(t *testing.T) {
	camera := NewCamera()
	if err := camera.SetCameraFrame(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := camera.SetOrthographicProjection(2.0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera.updateViewport(100, 100)

	// Every orthographic ray shares the viewing direction
	expectedDir := core.NewVec3(0, 0, -1)
	for _, px := range [][2]int{{0, 0}, {50, 50}, {99, 13}} {
		ray := camera.GetRay(px[0], px[1])
		if !vecNear(ray.Direction, expectedDir, 1e-12) {
			t.Errorf("Pixel %v: expected direction %v, got %v", px, expectedDir, ray.Direction)
		}
	}

	// Origins offset within the view plane
	ray := camera.GetRay(50, 50)
	if !vecNear(ray.Origin, core.NewVec3(0.01, 0.01, 5), 1e-12) {
		t.Errorf("Expected origin (0.01,0.01,5), got %v", ray.Origin)
	}
}

func TestCamera_GetRay_Perspective(t *testing.T) {
	camera := NewCamera()
	if err := camera.SetCameraFrame(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := camera.SetPerspectiveProjection(90); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera.updateViewport(100, 100)

	// All perspective rays originate at the eye
	for _, px := range [][2]int{{0, 0}, {50, 50}, {99, 13}} {
		ray := camera.GetRay(px[0], px[1])
		if ray.Origin != core.NewVec3(0, 0, 5) {
			t.Errorf("Pixel %v: expected eye origin, got %v", px, ray.Origin)
		}
		if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
			t.Errorf("Pixel %v: direction not normalized: %f", px, ray.Direction.Length())
		}
	}

	// A near-center pixel looks nearly straight ahead
	ray := camera.GetRay(50, 50)
	if ray.Direction.Z >= -0.999 {
		t.Errorf("Center ray should point close to -z, got %v", ray.Direction)
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
