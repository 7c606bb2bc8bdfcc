package geometry

import (
	"math"
	"testing"

	"github.com/EpikSushi21/CSE287/pkg/core"
)

func TestSphere_FindIntersect_BasicIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())

	// Ray from origin straight at the sphere center
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit := sphere.FindIntersect(ray)
	if hit.Miss() {
		t.Fatal("Expected hit, but got miss")
	}

	// Near surface of the sphere is at z=-4
	expectedT := 4.0
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}

	expectedNormal := core.NewVec3(0, 0, 1)
	if math.Abs(hit.Normal.X-expectedNormal.X) > 1e-9 ||
		math.Abs(hit.Normal.Y-expectedNormal.Y) > 1e-9 ||
		math.Abs(hit.Normal.Z-expectedNormal.Z) > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}
}

func TestSphere_FindIntersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())

	// Ray pointing away from the sphere
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if hit := sphere.FindIntersect(ray); !hit.Miss() {
		t.Errorf("Expected miss for ray pointing away, got t=%f", hit.T)
	}

	// Ray passing wide of the sphere
	ray = core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1))
	if hit := sphere.FindIntersect(ray); !hit.Miss() {
		t.Errorf("Expected miss for ray passing wide, got t=%f", hit.T)
	}
}

func TestSphere_FindIntersect_InteriorOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, testMaterial())

	// Ray starting at the center exits through the far wall
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit := sphere.FindIntersect(ray)
	if hit.Miss() {
		t.Fatal("Expected hit from interior origin")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}

	// Normal must face the incoming ray, so it points back toward the center
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Interior hit normal should oppose the ray, got %v", hit.Normal)
	}
}

func TestSphere_FindIntersect_UVRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(3, 0.5, 0), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(0, 3, 0.2), core.NewVec3(0, -1, 0)),
	}

	for _, ray := range rays {
		hit := sphere.FindIntersect(ray)
		if hit.Miss() {
			t.Fatalf("Expected hit for ray %v", ray)
		}
		if hit.UV.X < 0 || hit.UV.X > 1 || hit.UV.Y < 0 || hit.UV.Y > 1 {
			t.Errorf("UV out of [0,1] range: %v for ray %v", hit.UV, ray)
		}
	}
}
