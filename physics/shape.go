package physics

import "github.com/go-gl/mathgl/mgl64"

// ShapeKind selects collision geometry
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapeCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Shape describes a body's extent
// Collision between bodies uses a bounding sphere, ground contact uses the vertical extent
type Shape struct {
	Kind        ShapeKind
	Radius      float64    // Sphere and capsule
	HalfExtents mgl64.Vec3 // Box
	HalfHeight  float64    // Capsule segment half length, axis is local Y
}

// Sphere creates a sphere shape
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box creates a box shape from half extents
func Box(hx, hy, hz float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: mgl64.Vec3{hx, hy, hz}}
}

// Capsule creates a Y-aligned capsule
func Capsule(radius, halfHeight float64) Shape {
	return Shape{Kind: ShapeCapsule, Radius: radius, HalfHeight: halfHeight}
}

// CollisionRadius is the bounding sphere used for body-body contact and raycasts
func (s Shape) CollisionRadius() float64 {
	switch s.Kind {
	case ShapeBox:
		h := s.HalfExtents
		return (h.X() + h.Y() + h.Z()) / 3
	case ShapeCapsule:
		return s.Radius + s.HalfHeight*0.5
	default:
		return s.Radius
	}
}

// GroundExtent is the distance from center to the lowest point at rest
func (s Shape) GroundExtent() float64 {
	switch s.Kind {
	case ShapeBox:
		return s.HalfExtents.Y()
	case ShapeCapsule:
		return s.Radius + s.HalfHeight
	default:
		return s.Radius
	}
}

// Corners returns the local-space box corners, nil for other shapes
func (s Shape) Corners() []mgl64.Vec3 {
	if s.Kind != ShapeBox {
		return nil
	}
	h := s.HalfExtents
	corners := make([]mgl64.Vec3, 0, 8)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				corners = append(corners, mgl64.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()})
			}
		}
	}
	return corners
}

// BoxEdges indexes Corners pairs forming the 12 box edges
var BoxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
