package scenes

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
)

const shapeCount = 15

// NewCollisionShapes drops spheres, boxes and capsules together on a spiral
func NewCollisionShapes() *WorldScene {
	return newWorldScene(NameCollisionShapes, mgl64.Vec3{0, 2, 0}, 20, physics.Plane{}, 8, buildShapes)
}

func shapeFor(i int) physics.Shape {
	switch i % 3 {
	case 0:
		return physics.Sphere(0.5)
	case 1:
		return physics.Box(0.6, 0.3, 0.4)
	default:
		return physics.Capsule(0.3, 0.4)
	}
}

func buildShapes(w *physics.World) {
	for i := 0; i < shapeCount; i++ {
		a := float64(i) * 0.9
		r := 1 + 0.25*float64(i)
		pos := mgl64.Vec3{r * math.Cos(a), 2 + 0.8*float64(i), r * math.Sin(a)}
		b := w.AddBody(physics.NewBody(shapeFor(i), 1+float64(i%3)*0.5, pos))
		b.Orientation = mgl64.QuatRotate(a, mgl64.Vec3{0, 1, 0})
		b.PrevOrientation = b.Orientation
	}
}
