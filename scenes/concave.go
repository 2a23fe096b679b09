package scenes

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
)

var terrain = physics.Heightfield{Base: 0, Amplitude: 1.2, Wavelength: 6}

// NewConcaveMesh rolls spheres and boxes over sine terrain
func NewConcaveMesh() *WorldScene {
	return newWorldScene(NameConcaveMesh, mgl64.Vec3{0, 1, 0}, 24, terrain, 10, buildConcave)
}

func buildConcave(w *physics.World) {
	for i := -2; i <= 2; i++ {
		for k := -2; k <= 2; k++ {
			x, z := float64(i)*2.5, float64(k)*2.5
			y := terrain.Height(x, z) + 4 + 0.3*float64(i+k+4)
			shape := physics.Sphere(0.45)
			if (i+k)%2 != 0 {
				shape = physics.Box(0.4, 0.4, 0.4)
			}
			w.AddBody(physics.NewBody(shape, 1, mgl64.Vec3{x, y, z}))
		}
	}
}
