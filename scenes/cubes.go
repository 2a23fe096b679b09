package scenes

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
)

const (
	cubeColumns = 3
	cubeLayers  = 4
	cubeHalf    = 0.5
	cubeSpacing = 1.6
)

// NewCubes drops a grid of box stacks onto a plane
func NewCubes() *WorldScene {
	return newWorldScene(NameCubes, mgl64.Vec3{0, 2, 0}, 18, physics.Plane{}, 8, buildCubes)
}

func buildCubes(w *physics.World) {
	offset := float64(cubeColumns-1) * cubeSpacing / 2
	for layer := 0; layer < cubeLayers; layer++ {
		for i := 0; i < cubeColumns; i++ {
			for k := 0; k < cubeColumns; k++ {
				// Alternate layers shift slightly so stacks topple differently
				shift := 0.08 * float64(layer%2)
				pos := mgl64.Vec3{
					float64(i)*cubeSpacing - offset + shift,
					cubeHalf + 1 + float64(layer)*(2*cubeHalf+0.4),
					float64(k)*cubeSpacing - offset,
				}
				w.AddBody(physics.NewBody(physics.Box(cubeHalf, cubeHalf, cubeHalf), 1, pos))
			}
		}
	}
}
