package scenes

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
	"github.com/lixenwraith/testbed/render"
	"github.com/lixenwraith/testbed/scene"
)

// WorldScene is a scene backed by one physics world rebuilt on Reset
type WorldScene struct {
	scene.Base
	world  *physics.World
	ground physics.Ground
	extent float64 // Half width of the drawn ground grid
	build  func(w *physics.World)
}

func newWorldScene(name string, target mgl64.Vec3, distance float64, ground physics.Ground, extent float64, build func(w *physics.World)) *WorldScene {
	s := &WorldScene{
		Base:   scene.NewBase(name, target, distance),
		ground: ground,
		extent: extent,
		build:  build,
	}
	s.Reset()
	return s
}

// World exposes the simulated world for inspection
func (s *WorldScene) World() *physics.World {
	return s.world
}

func (s *WorldScene) UpdatePhysics() {
	settings := s.EngineSettings()
	s.world.Step(settings.TimeStep, settings.Physics())
}

func (s *WorldScene) Reset() {
	s.world = physics.NewWorld(s.ground)
	s.build(s.world)
}

func (s *WorldScene) Render(c render.Canvas) {
	drawWorld(c, &s.Base, s.world, s.extent)
}

// BodyCount reports the bodies in the world for the diagnostics pane
func (s *WorldScene) BodyCount() int {
	return len(s.world.Bodies)
}
