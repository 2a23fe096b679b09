package scenes

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
)

const (
	chainLinks  = 6
	chainLength = 0.9
)

var (
	chainAnchor = mgl64.Vec3{-3, 9, 0}
	pairAnchor  = mgl64.Vec3{4, 8, 0}
)

// NewJoints hangs a pendulum chain and a swinging pair of boxes
func NewJoints() *WorldScene {
	return newWorldScene(NameJoints, mgl64.Vec3{0, 5, 0}, 20, physics.Plane{}, 8, buildJoints)
}

func buildJoints(w *physics.World) {
	// The chain starts horizontal so it swings down on the first frames
	var prev *physics.Body
	for i := 1; i <= chainLinks; i++ {
		pos := chainAnchor.Add(mgl64.Vec3{float64(i) * chainLength, 0, 0})
		link := w.AddBody(physics.NewBody(physics.Sphere(0.25), 1, pos))
		if prev == nil {
			w.AddJoint(physics.NewAnchorJoint(link, chainAnchor))
		} else {
			w.AddJoint(physics.NewDistanceJoint(prev, link))
		}
		prev = link
	}

	upper := w.AddBody(physics.NewBody(physics.Box(0.4, 0.4, 0.4), 2, pairAnchor.Add(mgl64.Vec3{0, -2, 1.5})))
	lower := w.AddBody(physics.NewBody(physics.Box(0.3, 0.3, 0.3), 1, pairAnchor.Add(mgl64.Vec3{0, -3.5, 3})))
	w.AddJoint(physics.NewAnchorJoint(upper, pairAnchor))
	w.AddJoint(physics.NewDistanceJoint(upper, lower))
}
