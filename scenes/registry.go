package scenes

import "github.com/lixenwraith/testbed/scene"

// Scene names in menu order
const (
	NameCubes           = "cubes"
	NameJoints          = "joints"
	NameCollisionShapes = "collision-shapes"
	NameRaycast         = "raycast"
	NameConcaveMesh     = "concave-mesh"
)

// Default returns the registry of built-in scenes
func Default() *scene.Registry {
	r := scene.NewRegistry()
	r.MustRegister(NameCubes, func() scene.Scene { return NewCubes() })
	r.MustRegister(NameJoints, func() scene.Scene { return NewJoints() })
	r.MustRegister(NameCollisionShapes, func() scene.Scene { return NewCollisionShapes() })
	r.MustRegister(NameRaycast, func() scene.Scene { return NewRaycast() })
	r.MustRegister(NameConcaveMesh, func() scene.Scene { return NewConcaveMesh() })
	return r
}
