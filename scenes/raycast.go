package scenes

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
	"github.com/lixenwraith/testbed/render"
	"github.com/lixenwraith/testbed/scene"
)

const (
	rayCount     = 36
	rayLength    = 12.0
	rayTilt      = -0.08
	raySpin      = 0.01 // Radians per physics step
	targetCount  = 9
	targetRadius = 6.0
)

var rayOrigin = mgl64.Vec3{0, 1, 0}

// Shape filters cycled with m, the first shows every kind
var rayFilters = []string{"all", "sphere", "box", "capsule"}

// RayResult is one cast of the fan
type RayResult struct {
	From, To mgl64.Vec3
	Hit      bool
}

// Raycast rings static shapes with a rotating fan of rays cast every step
type Raycast struct {
	*WorldScene
	filter    int
	showLines bool
	angle     float64
	rays      []RayResult
}

// NewRaycast creates the raycast scene with ray lines shown
func NewRaycast() *Raycast {
	r := &Raycast{showLines: true}
	r.WorldScene = newWorldScene(NameRaycast, mgl64.Vec3{0, 1, 0}, 22, physics.Plane{}, 8, r.build)
	r.cast()
	return r
}

func (r *Raycast) build(w *physics.World) {
	for i := 0; i < targetCount; i++ {
		shape := shapeFor(i)
		if r.filter != 0 && shape.Kind.String() != rayFilters[r.filter] {
			continue
		}
		a := 2 * math.Pi * float64(i) / targetCount
		pos := mgl64.Vec3{targetRadius * math.Cos(a), shape.GroundExtent(), targetRadius * math.Sin(a)}
		w.AddBody(physics.NewBody(shape, 0, pos))
	}
}

// Filter returns the shape kind currently shown
func (r *Raycast) Filter() string {
	return rayFilters[r.filter]
}

// Rays returns the results of the last cast
func (r *Raycast) Rays() []RayResult {
	return r.rays
}

func (r *Raycast) cast() {
	r.rays = r.rays[:0]
	for i := 0; i < rayCount; i++ {
		a := r.angle + 2*math.Pi*float64(i)/rayCount
		dir := mgl64.Vec3{math.Cos(a), rayTilt, math.Sin(a)}.Normalize()
		res := RayResult{From: rayOrigin, To: rayOrigin.Add(dir.Mul(rayLength))}
		if hit, ok := r.world.Raycast(rayOrigin, dir, rayLength); ok {
			res.To, res.Hit = hit.Point, true
		}
		r.rays = append(r.rays, res)
	}
}

func (r *Raycast) UpdatePhysics() {
	r.WorldScene.UpdatePhysics()
	r.angle = math.Mod(r.angle+raySpin, 2*math.Pi)
	r.cast()
}

func (r *Raycast) Reset() {
	r.WorldScene.Reset()
	r.angle = 0
	r.cast()
}

func (r *Raycast) Render(c render.Canvas) {
	p := drawWorld(c, &r.Base, r.world, r.extent)
	for _, ray := range r.rays {
		if r.showLines {
			p.line(ray.From, ray.To, '.', render.StyleRay)
		}
		if ray.Hit {
			p.plot(ray.To, 'x', render.StyleHit)
		}
	}
}

// KeyboardEvent toggles ray lines with l and cycles the shape filter with m
func (r *Raycast) KeyboardEvent(ev scene.KeyEvent) bool {
	if ev.Key == tcell.KeyRune {
		switch ev.Rune {
		case 'l':
			r.showLines = !r.showLines
			return true
		case 'm':
			r.filter = (r.filter + 1) % len(rayFilters)
			r.Reset()
			return true
		}
	}
	return r.WorldScene.KeyboardEvent(ev)
}
