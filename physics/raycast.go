package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	groundMarchStep  = 0.1
	groundRefinePass = 12
)

// Hit is the nearest intersection of a ray
type Hit struct {
	Body     *Body // nil when the ground was hit
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Fraction float64 // Distance along the ray over maxDist
}

// Raycast returns the nearest hit within maxDist along dir
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64) (Hit, bool) {
	if dir.LenSqr() == 0 || maxDist <= 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	best := Hit{Fraction: math.Inf(1)}
	found := false

	for _, b := range w.Bodies {
		t, ok := raySphere(origin, dir, b.Position, b.Shape.CollisionRadius())
		if !ok || t > maxDist || t/maxDist >= best.Fraction {
			continue
		}
		p := origin.Add(dir.Mul(t))
		best = Hit{Body: b, Point: p, Normal: p.Sub(b.Position).Normalize(), Fraction: t / maxDist}
		found = true
	}

	if w.Ground != nil {
		if t, ok := w.rayGround(origin, dir, maxDist); ok && t/maxDist < best.Fraction {
			p := origin.Add(dir.Mul(t))
			best = Hit{Point: p, Normal: w.Ground.Normal(p.X(), p.Z()), Fraction: t / maxDist}
			found = true
		}
	}

	return best, found
}

// raySphere returns the entry distance of a unit ray into a sphere
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.LenSqr() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// rayGround marches the ray until it drops below the terrain then bisects
func (w *World) rayGround(origin, dir mgl64.Vec3, maxDist float64) (float64, bool) {
	above := func(t float64) bool {
		p := origin.Add(dir.Mul(t))
		return p.Y() > w.Ground.Height(p.X(), p.Z())
	}
	if !above(0) {
		return 0, false
	}

	prev := 0.0
	for t := groundMarchStep; t <= maxDist+groundMarchStep; t += groundMarchStep {
		t = math.Min(t, maxDist)
		if !above(t) {
			lo, hi := prev, t
			for i := 0; i < groundRefinePass; i++ {
				mid := (lo + hi) * 0.5
				if above(mid) {
					lo = mid
				} else {
					hi = mid
				}
			}
			return hi, true
		}
		if t == maxDist {
			break
		}
		prev = t
	}
	return 0, false
}
