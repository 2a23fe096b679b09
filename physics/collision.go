package physics

import "github.com/go-gl/mathgl/mgl64"

const (
	// wakeImpulse is the normal speed change that wakes a sleeping body
	wakeImpulse = 0.05
	// restingSpeed is the approach speed below which contacts do not bounce
	restingSpeed = 0.5
)

// Contact is one touching point found during a step
type Contact struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3 // From B toward A, ground contacts have B nil
	A, B   *Body
	Depth  float64
}

// resolveGround pushes b out of the terrain and reflects its normal velocity
func resolveGround(b *Body, g Ground) (Contact, bool) {
	ext := b.Shape.GroundExtent()
	p := b.Position
	depth := g.Height(p.X(), p.Z()) + ext - p.Y()
	if depth <= 0 {
		return Contact{}, false
	}

	n := g.Normal(p.X(), p.Z())
	b.Position = p.Add(mgl64.Vec3{0, depth, 0})

	vn := b.Velocity.Dot(n)
	if vn < 0 {
		b.Velocity = b.Velocity.Sub(n.Mul((1 + bounce(b.Restitution, vn)) * vn))
	}

	// Tangential friction, spin follows rolling direction
	vt := b.Velocity.Sub(n.Mul(b.Velocity.Dot(n)))
	b.Velocity = b.Velocity.Sub(vt.Mul(b.Friction * 0.1))
	if ext > 0 && b.Shape.Kind != ShapeBox {
		b.AngularVelocity = n.Cross(vt).Mul(-1 / ext)
	}

	return Contact{
		Point:  b.Position.Sub(n.Mul(ext)),
		Normal: n,
		A:      b,
		Depth:  depth,
	}, true
}

// resolvePair separates two overlapping bounding spheres and exchanges impulse
func resolvePair(a, b *Body) (Contact, bool) {
	invSum := a.InvMass + b.InvMass
	if invSum == 0 {
		return Contact{}, false
	}

	ra, rb := a.Shape.CollisionRadius(), b.Shape.CollisionRadius()
	delta := a.Position.Sub(b.Position)
	distSq := delta.LenSqr()
	reach := ra + rb
	if distSq >= reach*reach {
		return Contact{}, false
	}

	dist := delta.Len()
	n := mgl64.Vec3{0, 1, 0}
	if dist > 1e-9 {
		n = delta.Mul(1 / dist)
	}
	depth := reach - dist

	// Positional correction split by inverse mass
	a.Position = a.Position.Add(n.Mul(depth * a.InvMass / invSum))
	b.Position = b.Position.Sub(n.Mul(depth * b.InvMass / invSum))

	relVel := a.Velocity.Sub(b.Velocity).Dot(n)
	if relVel < 0 {
		e := bounce((a.Restitution+b.Restitution)*0.5, relVel)
		j := -(1 + e) * relVel / invSum
		ApplyImpulse(a, n.Mul(j))
		ApplyImpulse(b, n.Mul(-j))
		if -relVel > wakeImpulse {
			a.Wake()
			b.Wake()
		}
	}

	return Contact{
		Point:  b.Position.Add(n.Mul(rb)),
		Normal: n,
		A:      a,
		B:      b,
		Depth:  depth,
	}, true
}

// bounce returns the restitution for an approach speed, resting contacts get none
func bounce(restitution, approach float64) float64 {
	if -approach < restingSpeed {
		return 0
	}
	return restitution
}
