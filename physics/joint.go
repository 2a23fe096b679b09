package physics

import "github.com/go-gl/mathgl/mgl64"

// DistanceJoint keeps two bodies, or a body and a fixed anchor, at a set length
type DistanceJoint struct {
	A      *Body
	B      *Body      // nil pins A to Anchor
	Anchor mgl64.Vec3 // World point used when B is nil
	Length float64
}

// NewDistanceJoint links a and b at their current separation
func NewDistanceJoint(a, b *Body) *DistanceJoint {
	return &DistanceJoint{A: a, B: b, Length: a.Position.Sub(b.Position).Len()}
}

// NewAnchorJoint pins a to a world point at its current separation
func NewAnchorJoint(a *Body, anchor mgl64.Vec3) *DistanceJoint {
	return &DistanceJoint{A: a, Anchor: anchor, Length: a.Position.Sub(anchor).Len()}
}

// Ends returns the world-space endpoints
func (j *DistanceJoint) Ends() (mgl64.Vec3, mgl64.Vec3) {
	if j.B == nil {
		return j.A.Position, j.Anchor
	}
	return j.A.Position, j.B.Position
}

// project moves the endpoints back onto the constraint length
func (j *DistanceJoint) project() {
	pa, pb := j.Ends()
	invA := j.A.InvMass
	invB := 0.0
	if j.B != nil {
		invB = j.B.InvMass
	}
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	delta := pa.Sub(pb)
	dist := delta.Len()
	if dist < 1e-9 {
		return
	}
	n := delta.Mul(1 / dist)
	err := dist - j.Length

	j.A.Position = j.A.Position.Sub(n.Mul(err * invA / invSum))
	if j.B != nil {
		j.B.Position = j.B.Position.Add(n.Mul(err * invB / invSum))
	}
}
