package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is a rigid body with a snapshot of its previous transform for render blending
type Body struct {
	ID    int
	Shape Shape

	Mass        float64
	InvMass     float64 // 0 for static bodies
	Restitution float64
	Friction    float64

	Position        mgl64.Vec3
	PrevPosition    mgl64.Vec3
	Velocity        mgl64.Vec3
	Orientation     mgl64.Quat
	PrevOrientation mgl64.Quat
	AngularVelocity mgl64.Vec3

	Sleeping   bool
	sleepTimer float64
}

// NewBody creates a body at pos, mass 0 makes it static
func NewBody(shape Shape, mass float64, pos mgl64.Vec3) *Body {
	b := &Body{
		Shape:           shape,
		Mass:            mass,
		Restitution:     0.4,
		Friction:        0.3,
		Position:        pos,
		PrevPosition:    pos,
		Orientation:     mgl64.QuatIdent(),
		PrevOrientation: mgl64.QuatIdent(),
	}
	if mass > 0 {
		b.InvMass = 1 / mass
	}
	return b
}

// IsStatic reports an immovable body
func (b *Body) IsStatic() bool {
	return b.InvMass == 0
}

// Wake clears the sleep state
func (b *Body) Wake() {
	b.Sleeping = false
	b.sleepTimer = 0
}

// Teleport moves the body without leaving a blend trail
func (b *Body) Teleport(pos mgl64.Vec3, orientation mgl64.Quat) {
	b.Position, b.PrevPosition = pos, pos
	b.Orientation, b.PrevOrientation = orientation, orientation
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
	b.Wake()
}

// Interpolated blends the previous and current transforms, f in [0, 1]
func (b *Body) Interpolated(f float64) (mgl64.Vec3, mgl64.Quat) {
	pos := b.PrevPosition.Add(b.Position.Sub(b.PrevPosition).Mul(f))
	rot := mgl64.QuatSlerp(b.PrevOrientation, b.Orientation, f)
	return pos, rot
}

func (b *Body) snapshot() {
	b.PrevPosition = b.Position
	b.PrevOrientation = b.Orientation
}
