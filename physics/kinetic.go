package physics

import "github.com/go-gl/mathgl/mgl64"

const (
	linearDamping  = 0.999
	angularDamping = 0.98
)

// Integrate advances one body by dt with semi-implicit Euler: v += a*dt, p += v*dt
func Integrate(b *Body, accel mgl64.Vec3, dt float64) {
	b.Velocity = b.Velocity.Add(accel.Mul(dt)).Mul(linearDamping)
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	b.AngularVelocity = b.AngularVelocity.Mul(angularDamping)
	if b.AngularVelocity.LenSqr() > 0 {
		// dq = 0.5 * w * q * dt
		spin := mgl64.Quat{W: 0, V: b.AngularVelocity}.Mul(b.Orientation).Scale(0.5 * dt)
		b.Orientation = b.Orientation.Add(spin).Normalize()
	}
}

// ApplyImpulse changes velocity by impulse / mass
func ApplyImpulse(b *Body, impulse mgl64.Vec3) {
	if b.IsStatic() {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(b.InvMass))
}
