package physics

import "github.com/go-gl/mathgl/mgl64"

// Settings tune one World.Step
type Settings struct {
	Gravity             mgl64.Vec3
	GravityEnabled      bool
	VelocityIterations  int
	PositionIterations  int
	SleepingEnabled     bool
	TimeBeforeSleep     float64 // Seconds below SleepLinearVelocity before sleeping
	SleepLinearVelocity float64
}

// World holds bodies, joints and terrain
type World struct {
	Bodies []*Body
	Joints []*DistanceJoint
	Ground Ground // nil disables ground contact

	contacts []Contact
	jointed  map[*Body]bool
	steps    uint64
	time     float64
}

// NewWorld creates an empty world over ground
func NewWorld(ground Ground) *World {
	return &World{Ground: ground, jointed: make(map[*Body]bool)}
}

// AddBody registers b and assigns its ID
func (w *World) AddBody(b *Body) *Body {
	b.ID = len(w.Bodies)
	w.Bodies = append(w.Bodies, b)
	return b
}

// AddJoint registers a distance constraint
func (w *World) AddJoint(j *DistanceJoint) *DistanceJoint {
	w.Joints = append(w.Joints, j)
	w.jointed[j.A] = true
	if j.B != nil {
		w.jointed[j.B] = true
	}
	return j
}

// Contacts returns contacts found by the last Step
func (w *World) Contacts() []Contact {
	return w.contacts
}

// Steps returns the number of completed steps
func (w *World) Steps() uint64 {
	return w.steps
}

// Time returns simulated seconds
func (w *World) Time() float64 {
	return w.time
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float64, s Settings) {
	w.contacts = w.contacts[:0]

	var accel mgl64.Vec3
	if s.GravityEnabled {
		accel = s.Gravity
	}

	for _, b := range w.Bodies {
		b.snapshot()
		if b.IsStatic() || b.Sleeping {
			continue
		}
		Integrate(b, accel, dt)
	}

	iterations := max(s.VelocityIterations, 1)
	for it := 0; it < iterations; it++ {
		record := it == 0
		w.solveContacts(record)
	}

	if len(w.Joints) > 0 {
		for it := 0; it < max(s.PositionIterations, 1); it++ {
			for _, j := range w.Joints {
				j.project()
			}
		}
		// Position projection defines the jointed bodies' velocity
		for b := range w.jointed {
			if !b.IsStatic() {
				b.Velocity = b.Position.Sub(b.PrevPosition).Mul(1 / dt)
			}
		}
	}

	if s.SleepingEnabled {
		w.updateSleep(dt, s)
	}

	w.steps++
	w.time += dt
}

func (w *World) solveContacts(record bool) {
	if w.Ground != nil {
		for _, b := range w.Bodies {
			if b.IsStatic() {
				continue
			}
			if c, ok := resolveGround(b, w.Ground); ok && record {
				w.contacts = append(w.contacts, c)
			}
		}
	}

	for i := 0; i < len(w.Bodies); i++ {
		for k := i + 1; k < len(w.Bodies); k++ {
			a, b := w.Bodies[i], w.Bodies[k]
			if a.Sleeping && b.Sleeping {
				continue
			}
			if c, ok := resolvePair(a, b); ok && record {
				w.contacts = append(w.contacts, c)
			}
		}
	}
}

func (w *World) updateSleep(dt float64, s Settings) {
	limitSq := s.SleepLinearVelocity * s.SleepLinearVelocity
	for _, b := range w.Bodies {
		if b.IsStatic() || b.Sleeping || w.jointed[b] {
			continue
		}
		if b.Velocity.LenSqr() > limitSq {
			b.sleepTimer = 0
			continue
		}
		b.sleepTimer += dt
		if b.sleepTimer >= s.TimeBeforeSleep {
			b.Sleeping = true
			b.Velocity = mgl64.Vec3{}
			b.AngularVelocity = mgl64.Vec3{}
		}
	}
}
