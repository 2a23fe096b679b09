package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
)

// DefaultTimeStep is the physics step in seconds
const DefaultTimeStep = 1.0 / 60.0

// EngineSettings is the simulation configuration exchanged between the testbed and a scene
type EngineSettings struct {
	ElapsedTime         float64 // Host seconds at the last clock accumulation
	TimeStep            float64
	Gravity             mgl64.Vec3
	GravityEnabled      bool
	VelocityIterations  int
	PositionIterations  int
	SleepingEnabled     bool
	TimeBeforeSleep     float64
	SleepLinearVelocity float64
}

// DefaultEngineSettings returns earth gravity at 60 Hz
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		TimeStep:            DefaultTimeStep,
		Gravity:             mgl64.Vec3{0, -9.81, 0},
		GravityEnabled:      true,
		VelocityIterations:  6,
		PositionIterations:  8,
		SleepingEnabled:     true,
		TimeBeforeSleep:     1,
		SleepLinearVelocity: 0.05,
	}
}

// Physics converts to the world step settings
func (s EngineSettings) Physics() physics.Settings {
	return physics.Settings{
		Gravity:             s.Gravity,
		GravityEnabled:      s.GravityEnabled,
		VelocityIterations:  s.VelocityIterations,
		PositionIterations:  s.PositionIterations,
		SleepingEnabled:     s.SleepingEnabled,
		TimeBeforeSleep:     s.TimeBeforeSleep,
		SleepLinearVelocity: s.SleepLinearVelocity,
	}
}
