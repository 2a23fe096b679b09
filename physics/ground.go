package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ground is the static terrain bodies rest on
type Ground interface {
	Height(x, z float64) float64
	Normal(x, z float64) mgl64.Vec3
}

// Plane is flat ground at height Y
type Plane struct {
	Y float64
}

func (p Plane) Height(_, _ float64) float64    { return p.Y }
func (p Plane) Normal(_, _ float64) mgl64.Vec3 { return mgl64.Vec3{0, 1, 0} }

// Heightfield is a concave sine terrain: h = Base + Amplitude*sin(x/Wavelength)*cos(z/Wavelength)
type Heightfield struct {
	Base       float64
	Amplitude  float64
	Wavelength float64
}

func (h Heightfield) Height(x, z float64) float64 {
	return h.Base + h.Amplitude*math.Sin(x/h.Wavelength)*math.Cos(z/h.Wavelength)
}

func (h Heightfield) Normal(x, z float64) mgl64.Vec3 {
	k := h.Amplitude / h.Wavelength
	dx := k * math.Cos(x/h.Wavelength) * math.Cos(z/h.Wavelength)
	dz := -k * math.Sin(x/h.Wavelength) * math.Sin(z/h.Wavelength)
	return mgl64.Vec3{-dx, 1, -dz}.Normalize()
}
