package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CellAspect is the height of a terminal cell over its width
const CellAspect = 2.0

const (
	minPitch    = -1.45
	maxPitch    = 1.45
	minDistance = 2.0
	maxDistance = 200.0
)

// Camera orbits a target point
// Setters move the desired pose, Update eases the current pose toward it
type Camera struct {
	Target   mgl64.Vec3
	FovY     float64 // Radians
	Near     float64
	Far      float64
	Easing   float64 // Fraction of remaining motion applied per Update, 1 snaps
	yaw      float64
	pitch    float64
	distance float64

	wantYaw      float64
	wantPitch    float64
	wantDistance float64
}

// NewCamera creates a camera looking at target from distance
func NewCamera(target mgl64.Vec3, distance float64) *Camera {
	c := &Camera{
		Target: target,
		FovY:   mgl64.DegToRad(45),
		Near:   0.1,
		Far:    500,
		Easing: 0.35,
	}
	c.SnapTo(0.6, 0.35, distance)
	return c
}

// SnapTo sets current and desired pose without easing
func (c *Camera) SnapTo(yaw, pitch, distance float64) {
	c.wantYaw = yaw
	c.wantPitch = clamp(pitch, minPitch, maxPitch)
	c.wantDistance = clamp(distance, minDistance, maxDistance)
	c.yaw, c.pitch, c.distance = c.wantYaw, c.wantPitch, c.wantDistance
}

// Rotate offsets the desired orientation
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.wantYaw += dYaw
	c.wantPitch = clamp(c.wantPitch+dPitch, minPitch, maxPitch)
}

// Zoom scales the desired distance, factor < 1 moves closer
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.wantDistance = clamp(c.wantDistance*factor, minDistance, maxDistance)
}

// Update eases the pose one frame toward the desired pose
func (c *Camera) Update() {
	k := clamp(c.Easing, 0, 1)
	if k >= 1 {
		c.yaw, c.pitch, c.distance = c.wantYaw, c.wantPitch, c.wantDistance
		return
	}
	c.yaw += (c.wantYaw - c.yaw) * k
	c.pitch = clamp(c.pitch+(c.wantPitch-c.pitch)*k, minPitch, maxPitch)
	c.distance = clamp(c.distance+(c.wantDistance-c.distance)*k, minDistance, maxDistance)
}

// Pose returns the current yaw, pitch and distance
func (c *Camera) Pose() (yaw, pitch, distance float64) {
	return c.yaw, c.pitch, c.distance
}

// Eye returns the world-space camera position
func (c *Camera) Eye() mgl64.Vec3 {
	cp := math.Cos(c.pitch)
	offset := mgl64.Vec3{cp * math.Sin(c.yaw), math.Sin(c.pitch), cp * math.Cos(c.yaw)}
	return c.Target.Add(offset.Mul(c.distance))
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a viewport in cells
func (c *Camera) Projection(vp Rect) mgl64.Mat4 {
	aspect := 1.0
	if vp.H > 0 {
		aspect = float64(vp.W) / (float64(vp.H) * CellAspect)
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Projector caches the combined matrix for one frame
type Projector struct {
	mvp  mgl64.Mat4
	vp   Rect
	near float64
}

// Projector builds a projector for the viewport
func (c *Camera) Projector(vp Rect) Projector {
	return Projector{
		mvp:  c.Projection(vp).Mul4(c.View()),
		vp:   vp,
		near: c.Near,
	}
}

// Project maps a world point to a cell and camera depth
// ok is false for points behind the near plane
func (p Projector) Project(point mgl64.Vec3) (x, y int, depth float64, ok bool) {
	clip := p.mvp.Mul4x1(point.Vec4(1))
	w := clip.W()
	if w < p.near {
		return 0, 0, 0, false
	}
	nx := clip.X() / w
	ny := clip.Y() / w

	fx := float64(p.vp.X) + (nx+1)*0.5*float64(p.vp.W)
	fy := float64(p.vp.Y) + (1-ny)*0.5*float64(p.vp.H)
	return int(math.Floor(fx)), int(math.Floor(fy)), w, true
}

// Viewport returns the projector's target rect
func (p Projector) Viewport() Rect {
	return p.vp
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
