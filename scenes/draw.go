package scenes

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/physics"
	"github.com/lixenwraith/testbed/render"
	"github.com/lixenwraith/testbed/scene"
)

const (
	ringSegments  = 16
	shadowRings   = 3
	shadowLift    = 0.01
	groundSpacing = 1.0
)

// painter draws a physics world through the scene camera for one frame
type painter struct {
	c      render.Canvas
	proj   render.Projector
	right  mgl64.Vec3
	up     mgl64.Vec3
	factor float64
}

func newPainter(c render.Canvas, b *scene.Base) *painter {
	cam := b.Camera
	fwd := cam.Target.Sub(cam.Eye()).Normalize()
	right := fwd.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	return &painter{
		c:      render.Clip(c, b.Viewport()),
		proj:   b.Projector(),
		right:  right,
		up:     right.Cross(fwd),
		factor: b.InterpolationFactor(),
	}
}

func (p *painter) plot(pt mgl64.Vec3, ch rune, style tcell.Style) {
	if x, y, _, ok := p.proj.Project(pt); ok {
		p.c.SetContent(x, y, ch, nil, style)
	}
}

func (p *painter) line(a, b mgl64.Vec3, ch rune, style tcell.Style) {
	x0, y0, _, okA := p.proj.Project(a)
	x1, y1, _, okB := p.proj.Project(b)
	if !okA || !okB {
		return
	}
	render.DrawLine(p.c, x0, y0, x1, y1, ch, style)
}

// ring draws a circle of radius r around center in the plane spanned by u and v
func (p *painter) ring(center, u, v mgl64.Vec3, r float64, ch rune, style tcell.Style) {
	prev := center.Add(u.Mul(r))
	for i := 1; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		next := center.Add(u.Mul(r * math.Cos(a))).Add(v.Mul(r * math.Sin(a)))
		p.line(prev, next, ch, style)
		prev = next
	}
}

// drawGround samples the terrain on a grid around the origin
func (p *painter) drawGround(g physics.Ground, extent float64) {
	if g == nil {
		return
	}
	for x := -extent; x <= extent; x += groundSpacing {
		for z := -extent; z <= extent; z += groundSpacing {
			p.plot(mgl64.Vec3{x, g.Height(x, z), z}, '.', render.StyleGround)
		}
	}
}

// drawShadow projects the body footprint straight down onto the ground
func (p *painter) drawShadow(g physics.Ground, b *physics.Body, pos mgl64.Vec3) {
	r := b.Shape.CollisionRadius()
	for i := 1; i <= shadowRings; i++ {
		rr := r * float64(i) / shadowRings
		for s := 0; s < ringSegments; s++ {
			a := 2 * math.Pi * float64(s) / ringSegments
			x := pos.X() + rr*math.Cos(a)
			z := pos.Z() + rr*math.Sin(a)
			p.plot(mgl64.Vec3{x, g.Height(x, z) + shadowLift, z}, ':', render.StyleShadow)
		}
	}
}

func bodyStyle(b *physics.Body) tcell.Style {
	switch {
	case b.IsStatic():
		return render.StyleStatic
	case b.Sleeping:
		return render.StyleSleeping
	default:
		return render.BodyStyle(b.ID)
	}
}

// drawBody renders the body at its blended transform
func (p *painter) drawBody(b *physics.Body) {
	pos, rot := b.Interpolated(p.factor)
	style := bodyStyle(b)

	switch b.Shape.Kind {
	case physics.ShapeBox:
		local := b.Shape.Corners()
		world := make([]mgl64.Vec3, len(local))
		for i, c := range local {
			world[i] = pos.Add(rot.Rotate(c))
		}
		for _, e := range physics.BoxEdges {
			p.line(world[e[0]], world[e[1]], '#', style)
		}
	case physics.ShapeCapsule:
		axis := rot.Rotate(mgl64.Vec3{0, b.Shape.HalfHeight, 0})
		top, bottom := pos.Add(axis), pos.Sub(axis)
		r := b.Shape.Radius
		p.ring(top, p.right, p.up, r, 'o', style)
		p.ring(bottom, p.right, p.up, r, 'o', style)
		side := axis.Cross(p.right.Cross(p.up))
		if side.LenSqr() > 0 {
			side = side.Normalize().Mul(r)
			p.line(top.Add(side), bottom.Add(side), '|', style)
			p.line(top.Sub(side), bottom.Sub(side), '|', style)
		}
	default:
		p.ring(pos, p.right, p.up, b.Shape.Radius, 'o', style)
		// Spin marker shows rotation
		p.plot(pos.Add(rot.Rotate(mgl64.Vec3{0, 0, b.Shape.Radius * 0.6})), '+', style)
	}
}

// drawJoint connects the blended endpoints
func (p *painter) drawJoint(j *physics.DistanceJoint) {
	a, _ := j.A.Interpolated(p.factor)
	b := j.Anchor
	if j.B != nil {
		b, _ = j.B.Interpolated(p.factor)
	} else {
		p.plot(b, '@', render.StyleJoint)
	}
	p.line(a, b, '.', render.StyleJoint)
}

func (p *painter) drawContacts(contacts []physics.Contact) {
	for _, c := range contacts {
		p.plot(c.Point, '*', render.StyleContact)
	}
}

// drawWorld renders ground, shadows, joints, bodies far to near, then contacts
func drawWorld(c render.Canvas, b *scene.Base, w *physics.World, groundExtent float64) *painter {
	p := newPainter(c, b)
	p.drawGround(w.Ground, groundExtent)

	if b.ShadowsEnabled() && w.Ground != nil {
		for _, body := range w.Bodies {
			pos, _ := body.Interpolated(p.factor)
			p.drawShadow(w.Ground, body, pos)
		}
	}

	for _, j := range w.Joints {
		p.drawJoint(j)
	}

	eye := b.Camera.Eye()
	order := slices.Clone(w.Bodies)
	slices.SortFunc(order, func(x, y *physics.Body) int {
		dx := x.Position.Sub(eye).LenSqr()
		dy := y.Position.Sub(eye).LenSqr()
		switch {
		case dx > dy:
			return -1
		case dx < dy:
			return 1
		default:
			return 0
		}
	})
	for _, body := range order {
		p.drawBody(body)
	}

	if b.ContactPointsDisplayed() {
		p.drawContacts(w.Contacts())
	}
	return p
}
