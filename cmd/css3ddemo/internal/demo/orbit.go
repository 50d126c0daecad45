package demo

import (
	"math"

	"github.com/MobRulesGames/css3d/perspective"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Orbit swings a camera once around the y axis every Period seconds, easing
// in and out of each lap.
type Orbit struct {
	Radius float32
	Height float32
	Period float32

	tween *gween.Tween
	angle float32
}

func NewOrbit(radius, height, period float32) *Orbit {
	o := &Orbit{
		Radius: radius,
		Height: height,
		Period: period,
	}
	o.lap()
	return o
}

func (o *Orbit) lap() {
	o.tween = gween.New(0, 2*math.Pi, o.Period, ease.InOutCubic)
}

// Update advances the orbit by dt seconds and returns the new angle, in
// radians. Time past the end of a lap counts toward the next one.
func (o *Orbit) Update(dt float32) float32 {
	angle, done := o.tween.Update(dt)
	for done && o.Period > 0 {
		over := o.tween.Overflow
		o.lap()
		angle, done = o.tween.Update(over)
	}
	o.angle = angle
	return o.angle
}

func (o *Orbit) Angle() float32 {
	return o.angle
}

// Place moves cam onto the orbit, looking at the origin.
func (o *Orbit) Place(cam *perspective.Camera) {
	s, c := math.Sincos(float64(o.angle))
	cam.Eye = mgl32.Vec3{o.Radius * float32(s), o.Height, o.Radius * float32(c)}
	cam.Target = mgl32.Vec3{}
	cam.Up = mgl32.Vec3{0, 1, 0}
}
