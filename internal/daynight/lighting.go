package daynight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lighting is the scene lighting derived from the time of day. It is a
// pure function of Clock.Hours.
type Lighting struct {
	Night      bool
	SunAngle   float64
	SunPos     mgl64.Vec3
	Intensity  float64
	LightColor uint32
	SkyColor   uint32
	FogColor   uint32
	FogNear    float64
	FogFar     float64
}

const (
	nightLight = 0x6080a0
	dayLight   = 0xfff5e6
	nightSky   = 0x0a0a1a
	daySky     = 0x87ceeb
)

// LightingAt computes the lighting for an hour in [0, 24).
func LightingAt(hours float64) Lighting {
	night := hours < 6 || hours >= 18
	angle := hours/24*math.Pi*2 - math.Pi/2
	sin, cos := math.Sincos(angle)

	l := Lighting{
		Night:    night,
		SunAngle: angle,
		SunPos:   mgl64.Vec3{cos * 100, math.Max(10, sin*80), sin * 100},
	}
	if night {
		l.Intensity = 0.2
		l.LightColor = nightLight
		l.SkyColor = nightSky
		l.FogNear, l.FogFar = 20, 120
	} else {
		l.Intensity = 0.8 + math.Max(0, sin)*0.6
		l.LightColor = dayLight
		l.SkyColor = daySky
		l.FogNear, l.FogFar = 30, 200
	}
	l.FogColor = l.SkyColor
	return l
}

// Lighting returns the lighting for the clock's current hour.
func (c Clock) Lighting() Lighting {
	return LightingAt(c.Hours)
}

// SunDirection returns the unit vector from the origin toward the sun.
// A zero Lighting points straight up.
func (l Lighting) SunDirection() mgl64.Vec3 {
	if l.SunPos.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return l.SunPos.Normalize()
}
