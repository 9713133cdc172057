package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/wanderer/internal/core"
)

// Camera is the third-person follow camera. Only Yaw affects gameplay:
// movement is relative to it.
type Camera struct {
	Yaw      float64
	Height   float64
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

func (c *Camera) applyInput(yawDelta, pitchDelta float64, p CameraParams) {
	c.Yaw -= yawDelta * p.Sensitivity
	c.Height = core.ClampF(c.Height-pitchDelta*p.Sensitivity, p.MinHeight, p.MaxHeight)
}

// follow places the camera behind the player at the given ground height.
func (c *Camera) follow(px, pz, ground float64, p CameraParams) {
	sin, cos := math.Sincos(c.Yaw)
	c.Position = mgl64.Vec3{px + sin*p.Distance, ground + c.Height, pz + cos*p.Distance}
	c.LookAt = mgl64.Vec3{px, ground + p.LookAtOffset, pz}
}

// Forward returns the horizontal unit vector the camera looks along.
func (c Camera) Forward() mgl64.Vec3 {
	d := c.LookAt.Sub(c.Position)
	d[1] = 0
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}
