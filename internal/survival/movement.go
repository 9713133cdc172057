package survival

import (
	"math"

	"github.com/vovakirdan/wanderer/internal/core"
)

// Walkable answers collision queries in world coordinates.
type Walkable interface {
	IsWalkable(wx, wz float64) bool
}

// Direction returns the unnormalised movement vector for the held keys,
// relative to the camera yaw.
func Direction(held core.MoveSet, yaw float64) (float64, float64) {
	sin, cos := math.Sincos(yaw)
	var vx, vz float64
	if held.Has(core.MoveForward) {
		vx -= sin
		vz -= cos
	}
	if held.Has(core.MoveBack) {
		vx += sin
		vz += cos
	}
	if held.Has(core.MoveLeft) {
		vx -= cos
		vz += sin
	}
	if held.Has(core.MoveRight) {
		vx += cos
		vz -= sin
	}
	return vx, vz
}

// Move advances the player for dtMillis of held movement. Each axis is
// tested and committed on its own, X first, so the player slides along
// water edges. It reports whether any movement was attempted. A tick with
// no elapsed time leaves the player, facing included, untouched.
func Move(p *Player, terrain Walkable, held core.MoveSet, yaw, dtMillis float64, r Rules) bool {
	vx, vz := Direction(held, yaw)
	if (vx == 0 && vz == 0) || dtMillis <= 0 {
		p.VX, p.VZ = 0, 0
		return false
	}

	length := math.Hypot(vx, vz)
	p.VX = vx / length * r.Speed * dtMillis / 16
	p.VZ = vz / length * r.Speed * dtMillis / 16

	if nx := p.X + p.VX; terrain.IsWalkable(nx, p.Z) {
		p.X = nx
	}
	if nz := p.Z + p.VZ; terrain.IsWalkable(p.X, nz) {
		p.Z = nz
	}

	p.Facing = math.Atan2(-p.VX, -p.VZ)
	return true
}
