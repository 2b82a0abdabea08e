package doodle

// Motion is the kinematic state of a moving body: position and velocity
// in world units and world units per tick. Y grows downward.
type Motion struct {
	X, Y   float64
	VX, VY float64
}

// Integrate advances a body by one fixed step. Gravity accelerates VY up to
// the terminal velocity, then the velocity is added to the position.
// Horizontal velocity is never touched here; input sets it directly.
func Integrate(m Motion, gravity, terminal float64) Motion {
	m.VY = min(m.VY+gravity, terminal)
	m.X += m.VX
	m.Y += m.VY
	return m
}
