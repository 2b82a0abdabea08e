package doodle

// resolveContact applies the behavior of a platform the player has just
// landed on. Every kind is handled here so adding one forces a decision.
func (s *Simulation) resolveContact(p *Platform) Event {
	switch p.Kind {
	case PlatformNormal, PlatformMoving:
		s.jump(1)
		return Event{Kind: EventJump, Platform: p.Kind}
	case PlatformBreakable:
		s.jump(1)
		p.State.Broken = true
		return Event{Kind: EventBreak, Platform: p.Kind}
	case PlatformBouncy:
		s.jump(p.State.BounceStrength)
		return Event{Kind: EventBounce, Platform: p.Kind}
	default:
		panic("doodle: unhandled platform kind " + p.Kind.String())
	}
}

// jump launches the player upward. An active jetpack boosts every jump.
func (s *Simulation) jump(multiplier float64) {
	force := s.player.JumpForce
	if s.player.HasJetpack {
		force *= s.cfg.Physics.JetpackMultiplier
	}
	s.player.VY = force * multiplier
}
