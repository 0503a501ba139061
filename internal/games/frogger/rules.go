package frogger

// Outcome is the result of evaluating one tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeCollision
	OutcomeDrowned
	OutcomeOutOfBounds
)

// String returns the reason reported to the alert sink.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeCollision:
		return "collision"
	case OutcomeDrowned:
		return "drowned"
	case OutcomeOutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the current run.
func (o Outcome) Fatal() bool {
	return o == OutcomeCollision || o == OutcomeDrowned || o == OutcomeOutOfBounds
}

// Message returns the player-facing text for a fatal outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeCollision:
		return "Hit by a car. Try again!"
	case OutcomeDrowned:
		return "The frog drowned."
	case OutcomeOutOfBounds:
		return "The frog went off the board."
	default:
		return ""
	}
}

// Ride says which platform, if any, is carrying the actor.
// The zero value is NoRide.
type Ride struct {
	platform int
	riding   bool
}

// NoRide is the state of not standing on any platform.
var NoRide = Ride{}

// RideOn returns a ride on the platform at index i of Layout.Platforms.
func RideOn(i int) Ride {
	return Ride{platform: i, riding: true}
}

// Platform returns the platform index and whether the actor is riding at all.
func (r Ride) Platform() (int, bool) {
	return r.platform, r.riding
}

// BoardState is the actor's relation to the board between ticks.
// Fatal outcomes are never stored; they reset the session within the tick.
type BoardState int

const (
	Grounded BoardState = iota
	OnPlatform
)

// String returns the state name.
func (b BoardState) String() string {
	if b == OnPlatform {
		return "on_platform"
	}
	return "grounded"
}

// evaluate applies the rules for one tick after entities have moved.
// It stops at the first non-None outcome; the caller handles fatal resets.
func evaluate(s *Session) Outcome {
	actor := &s.actor

	// Carried by last tick's platform
	if i, ok := s.ride.Platform(); ok && i < len(s.layout.Platforms) {
		actor.Bounds.X += s.layout.Platforms[i].VX
	}

	for _, o := range s.layout.Obstacles {
		if actor.Bounds.Overlaps(o.Bounds) {
			return OutcomeCollision
		}
	}

	if s.inWater() {
		ride, ok := s.platformUnderActor()
		if !ok {
			return OutcomeDrowned
		}
		s.ride = ride
	} else {
		s.ride = NoRide
	}

	if actor.Bounds.Y <= 0 {
		s.win()
		return OutcomeWin
	}

	if !actor.Bounds.Within(s.cfg.Canvas.Width, s.cfg.Canvas.Height) {
		return OutcomeOutOfBounds
	}

	return OutcomeNone
}

func (s *Session) inWater() bool {
	for _, lane := range s.layout.Lanes {
		if s.actor.Bounds.Overlaps(lane.Bounds) {
			return true
		}
	}
	return false
}

// platformUnderActor picks the platform the actor overlaps the most
// horizontally; equal overlaps go to the lowest index.
func (s *Session) platformUnderActor() (Ride, bool) {
	best, bestWidth := -1, 0.0
	for i, p := range s.layout.Platforms {
		if !s.actor.Bounds.Overlaps(p.Bounds) {
			continue
		}
		if w := s.actor.Bounds.OverlapWidth(p.Bounds); best < 0 || w > bestWidth {
			best, bestWidth = i, w
		}
	}
	if best < 0 {
		return NoRide, false
	}
	return RideOn(best), true
}
