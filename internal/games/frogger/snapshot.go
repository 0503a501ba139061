package frogger

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Score      int
	HighScore  int
	Level      int
	ActorX     float64
	ActorY     float64
	Riding     int // Platform index, -1 when not riding
	Board      BoardState
	WaterRows  []float64
	Platforms  int
	Obstacles  int
	PlatformX  []float64
	ObstacleX  []float64
	Paused     bool
	AlertShown bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	layout := s.Layout()

	riding := -1
	if i, ok := s.Ride().Platform(); ok {
		riding = i
	}

	snap := Snapshot{
		Tick:       g.tick,
		Score:      s.Score(),
		HighScore:  s.HighScore(),
		Level:      s.Level(),
		ActorX:     s.Actor().Bounds.X,
		ActorY:     s.Actor().Bounds.Y,
		Riding:     riding,
		Board:      s.State(),
		WaterRows:  layout.WaterRows(),
		Platforms:  len(layout.Platforms),
		Obstacles:  len(layout.Obstacles),
		PlatformX:  make([]float64, len(layout.Platforms)),
		ObstacleX:  make([]float64, len(layout.Obstacles)),
		Paused:     g.paused,
		AlertShown: g.alertTicks > 0,
	}
	for i, p := range layout.Platforms {
		snap.PlatformX[i] = p.Bounds.X
	}
	for i, o := range layout.Obstacles {
		snap.ObstacleX[i] = o.Bounds.X
	}
	return snap
}
