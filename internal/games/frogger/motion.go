package frogger

// MoveObstacles advances every obstacle by its velocity.
// An obstacle that has fully left the canvas reverses direction; it is not
// repositioned, so it turns around just past the edge it crossed.
func MoveObstacles(obstacles []Obstacle, canvasW float64) {
	for i := range obstacles {
		o := &obstacles[i]
		o.Bounds.X += o.VX
		if o.Bounds.Right() < 0 || o.Bounds.X > canvasW {
			o.VX = -o.VX
		}
	}
}

// MovePlatforms advances every platform by its velocity, wrapping around
// the canvas: leaving on the left re-enters at x = canvasW, leaving on the
// right re-enters at x = -width.
func MovePlatforms(platforms []Platform, canvasW float64) {
	for i := range platforms {
		p := &platforms[i]
		p.Bounds.X += p.VX
		if p.Bounds.Right() < 0 {
			p.Bounds.X = canvasW
		} else if p.Bounds.X > canvasW {
			p.Bounds.X = -p.Bounds.W
		}
	}
}

// Advance moves all entities of a layout by one tick.
func (l *Layout) Advance(canvasW float64) {
	MoveObstacles(l.Obstacles, canvasW)
	MovePlatforms(l.Platforms, canvasW)
}
