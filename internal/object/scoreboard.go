package object

import "github.com/tomz197/invaders/internal/config"

// Scoreboard keeps the running total of a round.
type Scoreboard struct {
	total  int
	points config.ScoreSettings
}

// NewScoreboard creates an empty scoreboard with the given points table.
func NewScoreboard(points config.ScoreSettings) *Scoreboard {
	return &Scoreboard{points: points}
}

// PointsFor returns the fixed value of a tier.
func (s *Scoreboard) PointsFor(t Tier) int {
	switch t {
	case TierHigh:
		return s.points.High
	case TierMid:
		return s.points.Mid
	default:
		return s.points.Low
	}
}

// AddKill adds the value of a destroyed unit and returns it.
func (s *Scoreboard) AddKill(t Tier) int {
	p := s.PointsFor(t)
	s.total += p
	return p
}

// AddBonus adds points awarded by the bonus target.
func (s *Scoreboard) AddBonus(points int) {
	s.total += points
}

// Total returns the running total.
func (s *Scoreboard) Total() int {
	return s.total
}
