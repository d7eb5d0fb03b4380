package game

import "negatris/internal/types"

// Stats is the score, lives and streak of one session.
type Stats = types.Stats

// record applies the scoring policy to one landed word and reports whether
// the answer completed a streak worth a bonus life.
func record(s *Stats, correct bool, cfg Config) (bonus bool) {
	if !correct {
		s.Lives--
		s.Streak = 0
		return false
	}
	s.Score += cfg.PointsPerHit
	s.Streak++
	if s.Streak >= cfg.StreakForLife {
		s.Streak = 0
		s.Lives++
		return true
	}
	return false
}
