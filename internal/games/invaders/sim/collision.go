package sim

// resolveCollisions applies hits in a fixed order: player bullets against
// enemies, enemy bullets against the player, then the formation reaching
// the player's row. Clearing the last enemy wins the frame outright.
func (s *State) resolveCollisions() {
	s.resolvePlayerBullets()
	if len(s.Enemies) == 0 {
		s.finish(OutcomeVictory)
		return
	}
	s.resolveEnemyBullets()
	if s.Terminal() {
		return
	}
	s.checkFormationReach()
}

// resolvePlayerBullets scans both collections from the back so removals do
// not shift unvisited entries. A bullet destroys at most one enemy.
func (s *State) resolvePlayerBullets() {
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		br := s.Rect(s.Bullets[i])
		for j := len(s.Enemies) - 1; j >= 0; j-- {
			if !br.Intersects(s.Rect(s.Enemies[j])) {
				continue
			}
			s.Enemies = s.removeAt(s.Enemies, j, ReasonHit)
			s.Bullets = s.removeAt(s.Bullets, i, ReasonHit)
			s.Score += s.cfg.EnemyReward
			break
		}
	}
}

func (s *State) resolveEnemyBullets() {
	pr := s.PlayerRect()
	for i := len(s.EnemyBullets) - 1; i >= 0; i-- {
		if !s.Rect(s.EnemyBullets[i]).Intersects(pr) {
			continue
		}
		s.EnemyBullets = s.removeAt(s.EnemyBullets, i, ReasonHit)
		s.Lives--
		if s.Lives <= 0 {
			s.Lives = 0
			s.finish(OutcomeGameOver)
			return
		}
	}
}

func (s *State) checkFormationReach() {
	line := s.Player.Y + s.cfg.RowMargin
	for _, e := range s.Enemies {
		if e.Y+s.cfg.EnemyHeight > line {
			s.finish(OutcomeGameOver)
			return
		}
	}
}
