package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

func (s *State) movePlayer(delta float64, in Input) {
	if in.Left {
		s.Player.X -= s.cfg.PlayerSpeed * delta
	}
	if in.Right {
		s.Player.X += s.cfg.PlayerSpeed * delta
	}
	s.Player.X = core.ClampF(s.Player.X, 0, s.cfg.FieldWidth-s.cfg.PlayerWidth)
}

// moveBullets advances both projectile collections and drops the ones that
// left the field.
func (s *State) moveBullets(delta float64) {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Y -= s.cfg.BulletSpeed * delta
		if b.Y <= 0 {
			s.despawned(b, ReasonOffscreen)
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept

	kept = s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		b.Y += s.cfg.EnemyBulletSpeed * delta
		if b.Y >= s.cfg.FieldHeight {
			s.despawned(b, ReasonOffscreen)
			continue
		}
		kept = append(kept, b)
	}
	s.EnemyBullets = kept
}

// moveFormation shifts every enemy horizontally. If any of them ends up
// outside the field the whole formation reverses, descends half a row and
// speeds up, once per frame. Positions are not pulled back inside.
func (s *State) moveFormation(delta float64) {
	if len(s.Enemies) == 0 {
		return
	}

	maxX := s.cfg.FieldWidth - s.cfg.EnemyWidth
	dx := s.EnemyDirection * s.EnemySpeed * delta
	overflow := false
	for i := range s.Enemies {
		s.Enemies[i].X += dx
		if x := s.Enemies[i].X; x < 0 || x > maxX {
			overflow = true
		}
	}
	if !overflow {
		return
	}

	s.EnemyDirection = -s.EnemyDirection
	dy := s.cfg.EnemyVerticalSpacing / 2
	for i := range s.Enemies {
		s.Enemies[i].Y += dy
	}

	next := s.EnemySpeed + s.cfg.EnemySpeedIncrement
	if s.cfg.EnemySpeedCap > 0 && next > s.cfg.EnemySpeedCap {
		next = max(s.cfg.EnemySpeedCap, s.EnemySpeed)
	}
	s.EnemySpeed = next

	if s.cfg.DescentFloorMargin > 0 {
		floor := s.cfg.FieldHeight - s.cfg.DescentFloorMargin
		for _, e := range s.Enemies {
			if e.Y+s.cfg.EnemyHeight > floor {
				s.finish(OutcomeGameOver)
				return
			}
		}
	}
}
