package sim

// firePlayer spawns a bullet centred on the ship unless the cooldown since
// the last shot has not elapsed.
func (s *State) firePlayer(now float64) {
	if s.fired && s.cfg.PlayerShootCooldown > 0 && now-s.LastPlayerShot < s.cfg.PlayerShootCooldown {
		return
	}
	x := s.Player.X + s.cfg.PlayerWidth/2 - s.cfg.BulletWidth/2
	s.Bullets = append(s.Bullets, s.spawn(Entity{Kind: KindPlayerBullet, X: x, Y: s.Player.Y}))
	s.LastPlayerShot = now
	s.fired = true
}

// fireEnemy lets one uniformly chosen enemy shoot once the interval has
// passed.
func (s *State) fireEnemy(now float64) {
	if len(s.Enemies) == 0 {
		return
	}
	if now-s.LastEnemyShot <= s.shootInterval() {
		return
	}
	shooter := s.Enemies[s.rng.Intn(len(s.Enemies))]
	s.EnemyBullets = append(s.EnemyBullets, s.spawn(Entity{
		Kind: KindEnemyBullet,
		X:    shooter.X + s.cfg.EnemyBulletOffsetX,
		Y:    shooter.Y + s.cfg.EnemyHeight,
	}))
	s.LastEnemyShot = now
}

func (s *State) shootInterval() float64 {
	base := s.cfg.EnemyShootInterval
	if s.cfg.ShootInterval == nil {
		return base
	}
	return s.cfg.ShootInterval(base, s.Score, s.Time)
}
