package boom

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	State  string
	Level  int // 1-indexed for display
	Score  int
	Lives  [2]int
	Paused bool
	Maze   string // serialized maze, empty before the first start
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:   g.tick,
		State:  s.State().String(),
		Level:  s.LevelIndex() + 1,
		Score:  s.Score(),
		Paused: g.paused,
	}
	for i := range snap.Lives {
		snap.Lives[i] = s.Player(i + 1).Lives()
	}
	if m := s.Maze(); m != nil {
		snap.Maze = m.Serialize()
	}
	return snap
}
