package sim

import "github.com/vovakirdan/tui-boom/internal/events"

// Maze and game level events.
type (
	MazeStartEvent   struct{ events.Base }
	MazeEndEvent     struct{ events.Base }
	GameEndEvent     struct{ events.Base }
	StartScreenEvent struct{ events.Base }
	BonusScreenEvent struct{ events.Base }
	MazeFailedEvent  struct{ events.Base }
	MazeSolvedEvent  struct{ events.Base }
	ExtraGameEvent   struct{ events.Base }
	HurryUpEvent     struct{ events.Base }
)

// ForwardTimeEvent tells observers that Delay seconds went by without any
// other visible change.
type ForwardTimeEvent struct {
	events.Base
	Delay float64
}

// EntityEvent is embedded by every event about one entity.
type EntityEvent struct {
	events.Base
	Entity *Entity
}

// Entity events.
type (
	NewEntityEvent      struct{ EntityEvent }
	MovedEntityEvent    struct{ EntityEvent }
	HitEntityEvent      struct{ EntityEvent }
	RemovingEntityEvent struct{ EntityEvent }
	RemovedEntityEvent  struct{ EntityEvent }
	LifeLossEvent       struct{ EntityEvent }
	PlayerDetailsEvent  struct{ EntityEvent }
	NoiseEvent          struct{ EntityEvent }
	StartRemovingEvent  struct{ EntityEvent }
	// ScoreEvent is published on the maze, not on the entity, when an entity
	// pays its score to one or more players.
	ScoreEvent struct{ EntityEvent }
	// ExtraLifeEvent is published on the maze when a player completes EXTRA.
	ExtraLifeEvent struct{ EntityEvent }
)

func entityEvent(e *Entity) EntityEvent {
	return EntityEvent{Entity: e}
}
