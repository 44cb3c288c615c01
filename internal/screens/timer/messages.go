package timer

import "time"

// timerTickMsg is the 1-second heartbeat. Seq identifies the tick
// stream so a stale stream cannot double-advance the engine after a
// pause/resume cycle.
type timerTickMsg struct {
	Seq int
	At  time.Time
}
