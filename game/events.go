package game

import "sort"

// EventKind names a deferred action.
type EventKind uint8

const (
	EventCrabRespawn EventKind = iota + 1
)

// Pending is one scheduled event. Epoch is the round it belongs to; entries from an
// earlier round are dropped when drained.
type Pending struct {
	Due   float64 // simulation time
	Epoch uint64
	Kind  EventKind
}

// EventQueue holds deferred actions keyed by simulation time. Simulation time only
// advances inside Update, so a paused game never fires anything.
type EventQueue struct {
	items []Pending
}

// Schedule adds an event, keeping the queue ordered by due time. Events with equal
// due times fire in scheduling order.
func (q *EventQueue) Schedule(p Pending) {
	i := sort.Search(len(q.items), func(i int) bool { return q.items[i].Due > p.Due })
	q.items = append(q.items, Pending{})
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = p
}

// Drain removes and returns every event due at or before now whose epoch matches.
// Stale events due by now are discarded.
func (q *EventQueue) Drain(now float64, epoch uint64) []Pending {
	n := 0
	for n < len(q.items) && q.items[n].Due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	var out []Pending
	for _, p := range q.items[:n] {
		if p.Epoch == epoch {
			out = append(out, p)
		}
	}
	q.items = append(q.items[:0], q.items[n:]...)
	return out
}

// Len is the number of events still queued, stale ones included.
func (q *EventQueue) Len() int { return len(q.items) }

// Clear drops everything.
func (q *EventQueue) Clear() { q.items = q.items[:0] }
