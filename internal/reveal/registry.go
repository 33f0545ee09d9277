package reveal

import "time"

// Key identifies one reveal task. Owner is the element the task belongs to,
// Index tells apart several tasks of the same owner.
type Key struct {
	Owner string
	Index int
}

// Tick asks the registry to reveal one more character of a task. It is only
// honoured while the task it was issued for is still registered.
type Tick struct {
	Key   Key
	Gen   uint64
	Delay time.Duration
}

type task struct {
	seq        *Sequence
	gen        uint64
	onComplete func()
	completed  bool
}

// Registry holds independently cancellable reveal tasks. The host schedules
// ticks (one per Delay) and feeds them back through Advance. Not safe for
// concurrent use.
type Registry struct {
	tasks map[Key]*task
	gen   uint64
}

func NewRegistry() *Registry {
	return &Registry{tasks: make(map[Key]*task)}
}

// Start registers a fresh sequence for key, replacing any previous one. It
// returns the first tick to schedule, or false when nothing is left to reveal.
func (r *Registry) Start(key Key, text string, delay time.Duration, onComplete func()) (Tick, bool) {
	r.gen++
	t := &task{seq: NewSequence(text), gen: r.gen, onComplete: onComplete}
	r.tasks[key] = t

	if delay <= 0 {
		for t.seq.Step() {
		}
	}

	if t.seq.Done() {
		r.complete(t)
		return Tick{}, false
	}

	return Tick{Key: key, Gen: t.gen, Delay: delay}, true
}

// Advance applies tick and returns the next one to schedule.
func (r *Registry) Advance(tick Tick) (Tick, bool) {
	t, ok := r.tasks[tick.Key]
	if !ok || t.gen != tick.Gen || t.seq.Done() {
		return Tick{}, false
	}

	t.seq.Step()
	if t.seq.Done() {
		r.complete(t)
		return Tick{}, false
	}

	return tick, true
}

func (r *Registry) Prefix(key Key) (string, bool) {
	t, ok := r.tasks[key]
	if !ok {
		return "", false
	}
	return t.seq.Prefix(), true
}

// Pending counts tasks that still have characters to reveal.
func (r *Registry) Pending() int {
	pending := 0
	for _, t := range r.tasks {
		if !t.seq.Done() {
			pending++
		}
	}
	return pending
}

// CancelOwner drops every task of owner and returns how many were removed.
func (r *Registry) CancelOwner(owner string) int {
	removed := 0
	for key := range r.tasks {
		if key.Owner == owner {
			delete(r.tasks, key)
			removed++
		}
	}
	return removed
}

func (r *Registry) CancelAll() {
	clear(r.tasks)
}

func (r *Registry) complete(t *task) {
	if t.completed {
		return
	}
	t.completed = true
	if t.onComplete != nil {
		t.onComplete()
	}
}
