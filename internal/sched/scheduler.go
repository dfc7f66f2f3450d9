// Package sched runs periodic tasks against a virtual clock.
//
// All tasks share one logical execution context: the caller advances time
// from its own event loop and every due task runs to completion before the
// next one starts. Nothing here spawns goroutines.
package sched

import "time"

// Task is a handle to a periodic activity installed with Scheduler.Every.
type Task struct {
	name     string
	interval time.Duration
	next     time.Duration // Virtual time of the next fire
	order    uint64        // Installation order, breaks ties between equal deadlines
	fn       func()
	fires    int
	stopped  bool
}

// Name returns the label the task was installed with.
func (t *Task) Name() string {
	return t.name
}

// Fires returns how many times the task has run.
func (t *Task) Fires() int {
	return t.fires
}

// Stopped reports whether the task has been retired.
func (t *Task) Stopped() bool {
	return t.stopped
}

// Stop retires the task. It takes effect immediately: a stopped task never
// fires again, including fires already due inside the current Advance call.
// Stopping twice is harmless.
func (t *Task) Stop() {
	t.stopped = true
}

// Scheduler owns a virtual clock and the periodic tasks bound to it.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
	seq   uint64
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every installs fn to run once per interval, first fire one interval from now.
// Non-positive intervals are treated as one nanosecond.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	s.seq++
	t := &Task{
		name:     name,
		interval: interval,
		next:     s.now + interval,
		order:    s.seq,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Active returns the number of tasks that have not been stopped.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// StopAll retires every installed task.
func (s *Scheduler) StopAll() {
	for _, t := range s.tasks {
		t.stopped = true
	}
	s.tasks = s.tasks[:0]
}

// Advance moves the clock forward by dt, firing every task that comes due in
// deadline order. Returns the number of fires.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		t.fires++
		fired++
		t.fn()
	}

	s.now = target
	s.compact()
	return fired
}

// nextDue picks the live task with the earliest deadline not after target.
func (s *Scheduler) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.stopped || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.order < best.order) {
			best = t
		}
	}
	return best
}

// compact drops stopped tasks from the list.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
