package core

// FrameTask is a handle to a repeating per-frame task.
type FrameTask struct {
	fn        func()
	cancelled bool
}

// Cancel stops the task. Cancelling a stopped task does nothing.
func (t *FrameTask) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the task will run on the next frame.
func (t *FrameTask) Active() bool {
	return t != nil && !t.cancelled
}

// FrameScheduler runs repeating tasks once per frame, on the caller's goroutine.
// The host (a Bubble Tea tick, an Ebitengine Update, a headless loop) drives it
// by calling RunFrame; nothing runs between frames.
type FrameScheduler struct {
	tasks []*FrameTask
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Every registers fn to run once per frame until the returned task is cancelled.
func (s *FrameScheduler) Every(fn func()) *FrameTask {
	t := &FrameTask{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// RunFrame runs every active task once and drops cancelled ones.
// A task cancelled during the frame (by itself or another task) does not run
// again. Tasks registered during the frame first run on the next frame.
// Returns true if any task is still active afterwards.
func (s *FrameScheduler) RunFrame() bool {
	current := s.tasks
	for _, t := range current {
		if t.Active() {
			t.fn()
		}
	}

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			live = append(live, t)
		}
	}
	// Clear the tail so cancelled tasks can be collected.
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live

	return len(s.tasks) > 0
}

// Pending reports whether any task is still active.
func (s *FrameScheduler) Pending() bool {
	for _, t := range s.tasks {
		if t.Active() {
			return true
		}
	}
	return false
}
