package task

import (
	"context"
	"sync"
	"time"
)

const taskTimeout = 3 * time.Second

type (
	// Task controls the lifetime of the object that owns it
	// and of every subtask spawned from it.
	//
	// Finishing a task cancels its context, waits for its subtasks,
	// runs its callbacks and detaches it from its parent.
	Task struct {
		ctx    context.Context
		cancel context.CancelCauseFunc

		parent *Task

		children     uint32
		childrenDone chan struct{}

		callbacks     map[*Callback]struct{}
		callbacksDone chan struct{}

		finished chan struct{}
		once     sync.Once

		name string

		mu sync.Mutex
	}
	Callback struct {
		fn           func()
		about        string
		waitChildren bool
	}
)

// Context returns the context associated with the task. It is
// canceled when Finish is called or the parent task is canceled.
func (t *Task) Context() context.Context {
	return t.ctx
}

// Finished returns a channel that is closed when the task is finished.
func (t *Task) Finished() <-chan struct{} {
	return t.finished
}

// FinishCause returns the reason or error that caused the task to be finished.
func (t *Task) FinishCause() error {
	cause := context.Cause(t.ctx)
	if cause == nil {
		return t.ctx.Err()
	}
	return cause
}

// OnFinished calls fn when the task and all its subtasks are finished.
//
// It cannot be called after Finish is called.
func (t *Task) OnFinished(about string, fn func()) {
	t.addCallback(about, fn, true)
}

// OnCancel calls fn when the task is canceled.
//
// It cannot be called after Finish is called.
func (t *Task) OnCancel(about string, fn func()) {
	t.addCallback(about, fn, false)
}

// Finish marks the task as finished and cancels its context with the
// given reason, then waits for all subtasks and callbacks to finish.
func (t *Task) Finish(reason any) {
	t.once.Do(func() {
		t.finish(reason)
	})
}

func (t *Task) finish(reason any) {
	t.cancel(fmtCause(reason))
	if !waitWithTimeout(t.childrenDone) {
		logger.Warn().
			Str("task", t.String()).
			Strs("subtasks", t.listChildren()).
			Msg("Timeout waiting for subtasks to finish")
	}
	go t.runCallbacks()
	if !waitWithTimeout(t.callbacksDone) {
		logger.Warn().
			Str("task", t.String()).
			Strs("callbacks", t.listCallbacks()).
			Msg("Timeout waiting for callbacks to finish")
	}
	if t.parent != nil {
		t.parent.subChildCount()
	}
	allTasks.Remove(t)
	close(t.finished)
	logger.Trace().Msg("task " + t.String() + " finished")
}

// Subtask returns a new subtask with the given name, derived from the parent's context.
//
// If needFinish is false, the subtask finishes itself when its context is canceled,
// otherwise Finish must be called explicitly.
//
// This should not be called after Finish is called.
func (t *Task) Subtask(name string, needFinish ...bool) *Task {
	nf := true
	if len(needFinish) > 0 {
		nf = needFinish[0]
	}

	ctx, cancel := context.WithCancelCause(t.ctx)
	child := &Task{
		ctx:      ctx,
		cancel:   cancel,
		name:     name,
		parent:   t,
		finished: make(chan struct{}),
	}
	t.addChildCount()
	allTasks.Add(child)

	if !nf {
		go func() {
			<-child.ctx.Done()
			child.Finish(nil)
		}()
	}
	logger.Trace().Msg("task " + child.String() + " started")
	return child
}

// Name returns the name of the task without its parents.
func (t *Task) Name() string {
	return t.name
}

// String returns the full name of the task, parents separated by dots.
func (t *Task) String() string {
	if t.parent != nil {
		return t.parent.String() + "." + t.name
	}
	return t.name
}
