// Package workflow simulates asynchronous operations (uploads, content generation, tutor replies...)
// with a fixed delay: a pending flag is raised on invocation and a pre-selected result is revealed
// once the delay has elapsed.
package workflow

import (
	"errors"
	"expvar"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Default delays of the simulated operations.
const (
	DashboardLoadDelay = 1000 * time.Millisecond
	ResponseDelay      = 1000 * time.Millisecond
	UploadDelay        = 1500 * time.Millisecond
	GenerationDelay    = 2000 * time.Millisecond
)

var (
	ErrPending  = errors.New("operation already in progress")
	ErrRejected = errors.New("operation rejected")

	metrics = expvar.NewMap("workflows")
)

// State of a Workflow: IDLE -> PENDING -> DONE.
type State int

const (
	StateIdle State = iota
	StatePending
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDone:
		return "done"
	default:
		return "idle"
	}
}

// Task describes one invocation.
type Task struct {
	Delay time.Duration

	// Result is revealed when Delay has elapsed. It is chosen by the caller, never computed here.
	Result interface{}

	// Accept, if set, is checked with the workflow locked before anything starts.
	// When it returns false the invocation is dropped and ErrRejected is returned.
	Accept func() bool

	// OnStart runs synchronously, once the workflow is PENDING and before Run returns.
	OnStart func()

	// OnComplete runs when Delay has elapsed, before the workflow leaves PENDING.
	// It is never called for a cancelled or restarted invocation.
	OnComplete func(result interface{})
}

// Workflow is a single simulated operation slot. It is safe for concurrent use.
//
// OnStart and OnComplete are called with the workflow locked: they may lock their owner
// but must not call back into the Workflow.
type Workflow struct {
	name  string
	clock clockwork.Clock

	mu     sync.Mutex
	state  State
	result interface{}
	timer  clockwork.Timer
	done   chan struct{}
	gen    uint64 // invocation counter; a fired timer from an older invocation is ignored
}

func New(name string, clock clockwork.Clock) *Workflow {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Workflow{name: name, clock: clock}
}

func (w *Workflow) Name() string { return w.name }

// Run starts the task. If an invocation is already pending it is discarded and the workflow restarts.
func (w *Workflow) Run(t Task) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t.Accept != nil && !t.Accept() {
		return ErrRejected
	}
	w.start(t)
	return nil
}

// TryRun starts the task unless an invocation is pending, in which case ErrPending is returned.
func (w *Workflow) TryRun(t Task) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StatePending {
		return ErrPending
	}
	if t.Accept != nil && !t.Accept() {
		return ErrRejected
	}
	w.start(t)
	return nil
}

func (w *Workflow) start(t Task) {
	if w.state == StatePending {
		w.cancel()
	}

	w.gen++
	gen := w.gen
	w.state = StatePending
	w.result = nil
	w.done = make(chan struct{})
	metrics.Add(w.name+".started", 1)

	if t.OnStart != nil {
		t.OnStart()
	}
	w.timer = w.clock.AfterFunc(t.Delay, func() { w.complete(gen, t) })
}

func (w *Workflow) complete(gen uint64, t Task) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen || w.state != StatePending {
		return
	}

	if t.OnComplete != nil {
		t.OnComplete(t.Result)
	}
	w.state = StateDone
	w.result = t.Result
	w.timer = nil
	close(w.done)
	metrics.Add(w.name+".completed", 1)
}

// cancel disarms the pending invocation. Must be called with w.mu held.
func (w *Workflow) cancel() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	close(w.done)
	metrics.Add(w.name+".cancelled", 1)
}

// Stop cancels the pending invocation, if any, and resets the workflow to IDLE.
// It reports whether an invocation was cancelled.
func (w *Workflow) Stop() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StatePending {
		return false
	}
	w.gen++
	w.cancel()
	w.state = StateIdle
	w.result = nil
	return true
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Pending reports whether an invocation is in flight.
func (w *Workflow) Pending() bool {
	return w.State() == StatePending
}

// Result returns the result of the last completed invocation.
func (w *Workflow) Result() (interface{}, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result, w.state == StateDone
}

// Done returns a channel closed when the current invocation completes or is cancelled.
// It is nil before the first invocation.
func (w *Workflow) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}
