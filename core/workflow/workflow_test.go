package workflow

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// wait blocks until ch is closed or fails the test after a real-time grace period.
func wait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for workflow")
	}
}

func TestWorkflow_Run(t *testing.T) {
	clock := clockwork.NewFakeClock()
	wf := New("test_run", clock)

	if got := wf.State(); got != StateIdle {
		t.Fatalf("State() = %v; want %v", got, StateIdle)
	}

	var completed interface{}
	wf.Run(Task{
		Delay:      ResponseDelay,
		Result:     "payload",
		OnComplete: func(res interface{}) { completed = res },
	})
	if !wf.Pending() {
		t.Fatal("Pending() = false right after Run(); want true")
	}
	if _, ok := wf.Result(); ok {
		t.Error("Result() ok = true while pending")
	}

	clock.Advance(ResponseDelay - time.Millisecond)
	if !wf.Pending() {
		t.Fatal("Pending() = false before the delay elapsed")
	}

	clock.Advance(time.Millisecond)
	wait(t, wf.Done())

	if wf.Pending() {
		t.Error("Pending() = true after the delay elapsed")
	}
	if got := wf.State(); got != StateDone {
		t.Errorf("State() = %v; want %v", got, StateDone)
	}
	res, ok := wf.Result()
	if !ok || res != "payload" {
		t.Errorf("Result() = %v, %v; want payload, true", res, ok)
	}
	if completed != "payload" {
		t.Errorf("OnComplete() got %v; want payload", completed)
	}
}

func TestWorkflow_OnStartRunsSynchronously(t *testing.T) {
	wf := New("test_onstart", clockwork.NewFakeClock())

	var pendingOnStart, started bool
	wf.Run(Task{
		Delay:   UploadDelay,
		OnStart: func() { started = true; pendingOnStart = wf.state == StatePending },
	})
	if !started {
		t.Fatal("OnStart() not called before Run() returned")
	}
	if !pendingOnStart {
		t.Error("workflow not pending when OnStart() ran")
	}
}

func TestWorkflow_TryRun(t *testing.T) {
	clock := clockwork.NewFakeClock()
	wf := New("test_tryrun", clock)

	if err := wf.TryRun(Task{Delay: UploadDelay, Result: 1}); err != nil {
		t.Fatalf("TryRun() error = %v", err)
	}
	if err := wf.TryRun(Task{Delay: UploadDelay, Result: 2}); err != ErrPending {
		t.Fatalf("TryRun() while pending error = %v; want %v", err, ErrPending)
	}

	clock.Advance(UploadDelay)
	wait(t, wf.Done())

	if res, _ := wf.Result(); res != 1 {
		t.Errorf("Result() = %v; want 1", res)
	}
	if err := wf.TryRun(Task{Delay: UploadDelay, Result: 3}); err != nil {
		t.Errorf("TryRun() after completion error = %v", err)
	}
}

func TestWorkflow_Accept(t *testing.T) {
	clock := clockwork.NewFakeClock()
	wf := New("test_accept", clock)

	var started bool
	rejected := Task{
		Delay:   UploadDelay,
		Accept:  func() bool { return false },
		OnStart: func() { started = true },
	}
	if err := wf.TryRun(rejected); err != ErrRejected {
		t.Fatalf("TryRun() error = %v; want %v", err, ErrRejected)
	}
	if err := wf.Run(rejected); err != ErrRejected {
		t.Fatalf("Run() error = %v; want %v", err, ErrRejected)
	}
	if started || wf.State() != StateIdle {
		t.Errorf("rejected task started=%v, state=%v; want not started, idle", started, wf.State())
	}

	if err := wf.TryRun(Task{Delay: UploadDelay, Accept: func() bool { return true }, Result: 1}); err != nil {
		t.Fatalf("TryRun() accepted error = %v", err)
	}
	if !wf.Pending() {
		t.Error("Pending() = false after an accepted task")
	}
}

func TestWorkflow_RunRestarts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	wf := New("test_restart", clock)

	var mu sync.Mutex
	var calls []interface{}
	onComplete := func(res interface{}) {
		mu.Lock()
		calls = append(calls, res)
		mu.Unlock()
	}

	wf.Run(Task{Delay: GenerationDelay, Result: "first", OnComplete: onComplete})
	first := wf.Done()

	clock.Advance(GenerationDelay / 2)
	wf.Run(Task{Delay: GenerationDelay, Result: "second", OnComplete: onComplete})
	wait(t, first) // discarded invocation releases its waiters

	clock.Advance(GenerationDelay / 2)
	if !wf.Pending() {
		t.Fatal("restarted workflow completed with the first invocation's timer")
	}

	clock.Advance(GenerationDelay / 2)
	wait(t, wf.Done())

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("OnComplete() calls = %v; want [second]", calls)
	}
}

func TestWorkflow_Stop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	wf := New("test_stop", clock)

	if wf.Stop() {
		t.Error("Stop() on idle workflow = true")
	}

	called := false
	wf.Run(Task{Delay: DashboardLoadDelay, OnComplete: func(interface{}) { called = true }})
	done := wf.Done()
	if !wf.Stop() {
		t.Fatal("Stop() on pending workflow = false")
	}
	wait(t, done)

	clock.Advance(DashboardLoadDelay)
	if got := wf.State(); got != StateIdle {
		t.Errorf("State() after Stop() = %v; want %v", got, StateIdle)
	}
	if called {
		t.Error("OnComplete() called after Stop()")
	}
}

func TestWorkflow_IndependentDelays(t *testing.T) {
	clock := clockwork.NewFakeClock()
	generation := New("test_generation", clock)
	dashboard := New("test_dashboard", clock)

	order := make(chan string, 2)

	// the longer one is invoked first
	generation.Run(Task{Delay: GenerationDelay, OnComplete: func(interface{}) { order <- "generation" }})
	dashboard.Run(Task{Delay: DashboardLoadDelay, OnComplete: func(interface{}) { order <- "dashboard" }})

	clock.Advance(DashboardLoadDelay)
	wait(t, dashboard.Done())
	if !generation.Pending() {
		t.Fatal("generation completed together with the dashboard load")
	}

	clock.Advance(GenerationDelay - DashboardLoadDelay)
	wait(t, generation.Done())

	if first := <-order; first != "dashboard" {
		t.Errorf("first completion = %s; want dashboard", first)
	}
	if second := <-order; second != "generation" {
		t.Errorf("second completion = %s; want generation", second)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StatePending, "pending"},
		{StateDone, "done"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %v; want %v", got, tt.want)
			}
		})
	}
}
