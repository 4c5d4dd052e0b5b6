package stopfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/philo/pkg/philo"
)

type stopRecorder struct {
	mu      sync.Mutex
	reasons []string
	called  chan struct{}
}

func newStopRecorder() *stopRecorder {
	return &stopRecorder{called: make(chan struct{}, 8)}
}

func (r *stopRecorder) Stop(reason string) error {
	r.mu.Lock()
	r.reasons = append(r.reasons, reason)
	r.mu.Unlock()
	r.called <- struct{}{}
	return nil
}

func (r *stopRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reasons)
}

func initPlugin(t *testing.T, path string, rec *stopRecorder) *Plugin {
	t.Helper()
	p := New(Config{Path: path, DebounceDelay: 10 * time.Millisecond})
	err := p.Initialize(context.Background(), philo.PluginConfig{
		RunID: "test",
		Stop:  rec.Stop,
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p
}

func TestPlugin_StopsOnCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "philo.stop")
	rec := newStopRecorder()
	initPlugin(t, path, rec)

	if err := os.WriteFile(path, []byte("stop"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-rec.called:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop was not called after stop file was created")
	}

	// repeated writes stop only once
	if err := os.WriteFile(path, []byte("again"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.reasons) != 1 || rec.reasons[0] != Reason {
		t.Errorf("Stop reasons = %v, want [%q]", rec.reasons, Reason)
	}
}

func TestPlugin_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	rec := newStopRecorder()
	initPlugin(t, filepath.Join(dir, "philo.stop"), rec)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	if n := rec.count(); n != 0 {
		t.Errorf("Stop called %d times for unrelated file", n)
	}
}

func TestPlugin_DisabledWithoutPath(t *testing.T) {
	rec := newStopRecorder()
	p := New(DefaultConfig())
	if err := p.Initialize(context.Background(), philo.PluginConfig{Stop: rec.Stop}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestPlugin_MissingDirectory(t *testing.T) {
	p := New(Config{Path: filepath.Join(t.TempDir(), "missing", "philo.stop")})
	err := p.Initialize(context.Background(), philo.PluginConfig{})
	if err == nil {
		_ = p.Shutdown(context.Background())
		t.Fatal("Initialize expected error for missing directory")
	}
}

func TestPlugin_ShutdownWithoutInitialize(t *testing.T) {
	p := New(DefaultConfig())
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	if p.Name() != "stopfile" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestWithPath_EndsSimulation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "philo.stop")

	cfg := philo.DefaultConfig()
	cfg.Philosophers = 3
	cfg.TimeToDie = time.Minute
	cfg.TimeToEat = 5 * time.Millisecond
	cfg.TimeToSleep = 5 * time.Millisecond

	sim, err := philo.New(cfg,
		philo.WithReporter(philo.ReporterFunc(func(int64, int, philo.Action) {})),
		WithPath(path),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer sim.Close()

	if err := sim.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	v, err := sim.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if v.Kind != philo.VerdictInterrupted || v.Reason != Reason {
		t.Errorf("verdict = %+v, want interrupted by %q", v, Reason)
	}
}
