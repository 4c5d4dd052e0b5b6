// Package stopfile provides a plugin that ends a simulation when a file
// appears. Creating or writing the watched path calls Stop on the running
// simulation with an interrupted verdict.
package stopfile

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/philo/pkg/log"
	"github.com/bft-labs/philo/pkg/philo"
)

// Reason is the interruption reason passed to Stop.
const Reason = "stop file"

// Plugin watches a single path and stops the simulation once it is created
// or written. A file already present at Initialize is ignored until it
// changes again.
type Plugin struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration

	logger   log.Logger
	stop     func(reason string) error
	stopOnce sync.Once
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// Config holds configuration options for the stop-file plugin.
type Config struct {
	// Path is the file to watch. Empty disables the plugin.
	Path string

	// DebounceDelay is how long to wait after the first event before
	// stopping, so a file written in several steps triggers once.
	// Default: 20 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults. Path must be set.
func DefaultConfig() Config {
	return Config{DebounceDelay: 20 * time.Millisecond}
}

// New creates a new stop-file plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 20 * time.Millisecond
	}
	return &Plugin{
		path:          cfg.Path,
		debounceDelay: cfg.DebounceDelay,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "stopfile"
}

// Initialize starts watching the directory that holds the stop file. The
// watch is in place when Initialize returns.
func (p *Plugin) Initialize(ctx context.Context, cfg philo.PluginConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logger = cfg.Logger
	if p.logger == nil {
		p.logger = log.NewNoopLogger()
	}
	p.stop = cfg.Stop

	if p.path == "" {
		p.logger.Warn("stop file watcher disabled: no path configured")
		return nil
	}

	path, err := filepath.Abs(p.path)
	if err != nil {
		return fmt.Errorf("resolve stop file: %w", err)
	}
	p.path = path

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	p.watcher = watcher

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("watching stop file", log.String("path", path))

	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops the watcher and waits for its goroutine.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	cancel := p.cancel
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
	return nil
}

func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()
	defer p.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != p.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			p.debounceStop(ctx)

		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("stop file watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceStop(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		return
	}
	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		p.trigger()
	})
}

func (p *Plugin) trigger() {
	p.stopOnce.Do(func() {
		p.logger.Info("stop file detected", log.String("path", p.path))
		if p.stop == nil {
			return
		}
		if err := p.stop(Reason); err != nil {
			p.logger.Warn("stop request ignored", log.Err(err))
		}
	})
}
