package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Loader holds the current configuration and reloads it when the config
// file, or any extra watched file, changes on disk.
type Loader struct {
	path     string
	logger   *zap.Logger
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader creates a Loader and performs the initial load. An empty path
// serves Default() and only extra files passed to Watch trigger reloads.
func NewLoader(path string, logger *zap.Logger) (*Loader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{path: path, logger: logger}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Config returns the current configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the config file and notifies the callbacks.
// On error the previous configuration stays current.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch starts a goroutine that calls Reload whenever the config file or one
// of extra is written or recreated. Call stop to release the watcher.
func (l *Loader) Watch(extra ...string) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	paths := extra
	if l.path != "" {
		paths = append([]string{l.path}, extra...)
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := w.Add(p); err != nil {
			w.Close()
			return nil, fmt.Errorf("config watcher add %s: %w", p, err)
		}
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					l.logger.Warn("reload failed, keeping previous config",
						zap.String("file", ev.Name), zap.Error(err))
					continue
				}
				l.logger.Info("config reloaded", zap.String("file", ev.Name))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.Warn("watcher error", zap.Error(err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once

	return func() { once.Do(func() { close(done) }) }, nil
}
