// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"fmt"
	"sync"
)

// Registry is an explicit mapping from names to logger instances. The host
// application constructs and owns it; this package keeps no global registry
// and no hierarchical name resolution.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

func NewRegistry() *Registry {
	return &Registry{
		loggers: make(map[string]*Logger),
	}
}

// Resolve returns the logger registered under name, constructing it from
// opts on first use. The opts.Name field is overwritten with name so the
// logger and its registry key always agree.
func (r *Registry) Resolve(name string, opts *Options) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, nil
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	opts.Name = name
	l, err := New(opts)
	if err != nil {
		return nil, fmt.Errorf("could not create logger %q: %w", name, err)
	}
	r.loggers[name] = l
	return l, nil
}

// Lookup returns the logger registered under name, if any.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Close closes all registered loggers and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for name, l := range r.loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.loggers, name)
	}
	return firstErr
}
