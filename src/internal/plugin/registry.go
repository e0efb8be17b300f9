package plugin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Handler runs one entry point on a JSON payload and returns the JSON response.
type Handler func(input []byte) ([]byte, error)

// UnknownOperationError is returned for names with no registered handler.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Name)
}

// IsUnknownOperation checks if an error indicates an unregistered operation.
func IsUnknownOperation(err error) bool {
	var target *UnknownOperationError
	return errors.As(err, &target)
}

// Registry maps operation names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler under name.
func (r *Registry) Register(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("operation %s is already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// Get returns the handler for name.
func (r *Registry) Get(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	if !ok {
		return nil, &UnknownOperationError{Name: name}
	}
	return h, nil
}

// Names returns all registered operation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named operation.
func (r *Registry) Call(name string, input []byte) ([]byte, error) {
	h, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return h(input)
}

// Operations returns a registry holding every entry point of p.
func Operations(p *Plugin) *Registry {
	r := NewRegistry()
	must := func(name string, h Handler) {
		if err := r.Register(name, h); err != nil {
			panic(err)
		}
	}

	must(OpRegisterTool, noInput(func() (any, error) { return p.RegisterTool(), nil }))
	must(OpLoadVersions, noInput(func() (any, error) { return p.LoadVersions() }))
	must(OpDownloadPrebuilt, withInput(p.DownloadPrebuilt))
	must(OpLocateExecutables, withInput(p.LocateExecutables))
	must(OpResolveVersion, withInput(p.ResolveVersion))
	must(OpDetectVersionFiles, noInput(func() (any, error) { return p.DetectVersionFiles(), nil }))
	must(OpParseVersionFile, withInput(func(in ParseVersionFileInput) (VersionOutput, error) {
		return p.ParseVersionFile(in), nil
	}))

	return r
}

// noInput ignores the payload; the host may send nothing or an empty object.
func noInput(fn func() (any, error)) Handler {
	return func([]byte) ([]byte, error) {
		out, err := fn()
		if err != nil {
			return nil, err
		}
		return json.Marshal(out)
	}
}

func withInput[In, Out any](fn func(In) (Out, error)) Handler {
	return func(input []byte) ([]byte, error) {
		var in In
		if len(bytes.TrimSpace(input)) > 0 {
			if err := json.Unmarshal(input, &in); err != nil {
				return nil, fmt.Errorf("failed to decode input: %w", err)
			}
		}
		out, err := fn(in)
		if err != nil {
			return nil, err
		}
		return json.Marshal(out)
	}
}
