// Package nav models client-side navigation as an injected capability.
package nav

import (
	"strings"

	"go.uber.org/zap"
)

// HomePath is the site root reached from the title control.
const HomePath = "/"

// Navigator moves the application to a path. Destinations are opaque to
// the caller; nothing is returned.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

// Router is a Navigator backed by a history stack.
type Router struct {
	stack  []string
	logger *zap.Logger
}

// NewRouter returns an empty router. A nil logger discards output.
func NewRouter(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{logger: logger}
}

// Navigate pushes path onto the history.
func (r *Router) Navigate(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = HomePath
	}
	r.stack = append(r.stack, path)
	r.logger.Info("navigate", zap.String("path", path), zap.Int("depth", len(r.stack)))
}

// Current returns the most recent destination.
func (r *Router) Current() (string, bool) {
	if len(r.stack) == 0 {
		return "", false
	}
	return r.stack[len(r.stack)-1], true
}

// Back pops the most recent destination and returns it.
func (r *Router) Back() (string, bool) {
	if len(r.stack) == 0 {
		return "", false
	}
	last := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.logger.Debug("navigate back", zap.String("from", last), zap.Int("depth", len(r.stack)))
	return last, true
}

// Depth returns the number of entries in the history.
func (r *Router) Depth() int {
	return len(r.stack)
}

// History returns a copy of the history, oldest first.
func (r *Router) History() []string {
	out := make([]string, len(r.stack))
	copy(out, r.stack)
	return out
}
