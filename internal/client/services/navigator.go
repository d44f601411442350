package services

import (
	"context"
	"sync"
)

// Navigator performs the navigation side effect after a successful submit.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error {
	return f(ctx, path)
}

// RecordingNavigator remembers the last target instead of going anywhere.
// The web frontend turns the recorded target into an HTTP redirect.
type RecordingNavigator struct {
	mu     sync.Mutex
	target string
}

func (n *RecordingNavigator) Navigate(_ context.Context, path string) error {
	n.mu.Lock()
	n.target = path
	n.mu.Unlock()
	return nil
}

// Target returns the last navigation target, or "" if none happened.
func (n *RecordingNavigator) Target() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target
}
