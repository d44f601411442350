package web

import (
	"sync"

	"github.com/dmitrijs2005/formsclient/internal/client/services"
)

const submitInFlight = "Submission already in progress"

// submitGuard allows one submission per form and browser session at a time.
type submitGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newSubmitGuard() *submitGuard {
	return &submitGuard{active: make(map[string]struct{})}
}

// acquire claims form for sessionID. The returned func releases the claim.
func (g *submitGuard) acquire(form, sessionID string) (func(), error) {
	key := form + ":" + sessionID

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return nil, services.ErrSubmitInFlight
	}
	g.active[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}, nil
}
