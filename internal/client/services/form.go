package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/formsclient/internal/client/api"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/logging"
)

var ErrSubmitInFlight = errors.New("submission already in progress")

// submitter is the state machine shared by the login and registration
// helpers. call performs the request and returns the identity to persist and
// the navigation target.
type submitter struct {
	mu       sync.Mutex
	inFlight bool
	loading  bool
	errMsg   string

	store     session.Store
	navigator Navigator
	logger    logging.Logger
	fallback  string
}

func (s *submitter) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the message of the last failed submit; "" means no error.
func (s *submitter) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *submitter) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	s.loading = true
	s.errMsg = ""
	return true
}

func (s *submitter) finish(errMsg string) {
	s.mu.Lock()
	s.errMsg = errMsg
	s.loading = false
	s.inFlight = false
	s.mu.Unlock()
}

func (s *submitter) run(ctx context.Context, call func(ctx context.Context) (session.Identity, string, error)) error {
	if !s.begin() {
		return ErrSubmitInFlight
	}

	id, target, err := call(ctx)
	if err != nil {
		msg, ok := api.MessageOf(err)
		if !ok {
			msg = s.fallback
		}
		s.logger.Warn(ctx, "form submit failed", "error", err)
		s.finish(msg)
		return nil
	}

	if err := s.store.Save(ctx, id); err != nil {
		s.finish(s.fallback)
		return err
	}
	if err := s.navigator.Navigate(ctx, target); err != nil {
		s.finish(s.fallback)
		return err
	}

	s.logger.Info(ctx, "form submit succeeded", "user_id", id.UserID, "role", id.Role, "target", target)
	s.finish("")
	return nil
}
