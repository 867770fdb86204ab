// Session tracks one UI surface's in-flight summarization request.
package assist

import (
	"context"
	"sync"
)

// State is a snapshot of the session: Loading while a request is in flight,
// then exactly one of Result or Err.
type State struct {
	Loading bool
	Result  string
	Err     error
}

// Session serializes summarize requests for one surface. Only one request is
// logically in flight at a time; starting a new one supersedes the previous
// request, and a superseded reply is dropped when it eventually arrives
// (last-result-wins). Out-of-order replies never corrupt the state.
type Session struct {
	Client *Client

	// OnLoading, OnResult, and OnError are invoked outside the session
	// lock as the state changes. Any of them may be nil.
	OnLoading func(bool)
	OnResult  func(string)
	OnError   func(error)

	mu    sync.Mutex
	gen   uint64
	state State
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start issues the request in the background. The session immediately enters
// the loading state; the callbacks fire when the reply (or failure) lands,
// unless a newer Start superseded this request first.
func (s *Session) Start(ctx context.Context, req Request) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = State{Loading: true}
	s.mu.Unlock()

	if s.OnLoading != nil {
		s.OnLoading(true)
	}

	go func() {
		result, err := s.Client.Summarize(ctx, req)
		s.complete(gen, result, err)
	}()
}

// complete records the outcome of request gen, dropping it if a newer
// request has started since.
func (s *Session) complete(gen uint64, result string, err error) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state = State{Err: err}
	} else {
		s.state = State{Result: result}
	}
	s.mu.Unlock()

	if s.OnLoading != nil {
		s.OnLoading(false)
	}
	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
		}
		return
	}
	if s.OnResult != nil {
		s.OnResult(result)
	}
}
