// Package state holds the client-side state containers. Each feature owns a
// Slice whose reducers run synchronously under the slice lock; asynchronous
// work goes through Run, which applies the pending, fulfilled and rejected
// transitions around a single repository call.
package state

import (
	"context"
	"sync"

	domainerrors "curator/internal/domain/errors"

	"github.com/pkg/errors"
)

// Status is embedded in every slice state. An empty Error means no error.
type Status struct {
	IsLoading bool   `json:"is_loading"`
	Error     string `json:"error"`
}

// Container is the type-erased view of a slice used by the Store.
type Container interface {
	Name() string
	Snapshot() any
	Reset()
}

// Slice is a named, lock-guarded state value. Values handed out by State and
// to subscribers are shallow copies: reducers must replace nested slices
// rather than mutate them in place.
type Slice[S any] struct {
	name    string
	initial func() S
	status  func(*S) *Status

	mu       sync.Mutex
	state    S
	inFlight int
	epoch    uint64
	subs     map[uint64]func(S)
	nextSub  uint64
}

// NewSlice creates a slice starting at initial(). status locates the embedded
// Status inside the state.
func NewSlice[S any](name string, initial func() S, status func(*S) *Status) *Slice[S] {
	return &Slice[S]{
		name:    name,
		initial: initial,
		status:  status,
		state:   initial(),
		subs:    make(map[uint64]func(S)),
	}
}

// Name returns the slice name.
func (s *Slice[S]) Name() string {
	return s.name
}

// State returns a copy of the current state.
func (s *Slice[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Snapshot implements Container.
func (s *Slice[S]) Snapshot() any {
	return s.State()
}

// Update applies a synchronous reducer.
func (s *Slice[S]) Update(reduce func(*S)) {
	s.mu.Lock()
	reduce(&s.state)
	snapshot, subs := s.state, s.subscribers()
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Subscribe registers fn to be called with the new state after every change.
// The returned func removes the subscription.
func (s *Slice[S]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Reset returns the slice to its initial state. Operations started before the
// reset are discarded when they settle.
func (s *Slice[S]) Reset() {
	s.mu.Lock()
	s.state = s.initial()
	s.inFlight = 0
	s.epoch++
	snapshot, subs := s.state, s.subscribers()
	s.mu.Unlock()

	notify(subs, snapshot)
}

// begin marks an operation as outstanding and returns the epoch it belongs to.
func (s *Slice[S]) begin(pending func(*S)) uint64 {
	s.mu.Lock()
	s.inFlight++
	st := s.status(&s.state)
	st.IsLoading = true
	st.Error = ""
	if pending != nil {
		pending(&s.state)
	}
	epoch := s.epoch
	snapshot, subs := s.state, s.subscribers()
	s.mu.Unlock()

	notify(subs, snapshot)

	return epoch
}

// settle applies the final reducer and releases the loading slot. Results of
// operations started before a Reset are dropped.
func (s *Slice[S]) settle(epoch uint64, reduce func(*S)) bool {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()

		return false
	}
	reduce(&s.state)
	if s.inFlight > 0 {
		s.inFlight--
	}
	s.status(&s.state).IsLoading = s.inFlight > 0
	snapshot, subs := s.state, s.subscribers()
	s.mu.Unlock()

	notify(subs, snapshot)

	return true
}

func (s *Slice[S]) subscribers() []func(S) {
	subs := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return subs
}

func notify[S any](subs []func(S), snapshot S) {
	for _, fn := range subs {
		fn(snapshot)
	}
}

// Reducers are the transitions applied around an asynchronous operation.
// Every field is optional.
type Reducers[S, R any] struct {
	// Pending runs when the operation starts, after IsLoading and Error are set.
	Pending func(*S)
	// Fulfilled commits a successful result.
	Fulfilled func(*S, R)
	// Rollback undoes Pending. It runs on rejection and on cancellation.
	Rollback func(*S)
	// Rejected runs after the error message is stored.
	Rejected func(*S, string)
	// Fallback is the message used when the error carries none.
	Fallback string
	// Silent leaves Error untouched on rejection.
	Silent bool
}

// Run executes fn as an asynchronous operation on slice. When ctx is done by
// the time fn returns, nothing is committed: loading settles, Rollback runs
// and ctx.Err() is returned.
func Run[S, R any](ctx context.Context, slice *Slice[S], r Reducers[S, R], fn func(context.Context) (R, error)) (R, error) {
	epoch := slice.begin(r.Pending)

	result, err := fn(ctx)

	if ctxErr := ctx.Err(); ctxErr != nil {
		slice.settle(epoch, func(st *S) {
			if r.Rollback != nil {
				r.Rollback(st)
			}
		})

		var zero R

		return zero, errors.WithStack(ctxErr)
	}

	if err != nil {
		msg := domainerrors.ExtractMessage(err, r.Fallback)
		slice.settle(epoch, func(st *S) {
			if !r.Silent {
				slice.status(st).Error = msg
			}
			if r.Rollback != nil {
				r.Rollback(st)
			}
			if r.Rejected != nil {
				r.Rejected(st, msg)
			}
		})

		var zero R

		return zero, err
	}

	slice.settle(epoch, func(st *S) {
		if r.Fulfilled != nil {
			r.Fulfilled(st, result)
		}
	})

	return result, nil
}

// none is the result type of operations that only report success.
type none struct{}

// Exec is Run for operations without a result.
func Exec[S any](ctx context.Context, slice *Slice[S], r Reducers[S, none], fn func(context.Context) error) error {
	_, err := Run(ctx, slice, r, func(ctx context.Context) (none, error) {
		return none{}, fn(ctx)
	})

	return err
}
