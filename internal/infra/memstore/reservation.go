package memstore

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"hotel-front-desk/internal/domain/reservation"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/clock"

	"github.com/google/uuid"
)

// ReservationStore owns the canonical reservation aggregates for the
// process lifetime. Mutations are serialized per reservation id: each entry
// carries its own mutex, and a successful mutation publishes a fresh
// aggregate clone through an atomic pointer. Readers load that pointer
// without taking the entry lock, so they observe either the pre- or
// post-mutation aggregate in full, never a half-applied one.
type ReservationStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
	order   []uuid.UUID // insertion order, for stable listings
	codes   map[string]struct{}
	codeSeq atomic.Int64
}

type entry struct {
	mu   sync.Mutex
	snap atomic.Pointer[reservation.Reservation]
}

func NewReservationStore(clk clock.Clock) *ReservationStore {
	s := &ReservationStore{
		entries: make(map[uuid.UUID]*entry),
		codes:   make(map[string]struct{}),
	}
	// Seed the confirmation-code sequence from the wall clock so restarted
	// demos don't hand out the same codes from zero.
	s.codeSeq.Store(clk.Now().UnixMilli() % 1_000_000)
	return s
}

// Create admits a freshly built aggregate, assigns its confirmation code,
// and publishes the first snapshot.
func (s *ReservationStore) Create(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	stored := res.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[stored.ID()]; ok {
		return nil, infra.WrapStoreErr(infra.KindConflict, "reservation id already exists", nil)
	}
	if err := stored.AssignCode(s.nextCode()); err != nil {
		return nil, infra.WrapStoreErr(infra.KindConflict, "assign confirmation code", err)
	}

	e := &entry{}
	e.snap.Store(stored)
	s.entries[stored.ID()] = e
	s.order = append(s.order, stored.ID())
	s.codes[stored.Code()] = struct{}{}

	return stored.Clone(), nil
}

// Get is a lock-free snapshot read of one aggregate.
func (s *ReservationStore) Get(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "reservation "+id.String(), nil)
	}
	return e.snap.Load().Clone(), nil
}

// Update applies fn to a private clone under the entry's lock. If fn
// returns an error nothing is published and the stored aggregate is
// untouched; otherwise the clone becomes the new visible snapshot.
func (s *ReservationStore) Update(_ context.Context, id uuid.UUID, fn func(*reservation.Reservation) error) (*reservation.Reservation, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "reservation "+id.String(), nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.snap.Load().Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	e.snap.Store(next)
	return next.Clone(), nil
}

// List returns snapshot clones of every reservation in insertion order.
func (s *ReservationStore) List(_ context.Context) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.entries[id])
	}
	s.mu.RUnlock()

	out := make([]*reservation.Reservation, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.snap.Load().Clone())
	}
	return out, nil
}

func (s *ReservationStore) lookup(id uuid.UUID) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// nextCode draws from the sequence until it lands on a code no stored
// reservation holds. The sequence wraps at a million, so after enough
// bookings a draw can revisit a live code. Callers must hold s.mu.
func (s *ReservationStore) nextCode() string {
	for {
		code := fmt.Sprintf("BK%06d", s.codeSeq.Add(1)%1_000_000)
		if _, taken := s.codes[code]; !taken {
			return code
		}
	}
}
