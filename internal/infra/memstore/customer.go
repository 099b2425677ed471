package memstore

import (
	"context"
	"sync"

	"hotel-front-desk/internal/domain/customer"
	"hotel-front-desk/internal/infra"

	"github.com/google/uuid"
)

// CustomerStore holds registered self-service accounts, keyed by the
// case-insensitive email.
type CustomerStore struct {
	mu      sync.RWMutex
	byEmail map[string]*customer.Customer
	byID    map[uuid.UUID]*customer.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		byEmail: make(map[string]*customer.Customer),
		byID:    make(map[uuid.UUID]*customer.Customer),
	}
}

func (s *CustomerStore) Create(_ context.Context, c *customer.Customer) error {
	key := customer.NormalizeEmail(c.Email())

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[key]; ok {
		return infra.WrapStoreErr(infra.KindConflict, "email "+key+" already registered", nil)
	}
	s.byEmail[key] = c
	s.byID[c.ID()] = c
	return nil
}

func (s *CustomerStore) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	key := customer.NormalizeEmail(email)

	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byEmail[key]
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "customer "+key, nil)
	}
	return c, nil
}

func (s *CustomerStore) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "customer "+id.String(), nil)
	}
	return c, nil
}
