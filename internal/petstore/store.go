// Package petstore is a small in-memory pet store API used to demonstrate
// and exercise the documentation registry.
package petstore

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// ErrNotFound is returned for unknown pet and order IDs.
var ErrNotFound = errors.New("petstore: not found")

// Pet statuses.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

// Order statuses.
const (
	OrderPlaced    = "placed"
	OrderApproved  = "approved"
	OrderDelivered = "delivered"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Pet struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status,omitempty" swagger:"enum=available|pending|sold,default=available"`
	Category *Category `json:"category,omitempty"`
	Tags     []Tag     `json:"tags,omitempty"`
	Photos   []string  `json:"photos,omitempty" swagger:"description=Photo file names"`
}

type Order struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"petId"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status" swagger:"enum=placed|approved|delivered"`
}

// Store keeps pets and orders in memory. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	pets    map[int64]Pet
	orders  map[int64]Order
	lastPet int64
	lastOrd int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		pets:   make(map[int64]Pet),
		orders: make(map[int64]Order),
	}
}

// AddPet stores p under a new ID and returns it. An empty status means
// available.
func (s *Store) AddPet(p Pet) Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastPet++
	p.ID = s.lastPet
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	s.pets[p.ID] = p
	return p
}

// Pet returns the pet with id or ErrNotFound.
func (s *Store) Pet(id int64) (Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pets[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

// Pets returns up to limit pets with the given status ordered by ID. An
// empty status matches every pet; limit <= 0 means no limit.
func (s *Store) Pets(status string, limit int) []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Pet{}
	for _, id := range slices.Sorted(maps.Keys(s.pets)) {
		p := s.pets[id]
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// DeletePet removes the pet with id or returns ErrNotFound.
func (s *Store) DeletePet(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[id]; !ok {
		return ErrNotFound
	}
	delete(s.pets, id)
	return nil
}

// AddPhoto records an uploaded photo name on the pet.
func (s *Store) AddPhoto(id int64, name string) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pets[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	p.Photos = append(slices.Clone(p.Photos), name)
	s.pets[id] = p
	return p, nil
}

// PlaceOrder stores o under a new ID. The pet must exist.
func (s *Store) PlaceOrder(o Order) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[o.PetID]; !ok {
		return Order{}, ErrNotFound
	}
	s.lastOrd++
	o.ID = s.lastOrd
	if o.Status == "" {
		o.Status = OrderPlaced
	}
	if o.Quantity == 0 {
		o.Quantity = 1
	}
	s.orders[o.ID] = o
	return o, nil
}

// Order returns the order with id or ErrNotFound.
func (s *Store) Order(id int64) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}
