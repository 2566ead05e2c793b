package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	appErrors "github.com/unclebandit/customer-service/internal/errors"
	"github.com/unclebandit/customer-service/internal/model"
	"github.com/unclebandit/customer-service/internal/queue"
)

// MockAddressRepo stores addresses in memory
type MockAddressRepo struct {
	mu        sync.Mutex
	addresses map[int]model.Address
	failWrite error
}

func NewMockAddressRepo(seed ...model.Address) *MockAddressRepo {
	m := &MockAddressRepo{addresses: map[int]model.Address{}}
	for _, a := range seed {
		m.addresses[a.ID] = a
	}
	return m
}

func (m *MockAddressRepo) List(ctx context.Context) ([]model.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Address{}
	for _, a := range m.addresses {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockAddressRepo) GetByID(ctx context.Context, id int) (*model.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.addresses[id]
	if !ok {
		return nil, appErrors.NewNotFound("address", id)
	}
	return &a, nil
}

func (m *MockAddressRepo) Create(ctx context.Context, a *model.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite != nil {
		return m.failWrite
	}
	if _, ok := m.addresses[a.ID]; ok {
		return errors.New("duplicate key")
	}
	m.addresses[a.ID] = *a
	return nil
}

func (m *MockAddressRepo) Update(ctx context.Context, id int, a *model.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite != nil {
		return m.failWrite
	}
	delete(m.addresses, id)
	m.addresses[a.ID] = *a
	return nil
}

func (m *MockAddressRepo) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.addresses, id)
	return nil
}

// MockCustomerRepo stores customers in memory
type MockCustomerRepo struct {
	mu        sync.Mutex
	customers map[int]model.Customer
}

func NewMockCustomerRepo(seed ...model.Customer) *MockCustomerRepo {
	m := &MockCustomerRepo{customers: map[int]model.Customer{}}
	for _, c := range seed {
		m.customers[c.ID] = c
	}
	return m
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Customer{}
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, appErrors.NewNotFound("customer", id)
	}
	return &c, nil
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = *c
	return nil
}

func (m *MockCustomerRepo) Update(ctx context.Context, id int, c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.customers, id)
	m.customers[c.ID] = *c
	return nil
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.customers, id)
	return nil
}

// RecordingQueue keeps every published payload
type RecordingQueue struct {
	mu     sync.Mutex
	topics []string
	events []queue.ChangeEvent
	err    error
}

func (q *RecordingQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.topics = append(q.topics, topic)
	q.events = append(q.events, payload.(queue.ChangeEvent))
	return nil
}

func (q *RecordingQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func (q *RecordingQueue) Events() []queue.ChangeEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]queue.ChangeEvent(nil), q.events...)
}
