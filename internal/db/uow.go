package db

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Operation is a deferred write run inside the commit transaction.
// Returning an error rolls the transaction back.
type Operation func(tx *gorm.DB) error

// UnitOfWork collects the statements of one write and applies them in a
// single transaction on SaveChanges. Every request performs at most one
// write, so a request never spans more than one transaction.
type UnitOfWork struct {
	root *gorm.DB

	mu  sync.Mutex
	ops []Operation
}

// NewUnitOfWork creates a UnitOfWork on top of an open gorm.DB. No
// transaction is started until SaveChanges.
func NewUnitOfWork(gdb *gorm.DB) *UnitOfWork {
	return &UnitOfWork{root: gdb}
}

// Do queues an operation.
func (u *UnitOfWork) Do(op Operation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, op)
}

// Add queues an insert of entity.
func (u *UnitOfWork) Add(entity any) {
	u.Do(func(tx *gorm.DB) error { return tx.Create(entity).Error })
}

// SaveChanges runs every queued operation in one transaction. On error the
// transaction is rolled back and the queue is kept; on success it is cleared.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	u.mu.Lock()
	ops := append([]Operation(nil), u.ops...)
	u.mu.Unlock()

	err := u.root.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.reset()
	return nil
}

func (u *UnitOfWork) reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = nil
}
