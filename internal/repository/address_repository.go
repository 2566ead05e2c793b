package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/unclebandit/customer-service/internal/db"
	appErrors "github.com/unclebandit/customer-service/internal/errors"
	"github.com/unclebandit/customer-service/internal/model"
)

// AddressRepositoryInterface defines methods used by the address service
type AddressRepositoryInterface interface {
	List(ctx context.Context) ([]model.Address, error)
	GetByID(ctx context.Context, id int) (*model.Address, error)
	Create(ctx context.Context, a *model.Address) error
	Update(ctx context.Context, id int, a *model.Address) error
	Delete(ctx context.Context, id int) error
}

// AddressRepository is the gorm implementation
type AddressRepository struct {
	DB *gorm.DB
}

func (r *AddressRepository) List(ctx context.Context) ([]model.Address, error) {
	addresses := []model.Address{}
	if err := r.DB.WithContext(ctx).Order("id").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByID returns *appErrors.ErrNotFound when no address has this id.
func (r *AddressRepository) GetByID(ctx context.Context, id int) (*model.Address, error) {
	var a model.Address
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("address", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(ctx context.Context, a *model.Address) error {
	uow := db.NewUnitOfWork(r.DB)
	uow.Add(a)
	return uow.SaveChanges(ctx)
}

// Update writes every column of a onto the row stored under id. a.ID may
// differ from id, in which case the row's key changes.
func (r *AddressRepository) Update(ctx context.Context, id int, a *model.Address) error {
	uow := db.NewUnitOfWork(r.DB)
	uow.Do(func(tx *gorm.DB) error {
		return tx.Model(&model.Address{}).Where("id = ?", id).Updates(map[string]any{
			"id":          a.ID,
			"city":        a.City,
			"postal_code": a.PostalCode,
			"country":     a.Country,
		}).Error
	})
	return uow.SaveChanges(ctx)
}

func (r *AddressRepository) Delete(ctx context.Context, id int) error {
	uow := db.NewUnitOfWork(r.DB)
	uow.Do(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&model.Address{}).Error
	})
	return uow.SaveChanges(ctx)
}

var _ AddressRepositoryInterface = (*AddressRepository)(nil)
