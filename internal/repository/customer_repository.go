package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/unclebandit/customer-service/internal/db"
	appErrors "github.com/unclebandit/customer-service/internal/errors"
	"github.com/unclebandit/customer-service/internal/model"
)

// CustomerRepositoryInterface defines methods used by the customer service
type CustomerRepositoryInterface interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, id int, c *model.Customer) error
	Delete(ctx context.Context, id int) error
}

// CustomerRepository is the gorm implementation. Reads eagerly attach the
// referenced Address.
type CustomerRepository struct {
	DB *gorm.DB
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	err := r.DB.WithContext(ctx).Preload("Address").Order("id").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	var c model.Customer
	err := r.DB.WithContext(ctx).Preload("Address").Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("customer", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	uow := db.NewUnitOfWork(r.DB)
	uow.Do(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(c).Error
	})
	return uow.SaveChanges(ctx)
}

func (r *CustomerRepository) Update(ctx context.Context, id int, c *model.Customer) error {
	uow := db.NewUnitOfWork(r.DB)
	uow.Do(func(tx *gorm.DB) error {
		return tx.Model(&model.Customer{}).Where("id = ?", id).Updates(map[string]any{
			"id":         c.ID,
			"name":       c.Name,
			"email":      c.Email,
			"phone":      c.Phone,
			"address_id": c.AddressID,
		}).Error
	})
	return uow.SaveChanges(ctx)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	uow := db.NewUnitOfWork(r.DB)
	uow.Do(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&model.Customer{}).Error
	})
	return uow.SaveChanges(ctx)
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
