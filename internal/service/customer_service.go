package service

import (
	"context"
	"log"
	"strings"

	"github.com/unclebandit/customer-service/internal/dto"
	appErrors "github.com/unclebandit/customer-service/internal/errors"
	"github.com/unclebandit/customer-service/internal/mapper"
	"github.com/unclebandit/customer-service/internal/model"
	"github.com/unclebandit/customer-service/internal/queue"
	"github.com/unclebandit/customer-service/internal/repository"
	"github.com/unclebandit/customer-service/internal/validation"
)

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
	Topic        string
}

func (s *CustomerService) events() publisher {
	return publisher{Queue: s.Queue, Topic: s.Topic}
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.CustomerRepo.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int) (*model.Customer, error) {
	c, err := s.CustomerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundMessage(err, "Customer not found.")
	}
	return c, nil
}

// checkFormat rejects contact fields ending in a dot, email first.
func checkFormat(c *model.Customer) error {
	if strings.HasSuffix(c.Email, ".") {
		return appErrors.NewFormatRejected("email")
	}
	if strings.HasSuffix(c.Phone, ".") {
		return appErrors.NewFormatRejected("phone")
	}
	return nil
}

// Create persists the customer and returns the submitted payload.
func (s *CustomerService) Create(ctx context.Context, in dto.CustomerDTO) (*dto.CustomerDTO, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	c := mapper.ToCustomer(in)
	if err := checkFormat(c); err != nil {
		return nil, err
	}

	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		log.Println("⚠️ failed to create customer:", err)
		return nil, err
	}

	s.events().publish("customer", queue.ActionCreated, c.ID, in)
	return &in, nil
}

// Update overwrites the customer identified by in.ID and returns all customers.
func (s *CustomerService) Update(ctx context.Context, in dto.CustomerDTO) ([]model.Customer, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	c, err := s.CustomerRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, notFoundMessage(err, "Couldn't find customer.")
	}

	storedID := c.ID
	mapper.MergeCustomer(c, in)
	if err := s.CustomerRepo.Update(ctx, storedID, c); err != nil {
		log.Println("⚠️ failed to update customer:", err)
		return nil, err
	}

	s.events().publish("customer", queue.ActionUpdated, c.ID, in)
	return s.CustomerRepo.List(ctx)
}

func (s *CustomerService) Delete(ctx context.Context, id int) ([]model.Customer, error) {
	c, err := s.CustomerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundMessage(err, "Couldn't find customer.")
	}

	if err := s.CustomerRepo.Delete(ctx, c.ID); err != nil {
		log.Println("⚠️ failed to delete customer:", err)
		return nil, err
	}

	s.events().publish("customer", queue.ActionDeleted, c.ID, nil)
	return s.CustomerRepo.List(ctx)
}
