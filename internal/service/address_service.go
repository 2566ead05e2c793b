package service

import (
	"context"
	"errors"
	"log"

	"github.com/unclebandit/customer-service/internal/dto"
	appErrors "github.com/unclebandit/customer-service/internal/errors"
	"github.com/unclebandit/customer-service/internal/mapper"
	"github.com/unclebandit/customer-service/internal/model"
	"github.com/unclebandit/customer-service/internal/queue"
	"github.com/unclebandit/customer-service/internal/repository"
	"github.com/unclebandit/customer-service/internal/validation"
)

type AddressService struct {
	AddressRepo repository.AddressRepositoryInterface
	Queue       queue.Queue
	Topic       string
}

func (s *AddressService) events() publisher {
	return publisher{Queue: s.Queue, Topic: s.Topic}
}

func (s *AddressService) List(ctx context.Context) ([]model.Address, error) {
	return s.AddressRepo.List(ctx)
}

func (s *AddressService) Get(ctx context.Context, id int) (*model.Address, error) {
	a, err := s.AddressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundMessage(err, "Address not found.")
	}
	return a, nil
}

func (s *AddressService) Create(ctx context.Context, in dto.AddressDTO) (*model.Address, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	a := mapper.ToAddress(in)
	if err := s.AddressRepo.Create(ctx, a); err != nil {
		log.Println("⚠️ failed to create address:", err)
		return nil, err
	}

	s.events().publish("address", queue.ActionCreated, a.ID, in)
	return a, nil
}

// Update overwrites the address identified by in.ID with every field of in
// and returns all addresses.
func (s *AddressService) Update(ctx context.Context, in dto.AddressDTO) ([]model.Address, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	a, err := s.AddressRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, notFoundMessage(err, "Couldn't find address.")
	}

	storedID := a.ID
	mapper.MergeAddress(a, in)
	if err := s.AddressRepo.Update(ctx, storedID, a); err != nil {
		log.Println("⚠️ failed to update address:", err)
		return nil, err
	}

	s.events().publish("address", queue.ActionUpdated, a.ID, in)
	return s.AddressRepo.List(ctx)
}

// Delete removes the address and returns the remaining ones.
func (s *AddressService) Delete(ctx context.Context, id int) ([]model.Address, error) {
	a, err := s.AddressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundMessage(err, "Couldn't find address.")
	}

	if err := s.AddressRepo.Delete(ctx, a.ID); err != nil {
		log.Println("⚠️ failed to delete address:", err)
		return nil, err
	}

	s.events().publish("address", queue.ActionDeleted, a.ID, nil)
	return s.AddressRepo.List(ctx)
}

// notFoundMessage swaps in the client-facing message; other errors pass through.
func notFoundMessage(err error, msg string) error {
	var nf *appErrors.ErrNotFound
	if errors.As(err, &nf) {
		return nf.WithMessage(msg)
	}
	return err
}
