package service

import (
	"context"
	"fmt"

	"github.com/nlsproduction/nls-api/internal/repository/dao"
)

var (
	ErrUnknownEntity  = dao.ErrUnknownEntity
	ErrEntityNotFound = dao.ErrEntityNotFound
	ErrEntityConflict = dao.ErrEntityConflict
)

// AdminStore is the generic CRUD surface over every registered entity.
// It works on descriptor-allocated records, so one implementation covers
// all six tables.
type AdminStore interface {
	Describe(entity string) (dao.EntityDescriptor, error)
	List(ctx context.Context, entity string) (any, error)
	FindByID(ctx context.Context, entity string, id uint) (any, error)
	Insert(ctx context.Context, entity string, record any) (any, error)
	Update(ctx context.Context, entity string, id uint, record any) (any, error)
	Delete(ctx context.Context, entity string, id uint) error
}

type AdminService struct {
	store AdminStore
}

func NewAdminService(store AdminStore) *AdminService {
	return &AdminService{
		store: store,
	}
}

func (s *AdminService) NewRecord(entity string) (any, error) {
	desc, err := s.store.Describe(entity)
	if err != nil {
		return nil, err
	}

	return desc.NewRecord(), nil
}

func (s *AdminService) List(ctx context.Context, entity string) (any, error) {
	list, err := s.store.List(ctx, entity)
	if err != nil {
		if err == ErrUnknownEntity {
			return nil, err
		}

		return nil, fmt.Errorf("s.store.List -> %w", err)
	}

	return list, nil
}

func (s *AdminService) Get(ctx context.Context, entity string, id uint) (any, error) {
	record, err := s.store.FindByID(ctx, entity, id)
	if err != nil {
		return nil, fmt.Errorf("s.store.FindByID -> %w", err)
	}

	return record, nil
}

func (s *AdminService) Create(ctx context.Context, entity string, record any) (any, error) {
	created, err := s.store.Insert(ctx, entity, record)
	if err != nil {
		return nil, fmt.Errorf("s.store.Insert -> %w", err)
	}

	return created, nil
}

func (s *AdminService) Update(ctx context.Context, entity string, id uint, record any) (any, error) {
	updated, err := s.store.Update(ctx, entity, id, record)
	if err != nil {
		return nil, fmt.Errorf("s.store.Update -> %w", err)
	}

	return updated, nil
}

func (s *AdminService) Delete(ctx context.Context, entity string, id uint) error {
	if err := s.store.Delete(ctx, entity, id); err != nil {
		return fmt.Errorf("s.store.Delete -> %w", err)
	}

	return nil
}
