package repository

import (
	"context"
	"fmt"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/repository/dao"
)

var ErrInquiryNotFound = dao.ErrInquiryNotFound

type InquiryDAO interface {
	Insert(ctx context.Context, inquiry dao.Inquiry) (dao.Inquiry, error)
	List(ctx context.Context) ([]dao.Inquiry, error)
	FindByID(ctx context.Context, id uint) (dao.Inquiry, error)
}

type InquiryRepository struct {
	dao InquiryDAO
}

func NewInquiryRepository(dao InquiryDAO) *InquiryRepository {
	return &InquiryRepository{
		dao: dao,
	}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry domain.Inquiry) (domain.Inquiry, error) {
	created, err := r.dao.Insert(ctx, dao.Inquiry{
		EventDate:        inquiry.EventDate,
		City:             inquiry.City,
		Guests:           inquiry.Guests,
		ServiceType:      inquiry.ServiceType,
		DeliveryRequired: inquiry.DeliveryRequired,
		ContactName:      inquiry.ContactName,
		ContactEmail:     inquiry.ContactEmail,
		ContactPhone:     inquiry.ContactPhone,
		Notes:            inquiry.Notes,
	})
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	inquiries := make([]domain.Inquiry, 0, len(found))
	for _, i := range found {
		inquiries = append(inquiries, r.daoToDomain(i))
	}

	return inquiries, nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id uint) (domain.Inquiry, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InquiryRepository) daoToDomain(i dao.Inquiry) domain.Inquiry {
	return domain.Inquiry{
		ID:               i.ID,
		EventDate:        i.EventDate,
		City:             i.City,
		Guests:           i.Guests,
		ServiceType:      i.ServiceType,
		DeliveryRequired: i.DeliveryRequired,
		ContactName:      i.ContactName,
		ContactEmail:     i.ContactEmail,
		ContactPhone:     i.ContactPhone,
		Notes:            i.Notes,
		CreatedAt:        i.CreatedAt,
	}
}
