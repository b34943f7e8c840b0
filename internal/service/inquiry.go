package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/repository"
)

var ErrInquiryNotFound = repository.ErrInquiryNotFound

type InquiryRepository interface {
	Create(ctx context.Context, inquiry domain.Inquiry) (domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
	FindByID(ctx context.Context, id uint) (domain.Inquiry, error)
}

// InquiryService is the intake side of the contact form. Field-level
// validation happens in request.SubmitInquiryRequest before the service
// is reached; Submit only normalizes and persists. A store failure is
// fatal to the request and propagates to the caller, never retried.
type InquiryService struct {
	repo InquiryRepository
}

func NewInquiryService(repo InquiryRepository) *InquiryService {
	return &InquiryService{
		repo: repo,
	}
}

func (s *InquiryService) Submit(ctx context.Context, inquiry domain.Inquiry) (domain.Inquiry, error) {
	inquiry.ContactName = strings.TrimSpace(inquiry.ContactName)

	created, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return inquiries, nil
}

func (s *InquiryService) GetInquiry(ctx context.Context, id uint) (domain.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return inquiry, nil
}
