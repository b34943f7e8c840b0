package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlsproduction/nls-api/internal/domain"
)

type fakeInquiryRepository struct {
	created []domain.Inquiry
	err     error
}

func (f *fakeInquiryRepository) Create(_ context.Context, inquiry domain.Inquiry) (domain.Inquiry, error) {
	if f.err != nil {
		return domain.Inquiry{}, f.err
	}

	inquiry.ID = uint(len(f.created) + 1)
	inquiry.CreatedAt = time.Now()
	f.created = append(f.created, inquiry)

	return inquiry, nil
}

func (f *fakeInquiryRepository) List(_ context.Context) ([]domain.Inquiry, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.created, nil
}

func (f *fakeInquiryRepository) FindByID(_ context.Context, id uint) (domain.Inquiry, error) {
	for _, inquiry := range f.created {
		if inquiry.ID == id {
			return inquiry, nil
		}
	}

	return domain.Inquiry{}, ErrInquiryNotFound
}

func TestInquiryService_Submit(t *testing.T) {
	t.Run("persists exactly one inquiry and sets created_at", func(t *testing.T) {
		repo := &fakeInquiryRepository{}
		svc := NewInquiryService(repo)

		guests := 40
		created, err := svc.Submit(context.Background(), domain.Inquiry{
			ContactName:  "Ivan",
			ContactEmail: "ivan@example.com",
			Guests:       &guests,
		})

		require.NoError(t, err)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "Ivan", created.ContactName)
		require.NotNil(t, created.Guests)
		assert.Equal(t, 40, *created.Guests)
		assert.False(t, created.DeliveryRequired)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("trims the contact name", func(t *testing.T) {
		repo := &fakeInquiryRepository{}
		svc := NewInquiryService(repo)

		created, err := svc.Submit(context.Background(), domain.Inquiry{ContactName: " Ivan "})

		require.NoError(t, err)
		assert.Equal(t, "Ivan", created.ContactName)
	})

	t.Run("store failure propagates and persists nothing", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &fakeInquiryRepository{err: storeErr}
		svc := NewInquiryService(repo)

		_, err := svc.Submit(context.Background(), domain.Inquiry{ContactName: "Ivan"})

		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Empty(t, repo.created)
	})
}

func TestInquiryService_GetInquiry(t *testing.T) {
	repo := &fakeInquiryRepository{}
	svc := NewInquiryService(repo)

	_, err := svc.GetInquiry(context.Background(), 42)

	assert.ErrorIs(t, err, ErrInquiryNotFound)
}
