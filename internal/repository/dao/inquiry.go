package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type Inquiry struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	EventDate        string `gorm:"size:32" json:"event_date"`
	City             string `gorm:"size:120" json:"city"`
	Guests           *int   `json:"guests"`
	ServiceType      string `gorm:"size:120" json:"service_type"`
	DeliveryRequired bool   `gorm:"not null;default:false" json:"delivery_required"`

	ContactName  string `gorm:"size:120;not null" json:"contact_name"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	ContactPhone string `gorm:"size:64" json:"contact_phone"`
	Notes        string `json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

type InquiryDAO struct {
	db *gorm.DB
}

func NewInquiryDAO(db *gorm.DB) *InquiryDAO {
	return &InquiryDAO{
		db: db,
	}
}

// Insert persists the inquiry as a single atomic write. CreatedAt is
// filled in by GORM at insert time and never updated afterwards.
func (d *InquiryDAO) Insert(ctx context.Context, inquiry Inquiry) (Inquiry, error) {
	result := d.db.WithContext(ctx).Create(&inquiry)
	if result.Error != nil {
		return Inquiry{}, result.Error
	}

	return inquiry, nil
}

func (d *InquiryDAO) List(ctx context.Context) ([]Inquiry, error) {
	var inquiries []Inquiry

	result := d.db.WithContext(ctx).Order("id").Find(&inquiries)
	if result.Error != nil {
		return nil, result.Error
	}

	return inquiries, nil
}

func (d *InquiryDAO) FindByID(ctx context.Context, id uint) (Inquiry, error) {
	var inquiry Inquiry

	result := d.db.WithContext(ctx).First(&inquiry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Inquiry{}, ErrInquiryNotFound
		}

		return Inquiry{}, result.Error
	}

	return inquiry, nil
}
