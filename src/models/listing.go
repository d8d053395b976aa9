package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentals/src/types"
)

type Listing struct {
	ID          uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	Platform    string      `gorm:"size:50" json:"platform"`
	PlatformFee types.Money `json:"platform_fee"`
	PropertyID  *uuid.UUID  `gorm:"type:uuid" json:"property"`

	Property *Property `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	types.Timestamps
}

// ListingDetail is the list/retrieve shape: the property reference is
// expanded to the full record instead of its id. It is a separate type
// from Listing so the two shapes stay distinct in the schema document.
type ListingDetail struct {
	ID          uuid.UUID   `json:"id"`
	Platform    string      `json:"platform"`
	PlatformFee types.Money `json:"platform_fee"`
	Property    *Property   `json:"property"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Detail expects Property to have been preloaded.
func (l *Listing) Detail() *ListingDetail {
	return &ListingDetail{
		ID:          l.ID,
		Platform:    l.Platform,
		PlatformFee: l.PlatformFee,
		Property:    l.Property,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *Listing) BeforeDelete(tx *gorm.DB) error {
	return tx.
		Model(&Reservation{}).
		Where("listing_id = ?", l.ID).
		UpdateColumn("listing_id", nil).
		Error
}
