package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentals/src/types"
)

type Property struct {
	ID             uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	Code           string      `gorm:"size:50;uniqueIndex" json:"code"`
	GuestLimit     uint        `json:"guest_limit"`
	Bathrooms      uint        `json:"bathrooms"`
	AcceptPets     bool        `json:"accept_pets"`
	CleaningPrice  types.Money `json:"cleaning_price"`
	ActivationDate *types.Date `json:"activation_date"`

	types.Timestamps
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Deleting a property orphans its listings instead of cascading into
// them. UpdateColumn keeps the listings otherwise untouched.
func (p *Property) BeforeDelete(tx *gorm.DB) error {
	return tx.
		Model(&Listing{}).
		Where("property_id = ?", p.ID).
		UpdateColumn("property_id", nil).
		Error
}
