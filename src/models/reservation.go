package models

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentals/src/types"
)

type Reservation struct {
	ID          uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	Code        string      `gorm:"size:6" json:"code"`
	CheckIn     types.Date  `json:"check_in"`
	CheckOut    types.Date  `json:"check_out"`
	Price       types.Money `json:"price"`
	TotalGuests uint        `json:"total_guests"`
	Comments    string      `gorm:"default:''" json:"comments"`
	ListingID   *uuid.UUID  `gorm:"type:uuid" json:"listing"`

	Listing *Listing `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	types.Timestamps
}

// BeforeCreate assigns the id and the confirmation code. The code is
// the first 6 hex digits of a random token, upper-cased; uniqueness is
// best-effort, not enforced.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	token := uuid.New()
	r.Code = strings.ToUpper(hex.EncodeToString(token[:])[:6])
	return nil
}

// ReservationDetail is the list/retrieve shape: the listing reference
// expands to ListingDetail, which in turn carries the full property.
type ReservationDetail struct {
	ID          uuid.UUID      `json:"id"`
	Code        string         `json:"code"`
	CheckIn     types.Date     `json:"check_in"`
	CheckOut    types.Date     `json:"check_out"`
	Price       types.Money    `json:"price"`
	TotalGuests uint           `json:"total_guests"`
	Comments    string         `json:"comments"`
	Listing     *ListingDetail `json:"listing"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Detail expects Listing and Listing.Property to have been preloaded.
func (r *Reservation) Detail() *ReservationDetail {
	detail := &ReservationDetail{
		ID:          r.ID,
		Code:        r.Code,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Price:       r.Price,
		TotalGuests: r.TotalGuests,
		Comments:    r.Comments,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Listing != nil {
		detail.Listing = r.Listing.Detail()
	}
	return detail
}
