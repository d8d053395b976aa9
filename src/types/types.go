package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rentals/src/config"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime:nano" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:nano" json:"updated_at"`
}

// Money is a fixed-point amount stored as numeric(11,2) and rendered
// as a 2-decimal string on the wire, never as a float.
type Money struct {
	decimal.Decimal
}

func NewMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.StringFixed(2))
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		// bare JSON number
		raw = string(b)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}

func (m *Money) Scan(value any) error {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		m.Decimal = d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		m.Decimal = d
	case float64:
		m.Decimal = decimal.NewFromFloat(v)
	case int64:
		m.Decimal = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}

func (Money) GormDataType() string {
	return "numeric(11,2)"
}

// Date is a calendar day without a time component. On the wire it is
// a YYYY-MM-DD string; in the store it is a date column at UTC midnight.
type Date struct {
	time.Time
}

func NewDate(value string) (Date, error) {
	t, err := time.Parse(config.DATE_PARSE_FORMAT, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t.UTC()}, nil
}

func (d Date) String() string {
	return d.Format(config.DATE_PARSE_FORMAT)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := NewDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v.UTC()
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

func (d *Date) scanString(value string) error {
	for _, layout := range []string{config.DATE_PARSE_FORMAT, time.RFC3339, time.DateTime} {
		if t, err := time.Parse(layout, value); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as Date", value)
}

func (Date) GormDataType() string {
	return "date"
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type CreatePropertyRequestBody struct {
	Code           string  `json:"code" binding:"required,max=50"`
	GuestLimit     uint    `json:"guest_limit" binding:"required"`
	Bathrooms      uint    `json:"bathrooms" binding:"required"`
	AcceptPets     *bool   `json:"accept_pets" binding:"required"`
	CleaningPrice  string  `json:"cleaning_price" binding:"required,decimal"`
	ActivationDate *string `json:"activation_date" binding:"omitempty,dateonly"`
}

type CreateListingRequestBody struct {
	Platform    string `json:"platform" binding:"required,max=50"`
	PlatformFee string `json:"platform_fee" binding:"required,decimal"`
	Property    string `json:"property" binding:"required,uuid"`
}

// PatchListingRequestBody carries only the fields present in a partial
// update; nil means leave unchanged.
type PatchListingRequestBody struct {
	Platform    *string `json:"platform" binding:"omitempty,max=50"`
	PlatformFee *string `json:"platform_fee" binding:"omitempty,decimal"`
	Property    *string `json:"property" binding:"omitempty,uuid"`
}

type CreateReservationRequestBody struct {
	CheckIn     string `json:"check_in" binding:"required,dateonly"`
	CheckOut    string `json:"check_out" binding:"required,dateonly"`
	Price       string `json:"price" binding:"required,decimal"`
	TotalGuests uint   `json:"total_guests" binding:"required"`
	Comments    string `json:"comments"`
	Listing     string `json:"listing" binding:"required,uuid"`
}
