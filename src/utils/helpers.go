package utils

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentals/src/db"
	"rentals/src/models"
	"rentals/src/types"
)

// ErrRelatedNotFound marks a write that names a parent record that does
// not exist; handlers turn it into a field-scoped validation error.
var ErrRelatedNotFound = errors.New("related object does not exist")

// ErrCheckOutBeforeCheckIn marks a reservation whose dates are reversed.
var ErrCheckOutBeforeCheckIn = errors.New("check-out is before check-in")

func CreateProperty(params *types.CreatePropertyRequestBody) (*models.Property, error) {
	price, err := types.NewMoney(params.CleaningPrice)
	if err != nil {
		return nil, err
	}
	property := models.Property{
		Code:          params.Code,
		GuestLimit:    params.GuestLimit,
		Bathrooms:     params.Bathrooms,
		AcceptPets:    *params.AcceptPets,
		CleaningPrice: price,
	}
	if params.ActivationDate != nil {
		date, err := types.NewDate(*params.ActivationDate)
		if err != nil {
			return nil, err
		}
		property.ActivationDate = &date
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&property).Error
	})
	if err != nil {
		log.Printf("Error creating property: %s\n", err.Error())
		return nil, err
	}
	return &property, nil
}

func ListProperties() ([]models.Property, error) {
	var properties []models.Property
	db := db.GetDb()
	err := db.
		Model(&models.Property{}).
		Order("created_at DESC").
		Find(&properties).
		Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func GetProperty(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	db := db.GetDb()
	err := db.
		Where(&models.Property{ID: id}).
		First(&property).
		Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// ReplaceProperty overwrites every client-settable field; id and
// timestamps stay server-owned.
func ReplaceProperty(id uuid.UUID, params *types.CreatePropertyRequestBody) (*models.Property, error) {
	price, err := types.NewMoney(params.CleaningPrice)
	if err != nil {
		return nil, err
	}
	var property models.Property
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Property{ID: id}).First(&property).Error; err != nil {
			return err
		}
		property.Code = params.Code
		property.GuestLimit = params.GuestLimit
		property.Bathrooms = params.Bathrooms
		property.AcceptPets = *params.AcceptPets
		property.CleaningPrice = price
		property.ActivationDate = nil
		if params.ActivationDate != nil {
			date, err := types.NewDate(*params.ActivationDate)
			if err != nil {
				return err
			}
			property.ActivationDate = &date
		}
		return tx.Save(&property).Error
	})
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func DeleteProperty(id uuid.UUID) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Where(&models.Property{ID: id}).First(&property).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
}

func CreateListing(params *types.CreateListingRequestBody) (*models.Listing, error) {
	fee, err := types.NewMoney(params.PlatformFee)
	if err != nil {
		return nil, err
	}
	propertyId, err := uuid.Parse(params.Property)
	if err != nil {
		return nil, err
	}
	listing := models.Listing{
		Platform:    params.Platform,
		PlatformFee: fee,
		PropertyID:  &propertyId,
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Where(&models.Property{ID: propertyId}).First(&property).Error; err != nil {
			return fmt.Errorf("property %s: %w", propertyId, ErrRelatedNotFound)
		}
		return tx.Create(&listing).Error
	})
	if err != nil {
		log.Printf("Error creating listing: %s\n", err.Error())
		return nil, err
	}
	return &listing, nil
}

func ListListings() ([]models.Listing, error) {
	var listings []models.Listing
	db := db.GetDb()
	err := db.
		Model(&models.Listing{}).
		Preload("Property").
		Order("created_at DESC").
		Find(&listings).
		Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func GetListing(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	db := db.GetDb()
	err := db.
		Where(&models.Listing{ID: id}).
		Preload("Property").
		First(&listing).
		Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func ReplaceListing(id uuid.UUID, params *types.CreateListingRequestBody) (*models.Listing, error) {
	fee, err := types.NewMoney(params.PlatformFee)
	if err != nil {
		return nil, err
	}
	propertyId, err := uuid.Parse(params.Property)
	if err != nil {
		return nil, err
	}
	var listing models.Listing
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Listing{ID: id}).First(&listing).Error; err != nil {
			return err
		}
		var property models.Property
		if err := tx.Where(&models.Property{ID: propertyId}).First(&property).Error; err != nil {
			return fmt.Errorf("property %s: %w", propertyId, ErrRelatedNotFound)
		}
		listing.Platform = params.Platform
		listing.PlatformFee = fee
		listing.PropertyID = &propertyId
		return tx.Save(&listing).Error
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func PatchListing(id uuid.UUID, params *types.PatchListingRequestBody) (*models.Listing, error) {
	var listing models.Listing
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Listing{ID: id}).First(&listing).Error; err != nil {
			return err
		}
		if params.Platform != nil {
			listing.Platform = *params.Platform
		}
		if params.PlatformFee != nil {
			fee, err := types.NewMoney(*params.PlatformFee)
			if err != nil {
				return err
			}
			listing.PlatformFee = fee
		}
		if params.Property != nil {
			propertyId, err := uuid.Parse(*params.Property)
			if err != nil {
				return err
			}
			var property models.Property
			if err := tx.Where(&models.Property{ID: propertyId}).First(&property).Error; err != nil {
				return fmt.Errorf("property %s: %w", propertyId, ErrRelatedNotFound)
			}
			listing.PropertyID = &propertyId
		}
		return tx.Save(&listing).Error
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func CreateReservation(params *types.CreateReservationRequestBody) (*models.Reservation, error) {
	checkIn, err := types.NewDate(params.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := types.NewDate(params.CheckOut)
	if err != nil {
		return nil, err
	}
	if checkIn.After(checkOut.Time) {
		return nil, ErrCheckOutBeforeCheckIn
	}
	price, err := types.NewMoney(params.Price)
	if err != nil {
		return nil, err
	}
	listingId, err := uuid.Parse(params.Listing)
	if err != nil {
		return nil, err
	}
	reservation := models.Reservation{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Price:       price,
		TotalGuests: params.TotalGuests,
		Comments:    params.Comments,
		ListingID:   &listingId,
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.Where(&models.Listing{ID: listingId}).First(&listing).Error; err != nil {
			return fmt.Errorf("listing %s: %w", listingId, ErrRelatedNotFound)
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		log.Printf("Error creating reservation: %s\n", err.Error())
		return nil, err
	}
	return &reservation, nil
}

func ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	db := db.GetDb()
	err := db.
		Model(&models.Reservation{}).
		Preload("Listing").
		Preload("Listing.Property").
		Order("created_at DESC").
		Find(&reservations).
		Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func GetReservation(id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	db := db.GetDb()
	err := db.
		Where(&models.Reservation{ID: id}).
		Preload("Listing").
		Preload("Listing.Property").
		First(&reservation).
		Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func DeleteReservation(id uuid.UUID) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Where(&models.Reservation{ID: id}).First(&reservation).Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
}
