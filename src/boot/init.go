package boot

import (
	"log"

	"gorm.io/gorm"

	"rentals/src/db"
	"rentals/src/models"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Property{},
		&models.Listing{},
		&models.Reservation{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
