package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentals/src/models"
	"rentals/src/types"
	"rentals/src/utils"
)

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	listReservations := func(ctx *gin.Context) {
		reservations, err := utils.ListReservations()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		details := make([]*models.ReservationDetail, 0, len(reservations))
		for i := range reservations {
			details = append(details, reservations[i].Detail())
		}
		ctx.JSON(http.StatusOK, details)
	}
	retrieveReservation := func(ctx *gin.Context) {
		id, ok := uuidParam(ctx)
		if !ok {
			return
		}
		reservation, err := utils.GetReservation(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		ctx.JSON(http.StatusOK, reservation.Detail())
	}

	g.
		GET("/reservations", listReservations).
		HEAD("/reservations", listReservations).
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, utils.ValidationErrors(err))
				return
			}
			reservation, err := utils.CreateReservation(&body)
			if err != nil {
				if errors.Is(err, utils.ErrCheckOutBeforeCheckIn) {
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("check_out", "Check-out must be after check-in date."))
					return
				}
				if errors.Is(err, utils.ErrRelatedNotFound) {
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("listing",
						fmt.Sprintf("Invalid pk %q - object does not exist.", body.Listing)))
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, reservation)
		}).
		GET("/reservations/:id", retrieveReservation).
		HEAD("/reservations/:id", retrieveReservation).
		DELETE("/reservations/:id", func(ctx *gin.Context) {
			id, ok := uuidParam(ctx)
			if !ok {
				return
			}
			if err := utils.DeleteReservation(id); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
					return
				}
				log.Printf("Error deleting reservation %s: %s\n", id, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
