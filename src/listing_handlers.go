package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentals/src/models"
	"rentals/src/types"
	"rentals/src/utils"
)

func listingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	listListings := func(ctx *gin.Context) {
		listings, err := utils.ListListings()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		details := make([]*models.ListingDetail, 0, len(listings))
		for i := range listings {
			details = append(details, listings[i].Detail())
		}
		ctx.JSON(http.StatusOK, details)
	}
	retrieveListing := func(ctx *gin.Context) {
		id, ok := uuidParam(ctx)
		if !ok {
			return
		}
		listing, err := utils.GetListing(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		ctx.JSON(http.StatusOK, listing.Detail())
	}

	g.
		GET("/listings", listListings).
		HEAD("/listings", listListings).
		POST("/listings", func(ctx *gin.Context) {
			var body types.CreateListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, utils.ValidationErrors(err))
				return
			}
			listing, err := utils.CreateListing(&body)
			if err != nil {
				if errors.Is(err, utils.ErrRelatedNotFound) {
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("property",
						fmt.Sprintf("Invalid pk %q - object does not exist.", body.Property)))
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, listing)
		}).
		GET("/listings/:id", retrieveListing).
		HEAD("/listings/:id", retrieveListing).
		PUT("/listings/:id", func(ctx *gin.Context) {
			id, ok := uuidParam(ctx)
			if !ok {
				return
			}
			var body types.CreateListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, utils.ValidationErrors(err))
				return
			}
			listing, err := utils.ReplaceListing(id, &body)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
					return
				}
				if errors.Is(err, utils.ErrRelatedNotFound) {
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("property",
						fmt.Sprintf("Invalid pk %q - object does not exist.", body.Property)))
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, listing)
		}).
		PATCH("/listings/:id", func(ctx *gin.Context) {
			id, ok := uuidParam(ctx)
			if !ok {
				return
			}
			var body types.PatchListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, utils.ValidationErrors(err))
				return
			}
			listing, err := utils.PatchListing(id, &body)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
					return
				}
				if errors.Is(err, utils.ErrRelatedNotFound) {
					property := ""
					if body.Property != nil {
						property = *body.Property
					}
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("property",
						fmt.Sprintf("Invalid pk %q - object does not exist.", property)))
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, listing)
		})
	return g
}
