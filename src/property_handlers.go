package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rentals/src/types"
	"rentals/src/utils"
)

func propertyHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/properties", func(ctx *gin.Context) {
			properties, err := utils.ListProperties()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, properties)
		}).
		POST("/properties", func(ctx *gin.Context) {
			var body types.CreatePropertyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, utils.ValidationErrors(err))
				return
			}
			property, err := utils.CreateProperty(&body)
			if err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("code", "property with this code already exists."))
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, property)
		}).
		GET("/properties/:id", func(ctx *gin.Context) {
			id, ok := uuidParam(ctx)
			if !ok {
				return
			}
			property, err := utils.GetProperty(id)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
				return
			}
			ctx.JSON(http.StatusOK, property)
		}).
		PUT("/properties/:id", func(ctx *gin.Context) {
			id, ok := uuidParam(ctx)
			if !ok {
				return
			}
			var body types.CreatePropertyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, utils.ValidationErrors(err))
				return
			}
			property, err := utils.ReplaceProperty(id, &body)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
					return
				}
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					ctx.JSON(http.StatusBadRequest, utils.NewFieldErrors("code", "property with this code already exists."))
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, property)
		}).
		DELETE("/properties/:id", func(ctx *gin.Context) {
			id, ok := uuidParam(ctx)
			if !ok {
				return
			}
			if err := utils.DeleteProperty(id); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
					return
				}
				log.Printf("Error deleting property %s: %s\n", id, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
