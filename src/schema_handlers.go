package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>Rentals API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  SwaggerUIBundle({url: "/api/v1/openapi", dom_id: "#swagger-ui"});
</script>
</body>
</html>`

// schemaHandlers serves the machine-readable schema and the browsable
// docs page. The write and read shapes are published as separate
// components so the listing/reservation schemas stay non-recursive.
func schemaHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/openapi", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, openapiDocument())
		}).
		GET("/docs", func(ctx *gin.Context) {
			ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
		})
	return g
}

func openapiDocument() gin.H {
	uuidSchema := gin.H{"type": "string", "format": "uuid"}
	decimalSchema := gin.H{"type": "string", "pattern": `^-?\d+\.\d{2}$`}
	dateSchema := gin.H{"type": "string", "format": "date"}
	timestampSchema := gin.H{"type": "string", "format": "date-time", "readOnly": true}

	propertySchema := gin.H{
		"type":     "object",
		"required": []string{"code", "guest_limit", "bathrooms", "accept_pets", "cleaning_price"},
		"properties": gin.H{
			"id":              gin.H{"type": "string", "format": "uuid", "readOnly": true},
			"code":            gin.H{"type": "string", "maxLength": 50},
			"guest_limit":     gin.H{"type": "integer", "minimum": 1},
			"bathrooms":       gin.H{"type": "integer", "minimum": 1},
			"accept_pets":     gin.H{"type": "boolean"},
			"cleaning_price":  decimalSchema,
			"activation_date": gin.H{"type": "string", "format": "date", "nullable": true},
			"created_at":      timestampSchema,
			"updated_at":      timestampSchema,
		},
	}
	listingSchema := gin.H{
		"type":     "object",
		"required": []string{"platform", "platform_fee", "property"},
		"properties": gin.H{
			"id":           gin.H{"type": "string", "format": "uuid", "readOnly": true},
			"platform":     gin.H{"type": "string", "maxLength": 50},
			"platform_fee": decimalSchema,
			"property":     gin.H{"type": "string", "format": "uuid", "nullable": true},
			"created_at":   timestampSchema,
			"updated_at":   timestampSchema,
		},
	}
	listingDetailSchema := gin.H{
		"type": "object",
		"properties": gin.H{
			"id":           uuidSchema,
			"platform":     gin.H{"type": "string"},
			"platform_fee": decimalSchema,
			"property":     gin.H{"allOf": []gin.H{{"$ref": "#/components/schemas/Property"}}, "nullable": true},
			"created_at":   timestampSchema,
			"updated_at":   timestampSchema,
		},
	}
	reservationSchema := gin.H{
		"type":     "object",
		"required": []string{"check_in", "check_out", "price", "total_guests", "listing"},
		"properties": gin.H{
			"id":           gin.H{"type": "string", "format": "uuid", "readOnly": true},
			"code":         gin.H{"type": "string", "maxLength": 6, "readOnly": true},
			"check_in":     dateSchema,
			"check_out":    dateSchema,
			"price":        decimalSchema,
			"total_guests": gin.H{"type": "integer", "minimum": 1},
			"comments":     gin.H{"type": "string", "default": ""},
			"listing":      gin.H{"type": "string", "format": "uuid", "nullable": true},
			"created_at":   timestampSchema,
			"updated_at":   timestampSchema,
		},
	}
	reservationDetailSchema := gin.H{
		"type": "object",
		"properties": gin.H{
			"id":           uuidSchema,
			"code":         gin.H{"type": "string"},
			"check_in":     dateSchema,
			"check_out":    dateSchema,
			"price":        decimalSchema,
			"total_guests": gin.H{"type": "integer"},
			"comments":     gin.H{"type": "string"},
			"listing":      gin.H{"allOf": []gin.H{{"$ref": "#/components/schemas/ListingDetail"}}, "nullable": true},
			"created_at":   timestampSchema,
			"updated_at":   timestampSchema,
		},
	}
	validationErrorSchema := gin.H{
		"type": "object",
		"additionalProperties": gin.H{
			"type":  "array",
			"items": gin.H{"type": "string"},
		},
	}

	jsonBody := func(ref string) gin.H {
		return gin.H{"content": gin.H{"application/json": gin.H{"schema": gin.H{"$ref": ref}}}}
	}
	jsonList := func(ref string) gin.H {
		return gin.H{"content": gin.H{"application/json": gin.H{"schema": gin.H{
			"type":  "array",
			"items": gin.H{"$ref": ref},
		}}}}
	}
	idParam := gin.H{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   uuidSchema,
	}
	badRequest := jsonBody("#/components/schemas/ValidationError")

	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":       "Rentals API",
			"description": "Property-rental management API",
			"version":     "1.0.0",
		},
		"paths": gin.H{
			"/api/v1/properties": gin.H{
				"get": gin.H{"responses": gin.H{"200": jsonList("#/components/schemas/Property")}},
				"post": gin.H{
					"requestBody": jsonBody("#/components/schemas/Property"),
					"responses": gin.H{
						"201": jsonBody("#/components/schemas/Property"),
						"400": badRequest,
					},
				},
			},
			"/api/v1/properties/{id}": gin.H{
				"parameters": []gin.H{idParam},
				"get":        gin.H{"responses": gin.H{"200": jsonBody("#/components/schemas/Property")}},
				"put": gin.H{
					"requestBody": jsonBody("#/components/schemas/Property"),
					"responses": gin.H{
						"200": jsonBody("#/components/schemas/Property"),
						"400": badRequest,
					},
				},
				"delete": gin.H{"responses": gin.H{"204": gin.H{"description": "deleted"}}},
			},
			"/api/v1/listings": gin.H{
				"get": gin.H{"responses": gin.H{"200": jsonList("#/components/schemas/ListingDetail")}},
				"post": gin.H{
					"requestBody": jsonBody("#/components/schemas/Listing"),
					"responses": gin.H{
						"201": jsonBody("#/components/schemas/Listing"),
						"400": badRequest,
					},
				},
			},
			"/api/v1/listings/{id}": gin.H{
				"parameters": []gin.H{idParam},
				"get":        gin.H{"responses": gin.H{"200": jsonBody("#/components/schemas/ListingDetail")}},
				"put": gin.H{
					"requestBody": jsonBody("#/components/schemas/Listing"),
					"responses": gin.H{
						"200": jsonBody("#/components/schemas/Listing"),
						"400": badRequest,
					},
				},
				"patch": gin.H{
					"requestBody": jsonBody("#/components/schemas/Listing"),
					"responses": gin.H{
						"200": jsonBody("#/components/schemas/Listing"),
						"400": badRequest,
					},
				},
			},
			"/api/v1/reservations": gin.H{
				"get": gin.H{"responses": gin.H{"200": jsonList("#/components/schemas/ReservationDetail")}},
				"post": gin.H{
					"requestBody": jsonBody("#/components/schemas/Reservation"),
					"responses": gin.H{
						"201": jsonBody("#/components/schemas/Reservation"),
						"400": badRequest,
					},
				},
			},
			"/api/v1/reservations/{id}": gin.H{
				"parameters": []gin.H{idParam},
				"get":        gin.H{"responses": gin.H{"200": jsonBody("#/components/schemas/ReservationDetail")}},
				"delete":     gin.H{"responses": gin.H{"204": gin.H{"description": "deleted"}}},
			},
		},
		"components": gin.H{
			"schemas": gin.H{
				"Property":          propertySchema,
				"Listing":           listingSchema,
				"ListingDetail":     listingDetailSchema,
				"Reservation":       reservationSchema,
				"ReservationDetail": reservationDetailSchema,
				"ValidationError":   validationErrorSchema,
			},
		},
	}
}
